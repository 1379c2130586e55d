package booking

import (
	"reflect"
	"testing"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "standard business day",
			start: "09:00",
			end:   "17:00",
			want: []string{
				"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
				"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
			},
		},
		{
			name:  "morning window excludes end",
			start: "09:00",
			end:   "12:00",
			want:  []string{"09:00 AM", "10:00 AM", "11:00 AM"},
		},
		{
			name:  "single hour",
			start: "09:00",
			end:   "10:00",
			want:  []string{"09:00 AM"},
		},
		{
			name:  "half-hour start keeps its own grid",
			start: "09:30",
			end:   "12:00",
			want:  []string{"09:30 AM", "10:30 AM", "11:30 AM"},
		},
		{
			name:  "crosses noon",
			start: "11:00",
			end:   "14:00",
			want:  []string{"11:00 AM", "12:00 PM", "01:00 PM"},
		},
		{
			name:  "midnight start",
			start: "00:00",
			end:   "02:00",
			want:  []string{"12:00 AM", "01:00 AM"},
		},
		{
			name:  "start equals end",
			start: "09:00",
			end:   "09:00",
			want:  nil,
		},
		{
			name:  "inverted window",
			start: "17:00",
			end:   "09:00",
			want:  nil,
		},
		{
			name:  "empty start",
			start: "",
			end:   "17:00",
			want:  nil,
		},
		{
			name:  "empty end",
			start: "09:00",
			end:   "",
			want:  nil,
		},
		{
			name:  "malformed time",
			start: "nine",
			end:   "17:00",
			want:  nil,
		},
		{
			name:  "out of range hour",
			start: "25:00",
			end:   "26:00",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateSlots(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestGenerateSlotsWholeHourCount(t *testing.T) {
	// whole-hour windows produce exactly one slot per hour of length
	cases := []struct {
		start string
		end   string
		count int
	}{
		{"09:00", "17:00", 8},
		{"00:00", "23:00", 23},
		{"13:00", "14:00", 1},
	}

	for _, tc := range cases {
		got := GenerateSlots(tc.start, tc.end)
		if len(got) != tc.count {
			t.Errorf("GenerateSlots(%q, %q) produced %d slots, want %d", tc.start, tc.end, len(got), tc.count)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{9 * 60, "09:00 AM"},
		{12 * 60, "12:00 PM"},
		{13 * 60, "01:00 PM"},
		{13*60 + 30, "01:30 PM"},
		{23 * 60, "11:00 PM"},
	}

	for _, tc := range cases {
		if got := formatLabel(tc.minutes); got != tc.want {
			t.Errorf("formatLabel(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
