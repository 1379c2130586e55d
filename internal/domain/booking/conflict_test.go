package booking

import (
	"testing"
	"time"

	"github.com/schedulingco/scheduler-api/internal/models"
)

func TestMarkBooked(t *testing.T) {
	monday := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)
	labels := []string{"09:00 AM", "10:00 AM", "11:00 AM"}

	appointments := []models.Appointment{
		{BusinessID: "biz-1", Date: monday, Time: "10:00 AM"},
		// other business, same day and time
		{BusinessID: "biz-2", Date: monday, Time: "09:00 AM"},
		// same business, different day
		{BusinessID: "biz-1", Date: monday.AddDate(0, 0, 1), Time: "11:00 AM"},
	}

	slots := MarkBooked(labels, appointments, "biz-1", monday)

	if len(slots) != len(labels) {
		t.Fatalf("got %d slots, want %d: the filter must never remove slots", len(slots), len(labels))
	}

	want := map[string]bool{
		"09:00 AM": false,
		"10:00 AM": true,
		"11:00 AM": false,
	}
	for i, s := range slots {
		if s.Label != labels[i] {
			t.Errorf("slot %d label = %q, want %q (order preserved)", i, s.Label, labels[i])
		}
		if s.Booked != want[s.Label] {
			t.Errorf("slot %q booked = %v, want %v", s.Label, s.Booked, want[s.Label])
		}
	}
}

func TestMarkBookedIgnoresTimeOfDayOnDate(t *testing.T) {
	day := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)
	late := time.Date(2030, time.January, 7, 22, 15, 0, 0, time.UTC)

	appointments := []models.Appointment{
		{BusinessID: "biz-1", Date: late, Time: "09:00 AM"},
	}

	slots := MarkBooked([]string{"09:00 AM"}, appointments, "biz-1", day)
	if !slots[0].Booked {
		t.Error("appointment stored with a time-of-day must still match the calendar day")
	}
}

func TestMarkBookedEmptyInputs(t *testing.T) {
	day := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

	if got := MarkBooked(nil, nil, "biz-1", day); len(got) != 0 {
		t.Errorf("no labels should yield no slots, got %v", got)
	}

	slots := MarkBooked([]string{"09:00 AM"}, nil, "biz-1", day)
	if len(slots) != 1 || slots[0].Booked {
		t.Errorf("no appointments should leave every slot free, got %v", slots)
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2030, time.June, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"identical", base, base, true},
		{"different clock times", base, base.Add(9 * time.Hour), true},
		{"next day", base, base.AddDate(0, 0, 1), false},
		{"same day next month", base, base.AddDate(0, 1, 0), false},
		{"same day next year", base, base.AddDate(1, 0, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameDay(tc.a, tc.b); got != tc.want {
				t.Errorf("SameDay = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBeforeDay(t *testing.T) {
	base := time.Date(2030, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"earlier day", base.AddDate(0, 0, -1), base, true},
		{"same day earlier clock", base.Add(-6 * time.Hour), base, false},
		{"same day later clock", base.Add(6 * time.Hour), base, false},
		{"later day", base.AddDate(0, 0, 1), base, false},
		{"earlier month later day-of-month", time.Date(2030, time.May, 20, 0, 0, 0, 0, time.UTC), base, true},
		{"earlier year", time.Date(2029, time.December, 31, 0, 0, 0, 0, time.UTC), base, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BeforeDay(tc.a, tc.b); got != tc.want {
				t.Errorf("BeforeDay = %v, want %v", got, tc.want)
			}
		})
	}
}
