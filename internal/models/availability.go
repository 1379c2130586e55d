package models

import "time"

// AvailabilityWindow is one weekday's recurring bookable window. Times are
// "HH:MM" 24-hour strings; a disabled or empty window offers no slots.
type AvailabilityWindow struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Enabled   bool   `json:"enabled"`
}

// WeekDays lists weekday names in display order, Monday first.
var WeekDays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// DefaultWeeklyAvailability is the schedule a business starts with:
// Monday through Friday 09:00-17:00, weekend disabled.
func DefaultWeeklyAvailability() []AvailabilityWindow {
	out := make([]AvailabilityWindow, 0, len(WeekDays))
	for _, day := range WeekDays {
		enabled := day != time.Saturday.String() && day != time.Sunday.String()
		out = append(out, AvailabilityWindow{
			Day:       day,
			StartTime: "09:00",
			EndTime:   "17:00",
			Enabled:   enabled,
		})
	}
	return out
}

// NormalizeWeeklyAvailability rebuilds a full seven-day schedule from the
// submitted windows. Exactly one window per weekday comes out: the last
// submitted entry for a day wins, days never submitted come out disabled.
func NormalizeWeeklyAvailability(windows []AvailabilityWindow) []AvailabilityWindow {
	byDay := make(map[string]AvailabilityWindow, len(windows))
	for _, w := range windows {
		byDay[w.Day] = w
	}

	out := make([]AvailabilityWindow, 0, len(WeekDays))
	for _, day := range WeekDays {
		if w, ok := byDay[day]; ok {
			w.Day = day
			out = append(out, w)
			continue
		}
		out = append(out, AvailabilityWindow{Day: day})
	}
	return out
}

// WindowFor returns the window for a weekday name, if one exists.
func WindowFor(windows []AvailabilityWindow, day string) (AvailabilityWindow, bool) {
	for _, w := range windows {
		if w.Day == day {
			return w, true
		}
	}
	return AvailabilityWindow{}, false
}
