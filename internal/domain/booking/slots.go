package booking

import (
	"fmt"
	"strconv"
	"strings"
)

const slotStepMinutes = 60

// GenerateSlots expands an availability window into the ordered list of
// offerable time labels. Slots step in exact 60-minute increments from the
// window start and cover the half-open interval [start, end): a window of
// 09:00-12:00 yields 09:00 AM, 10:00 AM and 11:00 AM. A start at 09:30 keeps
// stepping from 09:30, so fractional windows produce an odd-aligned grid
// rather than rounding to the hour.
//
// An empty, malformed or inverted window (start >= end) yields no slots; that
// is the "nothing offered" signal, not an error.
func GenerateSlots(startTime, endTime string) []string {
	start, ok := parseClock(startTime)
	if !ok {
		return nil
	}
	end, ok := parseClock(endTime)
	if !ok {
		return nil
	}
	if start >= end {
		return nil
	}

	var labels []string
	for cur := start; cur < end; cur += slotStepMinutes {
		labels = append(labels, formatLabel(cur))
	}
	return labels
}

// parseClock reads an "HH:MM" 24-hour string into minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// formatLabel renders minutes since midnight as a zero-padded 12-hour clock
// label, e.g. "09:00 AM", "12:00 PM", "01:30 PM".
func formatLabel(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour12, minute, suffix)
}
