package handlers

import "time"

const dateLayout = "2006-01-02"

func parseDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, dateStr)
}

// isPastDate compares calendar days only; today is never "past".
func isPastDate(date, now time.Time) bool {
	dy, dm, dd := date.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}
