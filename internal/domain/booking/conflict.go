package booking

import (
	"time"

	"github.com/schedulingco/scheduler-api/internal/models"
)

// Slot is one offerable time as presented to a customer. Booked slots stay in
// the list so the full daily capacity remains visible; they are just not
// selectable.
type Slot struct {
	Label  string `json:"label"`
	Booked bool   `json:"is_booked"`
}

// MarkBooked flags every candidate label that collides with an existing
// appointment for the same business on the same calendar day. The output
// always has one entry per input label.
func MarkBooked(labels []string, appointments []models.Appointment, businessID string, date time.Time) []Slot {
	booked := make(map[string]struct{}, len(appointments))
	for _, ap := range appointments {
		if ap.BusinessID != businessID {
			continue
		}
		if !SameDay(ap.Date, date) {
			continue
		}
		booked[ap.Time] = struct{}{}
	}

	slots := make([]Slot, 0, len(labels))
	for _, label := range labels {
		_, taken := booked[label]
		slots = append(slots, Slot{Label: label, Booked: taken})
	}
	return slots
}

// SameDay reports whether two instants fall on the same calendar day. The
// time-of-day carried by either value is disregarded.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDay reports whether a falls on an earlier calendar day than b.
func BeforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
