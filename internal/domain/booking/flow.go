package booking

import (
	"time"

	"github.com/schedulingco/scheduler-api/internal/httperr"
)

// FlowState is the customer's position in the booking wizard.
type FlowState string

const (
	StateBrowsing      FlowState = "browsing"
	StateDateSelection FlowState = "date_selection"
	StateTimeSelection FlowState = "time_selection"
	StateConfirming    FlowState = "confirming"
	StateBooked        FlowState = "booked"
)

// Flow walks a single booking attempt through its steps:
//
//	browsing -> date_selection -> time_selection -> confirming -> booked
//
// Stepping back to date selection (or earlier) always clears the chosen
// time. Booked is terminal for the attempt; only Reset leaves it.
type Flow struct {
	State      FlowState `json:"state"`
	BusinessID string    `json:"business_id,omitempty"`
	Date       time.Time `json:"date,omitempty"`
	TimeLabel  string    `json:"time,omitempty"`
}

func NewFlow() *Flow {
	return &Flow{State: StateBrowsing}
}

func (f *Flow) SelectBusiness(businessID string) error {
	if f.State != StateBrowsing {
		return httperr.ErrBusiness("invalid_state")
	}
	f.BusinessID = businessID
	f.State = StateDateSelection
	return nil
}

// SelectDate picks (or re-picks) the appointment day. Re-picking from a later
// step discards the previously chosen time.
func (f *Flow) SelectDate(date time.Time) error {
	switch f.State {
	case StateDateSelection, StateTimeSelection, StateConfirming:
	default:
		return httperr.ErrBusiness("invalid_state")
	}
	f.Date = date
	f.TimeLabel = ""
	f.State = StateTimeSelection
	return nil
}

func (f *Flow) SelectTime(label string) error {
	if f.State != StateTimeSelection {
		return httperr.ErrBusiness("invalid_state")
	}
	f.TimeLabel = label
	f.State = StateConfirming
	return nil
}

// CancelTime backs out of the confirmation step, returning to time selection
// with the chosen time cleared.
func (f *Flow) CancelTime() error {
	if f.State != StateConfirming {
		return httperr.ErrBusiness("invalid_state")
	}
	f.TimeLabel = ""
	f.State = StateTimeSelection
	return nil
}

// Submit finalizes the attempt. The caller creates the appointment; the flow
// only records that the attempt completed.
func (f *Flow) Submit() error {
	if f.State != StateConfirming {
		return httperr.ErrBusiness("invalid_state")
	}
	f.State = StateBooked
	return nil
}

// Reset starts a fresh attempt after a completed booking.
func (f *Flow) Reset() error {
	if f.State != StateBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	*f = Flow{State: StateBrowsing}
	return nil
}
