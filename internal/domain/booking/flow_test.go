package booking

import (
	"testing"
	"time"

	"github.com/schedulingco/scheduler-api/internal/httperr"
)

func TestFlowHappyPath(t *testing.T) {
	date := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

	f := NewFlow()
	if f.State != StateBrowsing {
		t.Fatalf("new flow state = %q, want %q", f.State, StateBrowsing)
	}

	if err := f.SelectBusiness("biz-1"); err != nil {
		t.Fatalf("SelectBusiness: %v", err)
	}
	if f.State != StateDateSelection {
		t.Fatalf("state after business = %q, want %q", f.State, StateDateSelection)
	}

	if err := f.SelectDate(date); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if f.State != StateTimeSelection {
		t.Fatalf("state after date = %q, want %q", f.State, StateTimeSelection)
	}

	if err := f.SelectTime("10:00 AM"); err != nil {
		t.Fatalf("SelectTime: %v", err)
	}
	if f.State != StateConfirming {
		t.Fatalf("state after time = %q, want %q", f.State, StateConfirming)
	}

	if err := f.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if f.State != StateBooked {
		t.Fatalf("state after submit = %q, want %q", f.State, StateBooked)
	}

	if err := f.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if f.State != StateBrowsing || f.BusinessID != "" || f.TimeLabel != "" || !f.Date.IsZero() {
		t.Errorf("reset must land back at a pristine browsing flow, got %+v", f)
	}
}

func TestFlowRepickingDateClearsTime(t *testing.T) {
	date := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)
	other := date.AddDate(0, 0, 1)

	f := NewFlow()
	if err := f.SelectBusiness("biz-1"); err != nil {
		t.Fatal(err)
	}
	if err := f.SelectDate(date); err != nil {
		t.Fatal(err)
	}
	if err := f.SelectTime("10:00 AM"); err != nil {
		t.Fatal(err)
	}

	// stepping back from confirming by picking a new date drops the time
	if err := f.SelectDate(other); err != nil {
		t.Fatalf("SelectDate from confirming: %v", err)
	}
	if f.TimeLabel != "" {
		t.Errorf("time label = %q, want cleared", f.TimeLabel)
	}
	if f.State != StateTimeSelection {
		t.Errorf("state = %q, want %q", f.State, StateTimeSelection)
	}
}

func TestFlowCancelTime(t *testing.T) {
	f := NewFlow()
	if err := f.SelectBusiness("biz-1"); err != nil {
		t.Fatal(err)
	}
	if err := f.SelectDate(time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if err := f.SelectTime("10:00 AM"); err != nil {
		t.Fatal(err)
	}

	if err := f.CancelTime(); err != nil {
		t.Fatalf("CancelTime: %v", err)
	}
	if f.State != StateTimeSelection || f.TimeLabel != "" {
		t.Errorf("cancel must return to time selection with no time, got %+v", f)
	}
}

func TestFlowInvalidTransitions(t *testing.T) {
	date := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		run  func(f *Flow) error
	}{
		{"time before date", func(f *Flow) error { return f.SelectTime("10:00 AM") }},
		{"date before business", func(f *Flow) error { return f.SelectDate(date) }},
		{"submit while browsing", func(f *Flow) error { return f.Submit() }},
		{"reset before booked", func(f *Flow) error { return f.Reset() }},
		{"cancel before confirming", func(f *Flow) error { return f.CancelTime() }},
		{"business twice", func(f *Flow) error {
			if err := f.SelectBusiness("biz-1"); err != nil {
				return err
			}
			return f.SelectBusiness("biz-2")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run(NewFlow())
			if !httperr.IsBusiness(err, "invalid_state") {
				t.Errorf("got %v, want invalid_state", err)
			}
		})
	}
}
