package booking

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/schedulingco/scheduler-api/internal/audit"
	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/models"
	"github.com/schedulingco/scheduler-api/internal/store"
)

func newBooker(st *store.Store) *BookAppointment {
	dispatcher := audit.NewDispatcher(audit.New(st, zap.NewNop()), zap.NewNop())
	return NewBookAppointment(st, dispatcher).WithClock(func() time.Time {
		return time.Date(2030, time.January, 1, 12, 0, 0, 0, time.UTC)
	})
}

func newCustomer(t *testing.T, st *store.Store) *models.User {
	t.Helper()
	cust, err := st.Register(context.Background(), store.RegisterInput{
		Email:    "customer@example.com",
		Password: "password",
		Name:     "Alice Johnson",
		Role:     models.RoleCustomer,
	})
	if err != nil {
		t.Fatal(err)
	}
	return cust
}

func TestBookAppointment(t *testing.T) {
	st := newTestStore()
	biz := newBusiness(t, st)
	cust := newCustomer(t, st)

	ap, err := newBooker(st).Execute(context.Background(), BookAppointmentInput{
		BusinessID: biz.ID,
		Customer:   cust,
		Date:       monday,
		Time:       "10:00 AM",
	})
	if err != nil {
		t.Fatal(err)
	}

	if ap.ID == "" {
		t.Error("appointment was not assigned an ID")
	}
	if ap.BusinessID != biz.ID {
		t.Errorf("BusinessID = %q, want %q", ap.BusinessID, biz.ID)
	}
	if ap.CustomerName != "Alice Johnson" || ap.CustomerEmail != "customer@example.com" {
		t.Errorf("customer snapshot = %q/%q", ap.CustomerName, ap.CustomerEmail)
	}

	day, err := st.ListAppointmentsForDay(context.Background(), biz.ID, monday)
	if err != nil {
		t.Fatal(err)
	}
	if len(day) != 1 || day[0].Time != "10:00 AM" {
		t.Errorf("stored day = %v", day)
	}
}

func TestBookAppointmentRejectsPastDate(t *testing.T) {
	st := newTestStore()
	biz := newBusiness(t, st)
	cust := newCustomer(t, st)

	_, err := newBooker(st).Execute(context.Background(), BookAppointmentInput{
		BusinessID: biz.ID,
		Customer:   cust,
		Date:       time.Date(2029, time.December, 31, 0, 0, 0, 0, time.UTC),
		Time:       "10:00 AM",
	})
	if !httperr.IsBusiness(err, "date_in_past") {
		t.Errorf("got %v, want date_in_past", err)
	}
}

func TestBookAppointmentAllowsToday(t *testing.T) {
	st := newTestStore()
	biz := newBusiness(t, st)
	cust := newCustomer(t, st)

	// same calendar day as the clock, earlier wall time
	today := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := newBooker(st).Execute(context.Background(), BookAppointmentInput{
		BusinessID: biz.ID,
		Customer:   cust,
		Date:       today,
		Time:       "03:00 PM",
	})
	if err != nil {
		t.Errorf("booking today must pass the past-date gate, got %v", err)
	}
}

func TestBookAppointmentUnknownBusiness(t *testing.T) {
	st := newTestStore()
	cust := newCustomer(t, st)

	_, err := newBooker(st).Execute(context.Background(), BookAppointmentInput{
		BusinessID: "missing",
		Customer:   cust,
		Date:       monday,
		Time:       "10:00 AM",
	})
	if !httperr.IsBusiness(err, "business_not_found") {
		t.Errorf("got %v, want business_not_found", err)
	}
}

func TestBookAppointmentDoubleBookingIsAccepted(t *testing.T) {
	st := newTestStore()
	biz := newBusiness(t, st)
	cust := newCustomer(t, st)

	uc := newBooker(st)
	in := BookAppointmentInput{
		BusinessID: biz.ID,
		Customer:   cust,
		Date:       monday,
		Time:       "10:00 AM",
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	// the slot is not re-checked at submit time
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Errorf("second booking on the same slot must still land, got %v", err)
	}

	day, err := st.ListAppointmentsForDay(context.Background(), biz.ID, monday)
	if err != nil {
		t.Fatal(err)
	}
	if len(day) != 2 {
		t.Errorf("stored %d appointments, want 2", len(day))
	}
}
