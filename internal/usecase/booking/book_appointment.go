package booking

import (
	"context"
	"time"

	"github.com/schedulingco/scheduler-api/internal/audit"
	domain "github.com/schedulingco/scheduler-api/internal/domain/booking"
	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	BusinessID string

	Customer *models.User

	Date time.Time
	Time string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment records a customer's chosen slot. The slot is not
// re-checked for freshness at this point: whoever submits a label books it,
// even if another booking landed on it since the slots were resolved.
type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: dispatcher,
		now:   time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (uc *BookAppointment) WithClock(now func() time.Time) *BookAppointment {
	uc.now = now
	return uc
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Business
	// --------------------------------------------------
	biz, err := uc.repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	// --------------------------------------------------
	// Past-date gate (calendar level)
	// --------------------------------------------------
	if domain.BeforeDay(in.Date, uc.now()) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// Appointment (customer snapshot is frozen here)
	// --------------------------------------------------
	ap := &models.Appointment{
		BusinessID:    biz.ID,
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  in.Customer.Name,
		CustomerEmail: in.Customer.Email,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		UserID:     &in.Customer.ID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   ap.ID,
		Metadata: map[string]string{
			"date": in.Date.Format("2006-01-02"),
			"time": in.Time,
		},
	})

	return ap, nil
}
