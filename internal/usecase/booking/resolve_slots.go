package booking

import (
	"context"
	"time"

	domain "github.com/schedulingco/scheduler-api/internal/domain/booking"
	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// ResolveSlots turns a business's recurring weekly availability into the
// concrete offer for one date: expand the weekday's window into hourly
// labels, then flag the ones an existing appointment already holds. The
// result depends only on (business state, appointment set, date).
type ResolveSlots struct {
	repo  domain.Repository
	cache *slotCache
}

func NewResolveSlots(repo domain.Repository) *ResolveSlots {
	return &ResolveSlots{
		repo:  repo,
		cache: newSlotCache(defaultSlotCacheSize),
	}
}

func (uc *ResolveSlots) Execute(
	ctx context.Context,
	businessID string,
	date time.Time,
) ([]domain.Slot, error) {

	key := slotCacheKey(businessID, date, uc.repo.StateVersion())
	if slots, ok := uc.cache.Get(key); ok {
		return slots, nil
	}

	biz, err := uc.repo.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	slots, err := uc.resolve(ctx, biz, date)
	if err != nil {
		return nil, err
	}

	uc.cache.Store(key, slots)
	return slots, nil
}

func (uc *ResolveSlots) resolve(
	ctx context.Context,
	biz *models.User,
	date time.Time,
) ([]domain.Slot, error) {

	weekday := date.Weekday().String()

	window, ok := models.WindowFor(biz.Business.Availability, weekday)
	if !ok || !window.Enabled {
		return []domain.Slot{}, nil
	}

	labels := domain.GenerateSlots(window.StartTime, window.EndTime)
	if len(labels) == 0 {
		return []domain.Slot{}, nil
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, biz.ID, date)
	if err != nil {
		return nil, err
	}

	return domain.MarkBooked(labels, appointments, biz.ID, date), nil
}
