package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/schedulingco/scheduler-api/internal/domain/booking"
	"github.com/schedulingco/scheduler-api/internal/dto"
)

type ListSchedule struct {
	repo domain.Repository
}

func NewListSchedule(repo domain.Repository) *ListSchedule {
	return &ListSchedule{repo: repo}
}

// Execute lists a business's appointments for one calendar day, ordered by
// the slot label's string value.
func (uc *ListSchedule) Execute(
	ctx context.Context,
	businessID string,
	date time.Time,
) ([]dto.ScheduleEntryDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleEntryDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.ScheduleEntryDTO{
			ID:            ap.ID,
			Date:          ap.Date,
			Time:          ap.Time,
			CustomerName:  ap.CustomerName,
			CustomerEmail: ap.CustomerEmail,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})

	return out, nil
}

type ListMonth struct {
	repo domain.Repository
}

func NewListMonth(repo domain.Repository) *ListMonth {
	return &ListMonth{repo: repo}
}

// Execute aggregates a month's appointments into per-day counts for the
// calendar grid.
func (uc *ListMonth) Execute(
	ctx context.Context,
	businessID string,
	year int,
	month time.Month,
) ([]dto.MonthDayDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForMonth(ctx, businessID, year, month)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, ap := range appointments {
		counts[ap.Date.Format("2006-01-02")]++
	}

	out := make([]dto.MonthDayDTO, 0, len(counts))
	for day, n := range counts {
		out = append(out, dto.MonthDayDTO{Date: day, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out, nil
}
