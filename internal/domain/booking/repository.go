package booking

import (
	"context"
	"time"

	"github.com/schedulingco/scheduler-api/internal/models"
)

// Repository is the state the booking use cases operate on. The in-memory
// store implements it; anything that can answer these queries would do.
type Repository interface {
	// -------- Users --------
	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetBusiness(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		businessID string,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForMonth(
		ctx context.Context,
		businessID string,
		year int,
		month time.Month,
	) ([]models.Appointment, error)

	// StateVersion changes whenever anything that can affect slot
	// resolution changes. Cache keys include it.
	StateVersion() uint64
}
