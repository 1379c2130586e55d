package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/schedulingco/scheduler-api/internal/httperr"
	"github.com/schedulingco/scheduler-api/internal/models"
)

// Store is the whole application state: every user, appointment and audit
// entry lives here for the lifetime of the process. It is owned by the
// top-level wiring and handed to handlers and use cases by reference; nothing
// else holds state.
type Store struct {
	mu sync.RWMutex

	users        []*models.User
	appointments []models.Appointment
	auditLogs    []models.AuditLog

	// version bumps on every mutation that can change slot resolution.
	version uint64

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the ID source, for tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ======================================================
// Users
// ======================================================

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
}

// Register creates a new account. The email must not already belong to any
// user, customer or business alike; the match is an exact string compare.
// Business accounts start with the default weekly availability.
func (s *Store) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, httperr.ErrBusiness("duplicate_email")
		}
	}

	user := &models.User{
		ID:       s.newID(),
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Role:     in.Role,
	}

	if in.Role == models.RoleBusiness {
		user.Business = &models.BusinessProfile{
			Availability: models.DefaultWeeklyAvailability(),
		}
	}

	s.users = append(s.users, user)
	s.version++

	return cloneUser(user), nil
}

// Authenticate looks up the exact (email, password) pair. The failure is the
// same whichever half mismatched.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return cloneUser(u), nil
		}
	}
	return nil, httperr.ErrBusiness("invalid_credentials")
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findUser(id)
	if u == nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return cloneUser(u), nil
}

func (s *Store) GetBusiness(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findUser(id)
	if u == nil || !u.IsBusiness() {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	return cloneUser(u), nil
}

// ListBusinesses returns business accounts whose name or description contains
// the filter, case-insensitively. An empty filter returns everything, in
// registration order.
func (s *Store) ListBusinesses(ctx context.Context, filter string) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(filter))

	var out []*models.User
	for _, u := range s.users {
		if !u.IsBusiness() {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Business.Description), needle) {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// ======================================================
// Business profile
// ======================================================

func (s *Store) UpdateBusinessProfile(ctx context.Context, id, name, description string, services []models.Service) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(id)
	if u == nil || !u.IsBusiness() {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	if name != "" {
		u.Name = name
	}
	u.Business.Description = description
	u.Business.Services = append([]models.Service(nil), services...)
	s.version++

	return cloneUser(u), nil
}

// UpdateBusinessAvailability replaces the weekly schedule. Windows are
// normalized to exactly one per weekday; start/end are stored as submitted,
// an inverted window simply offers no slots.
func (s *Store) UpdateBusinessAvailability(ctx context.Context, id string, windows []models.AvailabilityWindow) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(id)
	if u == nil || !u.IsBusiness() {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	u.Business.Availability = models.NormalizeWeeklyAvailability(windows)
	s.version++

	return cloneUser(u), nil
}

// ======================================================
// Appointments
// ======================================================

// CreateAppointment assigns the ID and creation time and appends. There is no
// check that the slot is still free.
func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap.ID = s.newID()
	ap.CreatedAt = s.now()
	s.appointments = append(s.appointments, *ap)
	s.version++

	return nil
}

func (s *Store) ListAppointmentsForDay(ctx context.Context, businessID string, date time.Time) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.BusinessID != businessID {
			continue
		}
		if !sameDay(ap.Date, date) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (s *Store) ListAppointmentsForMonth(ctx context.Context, businessID string, year int, month time.Month) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.BusinessID != businessID {
			continue
		}
		y, m, _ := ap.Date.Date()
		if y != year || m != month {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

// ======================================================
// Audit log
// ======================================================

func (s *Store) AppendAuditLog(entry models.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.newID()
	entry.CreatedAt = s.now()
	s.auditLogs = append(s.auditLogs, entry)
}

// ListAuditLogs returns a business's audit entries, newest first, optionally
// filtered by action and entity.
func (s *Store) ListAuditLogs(ctx context.Context, businessID, action, entity string) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AuditLog
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		entry := s.auditLogs[i]
		if entry.BusinessID != businessID {
			continue
		}
		if action != "" && entry.Action != action {
			continue
		}
		if entity != "" && entry.Entity != entity {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

// StateVersion is a monotonically increasing counter over mutations; slot
// cache keys include it so stale results are never served.
func (s *Store) StateVersion() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// ======================================================
// Internals
// ======================================================

func (s *Store) findUser(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func cloneUser(u *models.User) *models.User {
	out := *u
	if u.Business != nil {
		biz := *u.Business
		biz.Services = append([]models.Service(nil), u.Business.Services...)
		biz.Availability = append([]models.AvailabilityWindow(nil), u.Business.Availability...)
		out.Business = &biz
	}
	return &out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
