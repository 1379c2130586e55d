package store

import (
	"time"

	"github.com/schedulingco/scheduler-api/internal/models"
)

// Seed loads the demo accounts and a few future appointments so a fresh
// process has something to browse. Safe to skip in production-like runs.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) > 0 {
		return
	}

	price := func(v float64) *float64 { return &v }

	customer := &models.User{
		ID:       s.newID(),
		Email:    "customer@example.com",
		Password: "password",
		Name:     "Alice Johnson",
		Role:     models.RoleCustomer,
	}

	business := &models.User{
		ID:       s.newID(),
		Email:    "business@example.com",
		Password: "password",
		Name:     "The Scheduling Co.",
		Role:     models.RoleBusiness,
		Business: &models.BusinessProfile{
			Description: "Consulting sessions for small teams.",
			Services: []models.Service{
				{Name: "Intro Call", Description: "30 minute introduction", Price: nil},
				{Name: "Strategy Session", Description: "Full hour deep dive", Price: price(120)},
			},
			Availability: models.DefaultWeeklyAvailability(),
		},
	}

	s.users = append(s.users, customer, business)

	today := s.now()
	day := func(offset int) time.Time {
		return today.AddDate(0, 0, offset)
	}

	seedAppointments := []models.Appointment{
		{
			BusinessID:    business.ID,
			Date:          day(2),
			Time:          "10:00 AM",
			CustomerName:  "Alice Johnson",
			CustomerEmail: "customer@example.com",
		},
		{
			BusinessID:    business.ID,
			Date:          day(2),
			Time:          "02:00 PM",
			CustomerName:  "Bob Williams",
			CustomerEmail: "bob@example.com",
		},
		{
			BusinessID:    business.ID,
			Date:          day(5),
			Time:          "11:00 AM",
			CustomerName:  "Charlie Brown",
			CustomerEmail: "charlie@example.com",
		},
	}

	for _, ap := range seedAppointments {
		ap.ID = s.newID()
		ap.CreatedAt = today
		s.appointments = append(s.appointments, ap)
	}
	s.version++
}
