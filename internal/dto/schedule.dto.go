package dto

import "time"

type ScheduleEntryDTO struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
}

// MonthDayDTO backs the calendar grid markers: one entry per day of the month
// that has at least one appointment.
type MonthDayDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
