package models

import "time"

// Appointment is immutable once created: there is no edit or cancel flow.
// CustomerName and CustomerEmail are a snapshot taken at booking time, not a
// live reference to the customer account.
type Appointment struct {
	ID string `json:"id"`

	BusinessID string `json:"business_id"`

	Date time.Time `json:"date"`
	Time string    `json:"time"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`

	CreatedAt time.Time `json:"created_at"`
}
