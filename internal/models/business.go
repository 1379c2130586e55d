package models

// BusinessProfile carries the fields that only exist for business accounts.
type BusinessProfile struct {
	Description  string               `json:"description"`
	Services     []Service            `json:"services"`
	Availability []AvailabilityWindow `json:"availability"`
}

type Service struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
}
