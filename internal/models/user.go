package models

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleBusiness Role = "BUSINESS"
)

// User is the shared identity for customers and businesses. Email is the
// uniqueness key across both roles; Role never changes after registration.
// Business holds the business-only fields and is nil for customers.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`

	Business *BusinessProfile `json:"business,omitempty"`
}

func (u *User) IsBusiness() bool {
	return u.Role == RoleBusiness && u.Business != nil
}
