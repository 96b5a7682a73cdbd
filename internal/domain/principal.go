package domain

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Principal is the authenticated caller as asserted by the identity provider.
type Principal struct {
	Subject string
	Email   string
	Role    Role
}
