package entity

// Role represents the type of role a caller can have in the system.
// Roles are owned and assigned by the remote gateway; this service only
// ever reads them.
type Role string

const (
	// RoleAdmin may manage menu categories and items.
	RoleAdmin Role = "admin"
	// RoleUser is an authenticated caller without admin rights.
	RoleUser Role = "user"
	// RoleGuest is an unauthenticated visitor.
	RoleGuest Role = "guest"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	default:
		return false
	}
}
