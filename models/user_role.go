package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleEmployee UserRole = "employee"
)

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r UserRole) IsManager() bool {
	return r == UserRoleManager
}

// CanModerate reports whether the role may act on behalf of a department
// (direct assignment, event approval, rejection review).
func (r UserRole) CanModerate() bool {
	return r == UserRoleAdmin || r == UserRoleManager
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleEmployee:
		return true
	}
	return false
}

// Actor is the authenticated caller resolved from JWT claims.
type Actor struct {
	ID           string
	Role         UserRole
	DepartmentID string
}
