package domain

import "time"

// Role enumerates the account types known to the system.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleWarden     Role = "WARDEN"
	RoleStaff      Role = "STAFF"
	RoleTechnician Role = "TECHNICIAN"
)

// ValidRole reports whether the value is a member of the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleWarden, RoleStaff, RoleTechnician:
		return true
	}
	return false
}

// IsStaffRole reports whether the role belongs to maintenance personnel.
func IsStaffRole(r Role) bool {
	return r == RoleStaff || r == RoleTechnician
}

// User is the single account model; role-specific attributes are optional
// (room/block are populated for students only).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	PhoneNumber  *string
	RoomNumber   *string
	Block        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
