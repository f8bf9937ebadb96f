package domain

import "time"

// Role is the closed set of account roles.
// Every gate point matches on this type exhaustively instead of comparing
// raw strings, so adding a role is a compile-visible change.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// ParseRole converts a string into a Role, validating it against the closed set
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// IsAdmin returns true for the admin role
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents a registered account with its profile fields
type User struct {
	ID           string // uuid
	Name         string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
