package model

import "time"

// Role is the fixed role enumeration. The set is closed: permission resolution
// keys off these values and unknown roles resolve to no permissions.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a user account (the principal a token is issued for).
type User struct {
	ID             int64
	Email          string
	FullName       string
	Role           Role
	IsActive       bool
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
