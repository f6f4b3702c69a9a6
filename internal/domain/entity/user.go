package entity

import (
	"time"
)

// UserRole represents user roles in the system
type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// ValidRole reports whether the role is one of the known roles.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleUser, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// RoleAllowed is the capability predicate behind every role-gated route:
// it reports whether role is a member of the allowed set.
func RoleAllowed(role UserRole, allowed ...UserRole) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// User represents an account in the user directory.
// Password always holds the bcrypt hash, never the plaintext.
type User struct {
	ID         string
	Username   string
	Email      string
	Password   string
	Role       UserRole
	Bio        string
	Picture    string
	Phone      string
	ExternalID string // id assigned by the external identity provider, if provisioned via webhook
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPublish reports whether the user may author blogs and courses.
func (u *User) CanPublish() bool {
	return RoleAllowed(u.Role, RoleAdmin, RoleInstructor)
}

// RefreshToken represents a server-side refresh token record.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// IsExpired checks if the refresh token is expired
func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// IsValid checks if the refresh token is valid
func (rt *RefreshToken) IsValid() bool {
	return !rt.Revoked && !rt.IsExpired()
}
