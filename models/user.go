package models

import "time"

// Role is the authorization role of a user account.
type Role string

const (
	// RoleUser can only see and mutate notes it owns.
	RoleUser Role = "user"

	// RoleAdmin can see and mutate every note in the system.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque, stable identifier of the user (UUIDv7).
	ID string `json:"id"`

	// Username is unique across all accounts and shown in admin views.
	Username string `json:"username"`

	// Email is unique across all accounts and used as the login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role controls note visibility; see [Role].
	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// OwnerSummary is the public projection of a note owner embedded into
// admin-scoped note responses.
type OwnerSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
