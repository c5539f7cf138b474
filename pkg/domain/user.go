package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the user ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// ParseUserID parses the textual form of a user ID.
func ParseUserID(s string) (UserID, error) {
	u, err := uuid.Parse(s)

	return UserID(u), err
}

// User is a registered account. The email is stored normalized (lowercased and
// trimmed) and acts as the unique login identifier. PasswordHash is a bcrypt
// hash and never leaves the storage/auth layers.
type User struct {
	ID           UserID    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
