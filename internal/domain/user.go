package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a publishing account. Email is its natural key, unique among live users.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Username  *string
	Password  *string // bcrypt hash, never cleartext
	Summary   *string
	Avatar    *string
	DarkMode  bool
	Digest    bool
	Locale    string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// GetID returns the user's stable identifier.
func (u *User) GetID() uuid.UUID { return u.ID }

// Key returns the natural key (email).
func (u *User) Key() string { return u.Email }

// IsDeleted returns true if the user has been soft-deleted.
func (u *User) IsDeleted() bool { return u.DeletedAt != nil }

// Undelete clears the deletion marker in memory. The change becomes visible
// only once the record is persisted.
func (u *User) Undelete() { u.DeletedAt = nil }

// HasPassword reports whether a password hash is stored.
func (u *User) HasPassword() bool { return u.Password != nil && *u.Password != "" }
