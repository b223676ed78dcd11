package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a user-owned label for posts. Slug is unique per owner among live topics.
type Topic struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// GetID returns the topic's stable identifier.
func (t *Topic) GetID() uuid.UUID { return t.ID }

// Key returns the natural key (slug).
func (t *Topic) Key() string { return t.Slug }

// IsDeleted returns true if the topic has been soft-deleted.
func (t *Topic) IsDeleted() bool { return t.DeletedAt != nil }

// Undelete clears the deletion marker in memory.
func (t *Topic) Undelete() { t.DeletedAt = nil }
