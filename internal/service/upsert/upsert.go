// Package upsert reconciles client-addressed writes against owned,
// naturally keyed, soft-deletable records.
//
// An upsert names a record by a client-supplied id and carries a payload with
// the record's natural key. The orchestrator resolves which stored record the
// write lands on (the live record with that id, a soft-deleted record with the
// same natural key, or a brand new one), validates the payload against live
// records only, merges it into the target and persists the result in a single
// transaction.
package upsert

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// Record is an owned, naturally keyed, soft-deletable record.
// Implementations are pointer types (*domain.Topic, *domain.User).
type Record interface {
	GetID() uuid.UUID
	Key() string
	IsDeleted() bool
	Undelete()
}

// Scope partitions natural keys. The zero Scope is the global partition.
type Scope = domain.Scope

// Global returns the unpartitioned scope.
func Global() Scope { return domain.GlobalScope() }

// Owner returns the scope of records owned by userID.
func Owner(userID uuid.UUID) Scope { return domain.OwnerScope(userID) }

// Store is the persistence capability the orchestrator consumes.
// Every lookup is restricted to scope; a global scope matches all owners.
type Store[R Record] interface {
	// GetLive returns the non-deleted record with id, or domain.ErrNotFound.
	GetLive(ctx context.Context, scope Scope, id uuid.UUID) (R, error)
	// FindDeleted returns the most recently soft-deleted record with key,
	// or domain.ErrNotFound.
	FindDeleted(ctx context.Context, scope Scope, key string) (R, error)
	// KeyTaken reports whether a live record other than excludeID holds key.
	KeyTaken(ctx context.Context, scope Scope, key string, excludeID uuid.UUID) (bool, error)
	// Create inserts a new record.
	Create(ctx context.Context, rec R) (R, error)
	// Update writes every mutable column, including the deletion marker.
	Update(ctx context.Context, rec R) (R, error)
	// SoftDelete stamps the live record's deletion marker.
	SoftDelete(ctx context.Context, scope Scope, id uuid.UUID) error
}

// Resource plugs an entity into the orchestrator.
type Resource[R Record, P any] interface {
	// Entity names the resource in audit records and logs.
	Entity() domain.EntityType
	// KeyField is the payload field carrying the natural key.
	KeyField() string
	// FieldForConstraint maps a unique index name to the payload field it guards.
	FieldForConstraint(constraint string) (string, bool)
	// NaturalKey extracts the normalized natural key from the payload.
	NaturalKey(p P) string
	// NewRecord seeds an unsaved record with the requested id.
	NewRecord(id uuid.UUID, scope Scope) R
	// Fields lists the validation fields for the payload against target.
	Fields(p P, t Target[R]) []Field
	// Locale selects the locale validation messages are rendered in.
	Locale(ctx context.Context, t Target[R]) (string, error)
	// Reconcile merges the validated payload into the target record.
	Reconcile(caller domain.Caller, t Target[R], p P) error
	// Snapshot renders the record for audit changes.
	Snapshot(rec R) map[string]any
}

// Path is the reconciliation path an upsert took.
type Path string

const (
	PathCreated  Path = "created"
	PathUpdated  Path = "updated"
	PathRestored Path = "restored"
)

// Action returns the audit action recorded for the path.
func (p Path) Action() domain.AuditAction {
	switch p {
	case PathCreated:
		return domain.AuditActionCreate
	case PathRestored:
		return domain.AuditActionRestore
	}
	return domain.AuditActionUpdate
}

// Target is the record an upsert lands on.
type Target[R Record] struct {
	Record        R
	Scope         Scope
	RequestedID   uuid.UUID
	IsNew         bool
	IsResurrected bool
}

// Path returns the reconciliation path for the target.
func (t Target[R]) Path() Path {
	switch {
	case t.IsNew:
		return PathCreated
	case t.IsResurrected:
		return PathRestored
	}
	return PathUpdated
}

// Result is a persisted upsert.
type Result[R Record] struct {
	Record R
	Path   Path
}
