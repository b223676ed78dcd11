package domain

import "github.com/google/uuid"

// Scope partitions natural keys. Topics are scoped to their owner; users
// live in the global scope (zero value).
type Scope struct {
	OwnerID uuid.UUID
}

// GlobalScope returns the unpartitioned scope.
func GlobalScope() Scope { return Scope{} }

// OwnerScope returns the scope of records owned by userID.
func OwnerScope(userID uuid.UUID) Scope { return Scope{OwnerID: userID} }

// IsGlobal reports whether the scope has no owner partition.
func (s Scope) IsGlobal() bool { return s.OwnerID == uuid.Nil }

func (s Scope) String() string {
	if s.IsGlobal() {
		return "global"
	}
	return "owner:" + s.OwnerID.String()
}
