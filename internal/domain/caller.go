package domain

import "github.com/google/uuid"

// Caller is the authenticated principal an operation runs on behalf of.
// It is passed explicitly into services instead of being read from ambient state.
type Caller struct {
	UserID uuid.UUID
	Role   UserRole
}

// NewCaller returns a Caller for the given user. The zero role grants no
// administrative rights.
func NewCaller(userID uuid.UUID) Caller {
	return Caller{UserID: userID}
}

// WithRole returns a copy of c acting under role.
func (c Caller) WithRole(role UserRole) Caller {
	c.Role = role
	return c
}

// IsAnonymous reports whether no principal is attached.
func (c Caller) IsAnonymous() bool { return c.UserID == uuid.Nil }

// IsAdmin reports whether the caller is an authenticated administrator.
func (c Caller) IsAdmin() bool {
	return !c.IsAnonymous() && c.Role == UserRoleAdmin
}

// Owns reports whether the caller is the given user.
func (c Caller) Owns(userID uuid.UUID) bool {
	return !c.IsAnonymous() && c.UserID == userID
}
