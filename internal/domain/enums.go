package domain

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTopic EntityType = "TOPIC"
	EntityTypeUser  EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTopic, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionRestore AuditAction = "RESTORE"
	AuditActionDelete  AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionRestore, AuditActionDelete:
		return true
	}
	return false
}

// UserRole is the publishing role of a user. Values match the stored smallint.
type UserRole int

const (
	UserRoleContributor UserRole = 1
	UserRoleEditor      UserRole = 2
	UserRoleAdmin       UserRole = 3
)

func (r UserRole) String() string {
	switch r {
	case UserRoleContributor:
		return "contributor"
	case UserRoleEditor:
		return "editor"
	case UserRoleAdmin:
		return "admin"
	}
	return "unknown"
}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleContributor, UserRoleEditor, UserRoleAdmin:
		return true
	}
	return false
}

// ParseUserRole maps a role name as rendered by String back to its value.
func ParseUserRole(name string) (UserRole, bool) {
	for _, r := range []UserRole{UserRoleContributor, UserRoleEditor, UserRoleAdmin} {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}
