package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/service/upsert"
)

// resource plugs users into the upsert orchestrator.
type resource struct {
	users   userRepo
	catalog catalog
	hasher  hasher
}

var _ upsert.Resource[*domain.User, UpsertUserInput] = resource{}

func (resource) Entity() domain.EntityType { return domain.EntityTypeUser }

func (resource) KeyField() string { return "email" }

func (resource) FieldForConstraint(constraint string) (string, bool) {
	switch constraint {
	case emailIndex:
		return "email", true
	case usernameIndex:
		return "username", true
	}
	return "", false
}

func (resource) NaturalKey(in UpsertUserInput) string {
	if in.Email == nil {
		return ""
	}
	return *in.Email
}

func (r resource) NewRecord(id uuid.UUID, _ upsert.Scope) *domain.User {
	return &domain.User{
		ID:     id,
		Role:   domain.UserRoleContributor,
		Locale: r.catalog.Fallback(),
		Digest: true,
	}
}

func (r resource) Fields(in UpsertUserInput, t upsert.Target[*domain.User]) []upsert.Field {
	id := t.Record.ID
	roles := []string{
		strconv.Itoa(int(domain.UserRoleContributor)),
		strconv.Itoa(int(domain.UserRoleEditor)),
		strconv.Itoa(int(domain.UserRoleAdmin)),
	}

	return []upsert.Field{
		{Name: "name", Value: in.Name, Required: true},
		{Name: "email", Value: in.Email, Required: true, Rules: []upsert.Rule{
			upsert.Email(),
			upsert.UniqueKey[*domain.User](r.users, t.Scope, id),
		}},
		{Name: "username", Value: in.Username, Rules: []upsert.Rule{
			upsert.AlphaDash(),
			upsert.Unique(func(ctx context.Context, username string) (bool, error) {
				return r.users.UsernameTaken(ctx, username, id)
			}),
		}},
		{Name: "password", Value: in.Password, Rules: []upsert.Rule{
			upsert.Min(MinPasswordLength),
		}},
		{Name: "role", Value: in.roleValue(), Rules: []upsert.Rule{
			upsert.In(roles...),
		}},
	}
}

// Locale renders messages in the stored user's own locale.
func (r resource) Locale(_ context.Context, t upsert.Target[*domain.User]) (string, error) {
	if t.IsNew || !r.catalog.Supports(t.Record.Locale) {
		return r.catalog.Fallback(), nil
	}
	return t.Record.Locale, nil
}

func (r resource) Reconcile(caller domain.Caller, t upsert.Target[*domain.User], in UpsertUserInput) error {
	u := t.Record
	if err := authorizeWrite(caller, u, in); err != nil {
		return err
	}

	upsert.Assign(&u.Name, in.Name)
	upsert.Assign(&u.Email, in.Email)
	assignOptional(&u.Username, in.Username)
	assignOptional(&u.Summary, in.Summary)
	assignOptional(&u.Avatar, in.Avatar)
	upsert.Assign(&u.DarkMode, in.DarkMode)
	upsert.Assign(&u.Digest, in.Digest)
	if in.Role != nil {
		u.Role = domain.UserRole(*in.Role)
	}
	u.Locale = upsert.ResolveLocale(in.Locale, r.catalog.Supports, r.catalog.Fallback())

	password, err := upsert.ApplySecret(u.Password, in.Password, r.hasher)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = password
	return nil
}

// authorizeWrite lets admins write any user. Everyone else may only write
// their own record and must leave its role as stored.
func authorizeWrite(caller domain.Caller, u *domain.User, in UpsertUserInput) error {
	if caller.IsAdmin() {
		return nil
	}
	if !caller.Owns(u.ID) {
		return fmt.Errorf("write user %s: %w", u.ID, domain.ErrForbidden)
	}
	if in.Role != nil && domain.UserRole(*in.Role) != u.Role {
		return fmt.Errorf("change own role: %w", domain.ErrForbidden)
	}
	return nil
}

// Snapshot omits the password digest.
func (resource) Snapshot(u *domain.User) map[string]any {
	snap := map[string]any{
		"name":      u.Name,
		"email":     u.Email,
		"locale":    u.Locale,
		"role":      u.Role.String(),
		"dark_mode": u.DarkMode,
		"digest":    u.Digest,
	}
	if u.Username != nil {
		snap["username"] = *u.Username
	}
	return snap
}

// assignOptional copies a present src into dst; an empty src clears dst.
func assignOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}
