package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/service/upsert"
)

// Fresh returns an unsaved contributor with a newly generated id.
func (s *Service) Fresh(caller domain.Caller) (*domain.User, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	return &domain.User{
		ID:     uuid.New(),
		Role:   domain.UserRoleContributor,
		Locale: s.catalog.Fallback(),
		Digest: true,
	}, nil
}

// GetUser returns the live user with id.
func (s *Service) GetUser(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.User, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	return s.users.Get(ctx, domain.GlobalScope(), id)
}

// UpsertUser creates, updates or restores the user addressed by id and
// returns it with the message catalog of its locale. A soft-deleted user
// with the same email is restored under its original id. Non-admins may
// only write their own record and cannot change its role.
func (s *Service) UpsertUser(ctx context.Context, caller domain.Caller, id uuid.UUID, input UpsertUserInput) (*Profile, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewRuleError("id", domain.RuleRequired, "required")
	}
	if !caller.IsAdmin() && !caller.Owns(id) {
		return nil, domain.ErrForbidden
	}

	res, err := s.users.Upsert(ctx, caller, domain.GlobalScope(), id, input.Normalize())
	if err != nil {
		return nil, err
	}

	bundle, err := s.catalog.BundleJSON(res.Record.Locale)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", res.Record.Locale, err)
	}

	s.log.InfoContext(ctx, "user upserted",
		slog.String("user_id", caller.UserID.String()),
		slog.String("target_user_id", res.Record.ID.String()),
		slog.String("path", string(res.Path)),
	)

	return &Profile{User: res.Record, I18n: bundle}, nil
}

// DeleteUser soft-deletes the user with id. Only admins may delete users,
// and never their own account.
func (s *Service) DeleteUser(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	if caller.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, caller, domain.GlobalScope(), id, upsert.ForbidSelf); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", caller.UserID.String()),
		slog.String("target_user_id", id.String()),
	)
	return nil
}
