package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// LoginWithPassword authenticates a live user with email + password.
// Returns ErrUnauthorized if the email is unknown, the user has no password
// or the password is wrong.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetLiveByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword get user: %w", err)
	}

	// Accounts created without a password cannot log in this way.
	if !user.HasPassword() {
		return nil, domain.ErrUnauthorized
	}
	if !s.hasher.Compare(*user.Password, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{AccessToken: token, ExpiresIn: s.accessTTL, User: user}, nil
}
