package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetLiveByEmail(ctx context.Context, email string) (*domain.User, error)
}

// hasher verifies a plaintext secret against a stored digest.
type hasher interface {
	Compare(digest, plaintext string) bool
}

// tokenIssuer signs access tokens.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
}

// Service exchanges user credentials for access tokens.
type Service struct {
	log       *slog.Logger
	users     userRepo
	hasher    hasher
	tokens    tokenIssuer
	accessTTL time.Duration
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	secrets hasher,
	tokens tokenIssuer,
	accessTTL time.Duration,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		hasher:    secrets,
		tokens:    tokens,
		accessTTL: accessTTL,
	}
}
