package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/service/upsert"
)

// Unique indexes guarding live users, as declared in migrations.
const (
	emailIndex    = "users_email_live_key"
	usernameIndex = "users_username_live_key"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetLive(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.User, error)
	FindDeleted(ctx context.Context, scope domain.Scope, email string) (*domain.User, error)
	KeyTaken(ctx context.Context, scope domain.Scope, email string, excludeID uuid.UUID) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	SoftDelete(ctx context.Context, scope domain.Scope, id uuid.UUID) error
}

// catalog is the message catalog the service resolves locales against.
type catalog interface {
	Fallback() string
	Supports(locale string) bool
	BundleJSON(locale string) (string, error)
}

type hasher interface {
	Hash(plaintext string) (string, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user account operations. Emails and usernames are
// unique across all live users.
type Service struct {
	users   *upsert.Orchestrator[*domain.User, UpsertUserInput]
	catalog catalog
	log     *slog.Logger
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	validator *upsert.Validator,
	cat catalog,
	secrets hasher,
	audit auditLogger,
	tx txManager,
	opts ...upsert.Option,
) *Service {
	res := resource{users: users, catalog: cat, hasher: secrets}
	return &Service{
		users:   upsert.NewOrchestrator[*domain.User, UpsertUserInput](logger, res, users, validator, audit, tx, opts...),
		catalog: cat,
		log:     logger.With("service", "user"),
	}
}

// Profile is a saved user together with the message catalog of its locale,
// encoded as JSON.
type Profile struct {
	User *domain.User
	I18n string
}
