package topic

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/service/upsert"
)

// slugIndex is the partial unique index guarding live slugs per owner.
const slugIndex = "topics_user_slug_live_key"

type topicRepo interface {
	GetLive(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Topic, error)
	FindDeleted(ctx context.Context, scope domain.Scope, slug string) (*domain.Topic, error)
	KeyTaken(ctx context.Context, scope domain.Scope, slug string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	SoftDelete(ctx context.Context, scope domain.Scope, id uuid.UUID) error
}

type userRepo interface {
	GetLive(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides topic management operations. Every operation is
// confined to topics owned by the caller.
type Service struct {
	topics *upsert.Orchestrator[*domain.Topic, UpsertTopicInput]
	log    *slog.Logger
}

// NewService creates a new Topic service. Validation messages are rendered
// in the owner's locale, or fallbackLocale when it cannot be determined.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	users userRepo,
	validator *upsert.Validator,
	fallbackLocale string,
	audit auditLogger,
	tx txManager,
	opts ...upsert.Option,
) *Service {
	res := resource{topics: topics, users: users, fallback: fallbackLocale}
	return &Service{
		topics: upsert.NewOrchestrator[*domain.Topic, UpsertTopicInput](log, res, topics, validator, audit, tx, opts...),
		log:    log.With("service", "topic"),
	}
}

func ownerScope(caller domain.Caller) (domain.Scope, error) {
	if caller.IsAnonymous() {
		return domain.Scope{}, domain.ErrUnauthorized
	}
	return domain.OwnerScope(caller.UserID), nil
}
