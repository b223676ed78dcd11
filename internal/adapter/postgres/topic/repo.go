// Package topic implements the Topic repository using PostgreSQL.
// Topics are soft-deleted; live rows carry deleted_at IS NULL and their slug
// is unique per owner through the topics_user_slug_live_key partial index.
package topic

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canvas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canvas-backend/internal/domain"
)

const table = "topics"

// Unique index names, as declared in migrations.
const (
	SlugIndex  = "topics_user_slug_live_key"
	PrimaryKey = "topics_pkey"
)

var columns = []string{"id", "user_id", "name", "slug", "created_at", "updated_at", "deleted_at"}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetLive returns the live topic with id within scope.
// Inside a transaction the row is locked FOR UPDATE.
func (r *Repo) GetLive(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Topic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted_at": nil})
	query = postgres.ForUpdate(ctx, postgres.Scoped(query, "user_id", scope))

	var row topicRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return row.toDomain(), nil
}

// FindDeleted returns the most recently soft-deleted topic with slug within scope.
func (r *Repo) FindDeleted(ctx context.Context, scope domain.Scope, slug string) (*domain.Topic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"slug": slug}).
		Where(sq.NotEq{"deleted_at": nil})
	query = postgres.ForUpdate(ctx, postgres.Scoped(query, "user_id", scope).OrderBy("deleted_at DESC", "id").Limit(1))

	var row topicRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}
	return row.toDomain(), nil
}

// KeyTaken reports whether a live topic other than excludeID holds slug within scope.
func (r *Repo) KeyTaken(ctx context.Context, scope domain.Scope, slug string, excludeID uuid.UUID) (bool, error) {
	inner := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"slug": slug}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.NotEq{"id": excludeID})
	inner = postgres.Scoped(inner, "user_id", scope)

	var taken bool
	if err := postgres.Get(ctx, r.q(ctx), &taken, inner.Prefix("SELECT EXISTS (").Suffix(")")); err != nil {
		return false, fmt.Errorf("topic slug taken: %w", err)
	}
	return taken, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the stored row.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "name", "slug", "deleted_at").
		Values(t.ID, t.UserID, t.Name, t.Slug, t.DeletedAt).
		Suffix(returning())

	var row topicRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	return row.toDomain(), nil
}

// Update writes every mutable column, including deleted_at, and returns the stored row.
func (r *Repo) Update(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	query := postgres.Builder().
		Update(table).
		Set("user_id", t.UserID).
		Set("name", t.Name).
		Set("slug", t.Slug).
		Set("deleted_at", t.DeletedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": t.ID}).
		Suffix(returning())

	var row topicRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	return row.toDomain(), nil
}

// SoftDelete stamps deleted_at on the live topic with id within scope.
func (r *Repo) SoftDelete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	query := postgres.Builder().
		Update(table).
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted_at": nil})
	if !scope.IsGlobal() {
		query = query.Where(sq.Eq{"user_id": scope.OwnerID})
	}

	n, err := postgres.Exec(ctx, r.q(ctx), query)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if n == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type topicRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Name      string     `db:"name"`
	Slug      string     `db:"slug"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (row topicRow) toDomain() *domain.Topic {
	return &domain.Topic{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Slug:      row.Slug,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}
}

func returning() string {
	return "RETURNING id, user_id, name, slug, created_at, updated_at, deleted_at"
}
