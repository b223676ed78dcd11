// Package user implements the User repository using PostgreSQL.
// Users are soft-deleted; email and username are unique among live rows
// through the users_email_live_key and users_username_live_key partial indexes.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/canvas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/canvas-backend/internal/domain"
)

const table = "users"

// Unique index names, as declared in migrations.
const (
	EmailIndex    = "users_email_live_key"
	UsernameIndex = "users_username_live_key"
	PrimaryKey    = "users_pkey"
)

var columns = []string{
	"id", "name", "email", "username", "password", "summary", "avatar",
	"dark_mode", "digest", "locale", "role", "created_at", "updated_at", "deleted_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetLive returns the live user with id. A non-global scope only matches
// the user it is owned by (the user itself).
func (r *Repo) GetLive(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted_at": nil})
	query = postgres.ForUpdate(ctx, postgres.Scoped(query, "id", scope))

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetLiveByEmail returns the live user with email.
func (r *Repo) GetLiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"email": email}).
		Where(sq.Eq{"deleted_at": nil})

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return row.toDomain(), nil
}

// FindDeleted returns the most recently soft-deleted user with email.
func (r *Repo) FindDeleted(ctx context.Context, scope domain.Scope, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"email": email}).
		Where(sq.NotEq{"deleted_at": nil})
	query = postgres.ForUpdate(ctx, postgres.Scoped(query, "id", scope).OrderBy("deleted_at DESC", "id").Limit(1))

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return row.toDomain(), nil
}

// KeyTaken reports whether a live user other than excludeID holds email.
func (r *Repo) KeyTaken(ctx context.Context, scope domain.Scope, email string, excludeID uuid.UUID) (bool, error) {
	taken, err := r.taken(ctx, scope, "email", email, excludeID)
	if err != nil {
		return false, fmt.Errorf("user email taken: %w", err)
	}
	return taken, nil
}

// UsernameTaken reports whether a live user other than excludeID holds username.
func (r *Repo) UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	taken, err := r.taken(ctx, domain.GlobalScope(), "username", username, excludeID)
	if err != nil {
		return false, fmt.Errorf("user username taken: %w", err)
	}
	return taken, nil
}

func (r *Repo) taken(ctx context.Context, scope domain.Scope, column, value string, excludeID uuid.UUID) (bool, error) {
	inner := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{column: value}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.NotEq{"id": excludeID})
	inner = postgres.Scoped(inner, "id", scope)

	var taken bool
	if err := postgres.Get(ctx, r.q(ctx), &taken, inner.Prefix("SELECT EXISTS (").Suffix(")")); err != nil {
		return false, err
	}
	return taken, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the stored row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "name", "email", "username", "password", "summary", "avatar",
			"dark_mode", "digest", "locale", "role", "deleted_at").
		Values(u.ID, u.Name, u.Email, u.Username, u.Password, u.Summary, u.Avatar,
			u.DarkMode, u.Digest, u.Locale, int16(u.Role), u.DeletedAt).
		Suffix(returning())

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// Update writes every mutable column, including deleted_at, and returns the stored row.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("name", u.Name).
		Set("email", u.Email).
		Set("username", u.Username).
		Set("password", u.Password).
		Set("summary", u.Summary).
		Set("avatar", u.Avatar).
		Set("dark_mode", u.DarkMode).
		Set("digest", u.Digest).
		Set("locale", u.Locale).
		Set("role", int16(u.Role)).
		Set("deleted_at", u.DeletedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": u.ID}).
		Suffix(returning())

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// SetRoleByEmail changes the role of the live user with email and returns
// the stored row. Used by operator tooling outside the upsert path.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("role", int16(role)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"email": email}).
		Where(sq.Eq{"deleted_at": nil}).
		Suffix(returning())

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return row.toDomain(), nil
}

// SoftDelete stamps deleted_at on the live user with id.
func (r *Repo) SoftDelete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	query := postgres.Builder().
		Update(table).
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted_at": nil})
	if !scope.IsGlobal() {
		query = query.Where(sq.Eq{"id": scope.OwnerID})
	}

	n, err := postgres.Exec(ctx, r.q(ctx), query)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Username  *string    `db:"username"`
	Password  *string    `db:"password"`
	Summary   *string    `db:"summary"`
	Avatar    *string    `db:"avatar"`
	DarkMode  bool       `db:"dark_mode"`
	Digest    bool       `db:"digest"`
	Locale    string     `db:"locale"`
	Role      int16      `db:"role"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (row userRow) toDomain() *domain.User {
	return &domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Username:  row.Username,
		Password:  row.Password,
		Summary:   row.Summary,
		Avatar:    row.Avatar,
		DarkMode:  row.DarkMode,
		Digest:    row.Digest,
		Locale:    row.Locale,
		Role:      domain.UserRole(row.Role),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}
}

func returning() string {
	return "RETURNING id, name, email, username, password, summary, avatar, " +
		"dark_mode, digest, locale, role, created_at, updated_at, deleted_at"
}
