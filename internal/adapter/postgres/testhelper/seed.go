package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a live contributor with a unique email.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Locale:    "en",
		Role:      domain.UserRoleContributor,
		Digest:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, locale, role, digest, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, user.Locale, int16(user.Role), user.Digest, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTopic creates a live topic owned by userID with the given slug.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, slug string) domain.Topic {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Topic " + slug,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, user_id, name, slug, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		topic.ID, topic.UserID, topic.Name, topic.Slug, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SoftDelete stamps deleted_at on a row of table without going through a repository.
func SoftDelete(t *testing.T, pool *pgxpool.Pool, table string, id uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE `+table+` SET deleted_at = $2 WHERE id = $1`, id, at.UTC())
	if err != nil {
		t.Fatalf("testhelper: SoftDelete %s %s: %v", table, id, err)
	}
}
