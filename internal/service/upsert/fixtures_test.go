package upsert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/i18n"
)

//go:generate moq -out tx_manager_mock_test.go -pkg upsert . txManager
//go:generate moq -out audit_logger_mock_test.go -pkg upsert . auditLogger

// ---------------------------------------------------------------------------
// In-memory topic store
// ---------------------------------------------------------------------------

const topicSlugIndex = "topics_user_slug_live_key"

// memTopicStore mimics the topics table: primary key on id and a partial
// unique index on (user_id, slug) over live rows. It hands out copies so
// in-memory mutations only land through Create/Update.
type memTopicStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Topic
	tick int
}

func newMemTopicStore() *memTopicStore {
	return &memTopicStore{rows: make(map[uuid.UUID]domain.Topic)}
}

var _ Store[*domain.Topic] = (*memTopicStore)(nil)

func (s *memTopicStore) now() time.Time {
	s.tick++
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.tick) * time.Second)
}

func inScope(scope Scope, t domain.Topic) bool {
	return scope.IsGlobal() || t.UserID == scope.OwnerID
}

func (s *memTopicStore) GetLive(_ context.Context, scope Scope, id uuid.UUID) (*domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok || row.DeletedAt != nil || !inScope(scope, row) {
		return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return &row, nil
}

func (s *memTopicStore) FindDeleted(_ context.Context, scope Scope, key string) (*domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *domain.Topic
	for _, row := range s.rows {
		if row.DeletedAt == nil || row.Slug != key || !inScope(scope, row) {
			continue
		}
		if found == nil || row.DeletedAt.After(*found.DeletedAt) {
			r := row
			found = &r
		}
	}
	if found == nil {
		return nil, fmt.Errorf("topic %s: %w", key, domain.ErrNotFound)
	}
	return found, nil
}

func (s *memTopicStore) KeyTaken(_ context.Context, scope Scope, key string, excludeID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.DeletedAt == nil && row.Slug == key && row.ID != excludeID && inScope(scope, row) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memTopicStore) checkIndex(t *domain.Topic) error {
	if t.DeletedAt != nil {
		return nil
	}
	for _, row := range s.rows {
		if row.ID != t.ID && row.DeletedAt == nil && row.UserID == t.UserID && row.Slug == t.Slug {
			return &domain.UniqueViolationError{Constraint: topicSlugIndex}
		}
	}
	return nil
}

func (s *memTopicStore) Create(_ context.Context, t *domain.Topic) (*domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[t.ID]; ok {
		return nil, fmt.Errorf("topic %s: %w", t.ID, domain.ErrConflict)
	}
	if err := s.checkIndex(t); err != nil {
		return nil, fmt.Errorf("topic %s: %w", t.ID, err)
	}
	row := *t
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	s.rows[row.ID] = row
	return &row, nil
}

func (s *memTopicStore) Update(_ context.Context, t *domain.Topic) (*domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[t.ID]; !ok {
		return nil, fmt.Errorf("topic %s: %w", t.ID, domain.ErrNotFound)
	}
	if err := s.checkIndex(t); err != nil {
		return nil, fmt.Errorf("topic %s: %w", t.ID, err)
	}
	row := *t
	row.UpdatedAt = s.now()
	s.rows[row.ID] = row
	return &row, nil
}

func (s *memTopicStore) SoftDelete(_ context.Context, scope Scope, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok || row.DeletedAt != nil || !inScope(scope, row) {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	at := s.now()
	row.DeletedAt = &at
	s.rows[id] = row
	return nil
}

// row returns the stored row by id, deleted or not.
func (s *memTopicStore) row(id uuid.UUID) (domain.Topic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	return row, ok
}

// liveCount counts live rows holding (owner, slug).
func (s *memTopicStore) liveCount(owner uuid.UUID, slug string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, row := range s.rows {
		if row.DeletedAt == nil && row.UserID == owner && row.Slug == slug {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Test resource
// ---------------------------------------------------------------------------

type topicPayload struct {
	Name *string
	Slug *string
}

type testTopics struct {
	store Store[*domain.Topic]
}

var _ Resource[*domain.Topic, topicPayload] = testTopics{}

func (testTopics) Entity() domain.EntityType { return domain.EntityTypeTopic }

func (testTopics) KeyField() string { return "slug" }

func (testTopics) FieldForConstraint(c string) (string, bool) {
	if c == topicSlugIndex {
		return "slug", true
	}
	return "", false
}

func (testTopics) NaturalKey(p topicPayload) string {
	if p.Slug == nil {
		return ""
	}
	return domain.NormalizeKey(*p.Slug)
}

func (testTopics) NewRecord(id uuid.UUID, scope Scope) *domain.Topic {
	return &domain.Topic{ID: id, UserID: scope.OwnerID}
}

func (r testTopics) Fields(p topicPayload, t Target[*domain.Topic]) []Field {
	return []Field{
		{Name: "name", Value: p.Name, Required: true},
		{Name: "slug", Value: p.Slug, Required: true, Rules: []Rule{
			AlphaDash(),
			UniqueKey(r.store, t.Scope, t.Record.GetID()),
		}},
	}
}

func (testTopics) Locale(context.Context, Target[*domain.Topic]) (string, error) { return "en", nil }

func (r testTopics) Reconcile(caller domain.Caller, t Target[*domain.Topic], p topicPayload) error {
	t.Record.UserID = caller.UserID
	Assign(&t.Record.Name, p.Name)
	if p.Slug != nil {
		t.Record.Slug = domain.NormalizeKey(*p.Slug)
	}
	return nil
}

func (testTopics) Snapshot(t *domain.Topic) map[string]any {
	return map[string]any{"name": t.Name, "slug": t.Slug}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testValidator(t *testing.T) *Validator {
	t.Helper()
	c, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	return NewValidator(c)
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// defaultAuditMock returns an auditLoggerMock that always succeeds.
func defaultAuditMock() *auditLoggerMock {
	return &auditLoggerMock{
		LogFunc: func(ctx context.Context, record domain.AuditRecord) error {
			return nil
		},
	}
}

type harness struct {
	store *memTopicStore
	audit *auditLoggerMock
	tx    *txManagerMock
	orch  *Orchestrator[*domain.Topic, topicPayload]
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	store := newMemTopicStore()
	h := &harness{store: store, audit: defaultAuditMock(), tx: defaultTxMock()}
	h.orch = NewOrchestrator[*domain.Topic, topicPayload](
		testLogger(),
		testTopics{store: store},
		store,
		testValidator(t),
		h.audit,
		h.tx,
		opts...,
	)
	return h
}

func (h *harness) upsert(t *testing.T, owner, id uuid.UUID, name, slug string) (Result[*domain.Topic], error) {
	t.Helper()
	return h.orch.Upsert(context.Background(), domain.NewCaller(owner), Owner(owner), id, topicPayload{
		Name: ptr(name),
		Slug: ptr(slug),
	})
}

func (h *harness) mustUpsert(t *testing.T, owner, id uuid.UUID, name, slug string) *domain.Topic {
	t.Helper()
	res, err := h.upsert(t, owner, id, name, slug)
	if err != nil {
		t.Fatalf("upsert %s/%s: %v", id, slug, err)
	}
	return res.Record
}
