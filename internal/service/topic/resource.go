package topic

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/service/upsert"
)

// resource plugs topics into the upsert orchestrator.
type resource struct {
	topics   topicRepo
	users    userRepo
	fallback string
}

var _ upsert.Resource[*domain.Topic, UpsertTopicInput] = resource{}

func (resource) Entity() domain.EntityType { return domain.EntityTypeTopic }

func (resource) KeyField() string { return "slug" }

func (resource) FieldForConstraint(constraint string) (string, bool) {
	if constraint == slugIndex {
		return "slug", true
	}
	return "", false
}

func (resource) NaturalKey(in UpsertTopicInput) string {
	if in.Slug == nil {
		return ""
	}
	return *in.Slug
}

func (resource) NewRecord(id uuid.UUID, scope upsert.Scope) *domain.Topic {
	return &domain.Topic{ID: id, UserID: scope.OwnerID}
}

func (r resource) Fields(in UpsertTopicInput, t upsert.Target[*domain.Topic]) []upsert.Field {
	return []upsert.Field{
		{Name: "name", Value: in.Name, Required: true},
		{Name: "slug", Value: in.Slug, Required: true, Rules: []upsert.Rule{
			upsert.AlphaDash(),
			upsert.UniqueKey[*domain.Topic](r.topics, t.Scope, t.Record.ID),
		}},
	}
}

// Locale renders messages in the owning user's locale for stored topics.
func (r resource) Locale(ctx context.Context, t upsert.Target[*domain.Topic]) (string, error) {
	if t.IsNew {
		return r.fallback, nil
	}
	owner, err := r.users.GetLive(ctx, domain.GlobalScope(), t.Record.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return r.fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("get owner: %w", err)
	}
	return owner.Locale, nil
}

func (resource) Reconcile(caller domain.Caller, t upsert.Target[*domain.Topic], in UpsertTopicInput) error {
	t.Record.UserID = caller.UserID
	upsert.Assign(&t.Record.Name, in.Name)
	upsert.Assign(&t.Record.Slug, in.Slug)
	return nil
}

func (resource) Snapshot(t *domain.Topic) map[string]any {
	return map[string]any{
		"name": t.Name,
		"slug": t.Slug,
	}
}
