package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// Fresh returns an unsaved topic with a newly generated id for the caller
// to fill in and upsert.
func (s *Service) Fresh(caller domain.Caller) (*domain.Topic, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Topic{ID: uuid.New(), UserID: caller.UserID}, nil
}

// GetTopic returns the caller's live topic with id.
func (s *Service) GetTopic(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Topic, error) {
	scope, err := ownerScope(caller)
	if err != nil {
		return nil, err
	}
	return s.topics.Get(ctx, scope, id)
}

// UpsertTopic creates, updates or restores the caller's topic addressed by id.
// A soft-deleted topic with the same slug is restored under its original id.
func (s *Service) UpsertTopic(ctx context.Context, caller domain.Caller, id uuid.UUID, input UpsertTopicInput) (*domain.Topic, error) {
	scope, err := ownerScope(caller)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewRuleError("id", domain.RuleRequired, "required")
	}

	res, err := s.topics.Upsert(ctx, caller, scope, id, input.Normalize())
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic upserted",
		slog.String("user_id", caller.UserID.String()),
		slog.String("topic_id", res.Record.ID.String()),
		slog.String("path", string(res.Path)),
	)

	return res.Record, nil
}

// DeleteTopic soft-deletes the caller's topic with id.
func (s *Service) DeleteTopic(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	scope, err := ownerScope(caller)
	if err != nil {
		return err
	}

	if err := s.topics.Delete(ctx, caller, scope, id); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", caller.UserID.String()),
		slog.String("topic_id", id.String()),
	)
	return nil
}

