package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/service/topic"
)

type topicService interface {
	Fresh(caller domain.Caller) (*domain.Topic, error)
	GetTopic(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Topic, error)
	UpsertTopic(ctx context.Context, caller domain.Caller, id uuid.UUID, input topic.UpsertTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, caller domain.Caller, id uuid.UUID) error
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type topicRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type topicResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
	UpdatedAt time.Time  `json:"updated_at,omitzero"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		DeletedAt: t.DeletedAt,
	}
}

// Fresh handles GET /api/topics/create.
func (h *TopicHandler) Fresh(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Fresh(callerFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Show handles GET /api/topics/{id}.
func (h *TopicHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.GetTopic(r.Context(), callerFrom(r), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Upsert handles POST /api/topics/{id}.
func (h *TopicHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req topicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.svc.UpsertTopic(r.Context(), callerFrom(r), id, topic.UpsertTopicInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), callerFrom(r), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
