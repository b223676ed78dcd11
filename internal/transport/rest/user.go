package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
	"github.com/heartmarshall/canvas-backend/internal/service/user"
)

type userService interface {
	Fresh(caller domain.Caller) (*domain.User, error)
	GetUser(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.User, error)
	UpsertUser(ctx context.Context, caller domain.Caller, id uuid.UUID, input user.UpsertUserInput) (*user.Profile, error)
	DeleteUser(ctx context.Context, caller domain.Caller, id uuid.UUID) error
}

// UserHandler serves user REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type userRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Summary  *string `json:"summary"`
	Avatar   *string `json:"avatar"`
	DarkMode *bool   `json:"dark_mode"`
	Digest   *bool   `json:"digest"`
	Locale   *string `json:"locale"`
	Role     *int    `json:"role"`
}

type userResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Username    *string    `json:"username"`
	Summary     *string    `json:"summary"`
	Avatar      *string    `json:"avatar"`
	DarkMode    bool       `json:"dark_mode"`
	Digest      bool       `json:"digest"`
	Locale      string     `json:"locale"`
	Role        int        `json:"role"`
	HasPassword bool       `json:"has_password"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	UpdatedAt   time.Time  `json:"updated_at,omitzero"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// profileResponse carries the catalog bundle as a JSON-encoded string.
type profileResponse struct {
	User userResponse `json:"user"`
	I18n string       `json:"i18n"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Username:    u.Username,
		Summary:     u.Summary,
		Avatar:      u.Avatar,
		DarkMode:    u.DarkMode,
		Digest:      u.Digest,
		Locale:      u.Locale,
		Role:        int(u.Role),
		HasPassword: u.HasPassword(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		DeletedAt:   u.DeletedAt,
	}
}

// Fresh handles GET /api/users/create.
func (h *UserHandler) Fresh(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Fresh(callerFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Show handles GET /api/users/{id}.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.svc.GetUser(r.Context(), callerFrom(r), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Upsert handles POST /api/users/{id}.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req userRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.UpsertUser(r.Context(), callerFrom(r), id, user.UpsertUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Summary:  req.Summary,
		Avatar:   req.Avatar,
		DarkMode: req.DarkMode,
		Digest:   req.Digest,
		Locale:   req.Locale,
		Role:     req.Role,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, profileResponse{User: toUserResponse(p.User), I18n: p.I18n})
}

// Delete handles DELETE /api/users/{id}. Deleting one's own account
// yields 403 with an empty body.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(r.Context(), callerFrom(r), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

