package rest

import (
	"net/http"

	"github.com/heartmarshall/canvas-backend/internal/i18n"
)

// LocaleHandler lists the supported locales.
type LocaleHandler struct {
	catalog localeLister
}

// NewLocaleHandler creates a LocaleHandler.
func NewLocaleHandler(catalog localeLister) *LocaleHandler {
	return &LocaleHandler{catalog: catalog}
}

type localesResponse struct {
	Locales []i18n.Locale `json:"locales"`
}

// List handles GET /api/locales.
func (h *LocaleHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, localesResponse{Locales: h.catalog.Locales()})
}
