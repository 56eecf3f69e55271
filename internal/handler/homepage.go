package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/service"
)

// HomepageHandler exposes the homepage singleton.
type HomepageHandler struct {
	svc    *service.HomepageService
	logger *slog.Logger
}

func NewHomepageHandler(svc *service.HomepageService, logger *slog.Logger) *HomepageHandler {
	return &HomepageHandler{svc: svc, logger: logger}
}

// HandleGet — GET /api/homepage-content (public)
//
// Answers 201 the one time the default document gets created, 200 on
// every read after that. The featured reference lists come back as full
// Skill/Project records.
func (h *HomepageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, created, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, view)
}

// HandleUpdate — PUT /api/homepage-content (gated)
//
// Returns the stored form (bare featured ID lists), like the original.
func (h *HomepageHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch service.HomepagePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	content, err := h.svc.Update(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}
