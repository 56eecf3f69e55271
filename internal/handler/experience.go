package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/service"
)

// ExperienceHandler exposes work-history CRUD.
type ExperienceHandler struct {
	svc    *service.ExperienceService
	logger *slog.Logger
}

func NewExperienceHandler(svc *service.ExperienceService, logger *slog.Logger) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, logger: logger}
}

// HandleList — GET /api/experience (sorted newest-first by start date)
func (h *ExperienceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleCreate — POST /api/experience (gated)
func (h *ExperienceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.ExperienceInput
	if !decodeJSON(w, r, &in) {
		return
	}

	exp, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, exp)
}

// HandleUpdate — PUT /api/experience/{id} (gated)
func (h *ExperienceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch service.ExperiencePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	exp, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

// HandleDelete — DELETE /api/experience/{id} (gated)
func (h *ExperienceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Experience removed")
}
