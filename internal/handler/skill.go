package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/service"
)

// SkillHandler exposes skills CRUD.
//
// All the resource handlers in this package follow the same pattern:
// HandleList is public, the mutations sit behind the auth gate (wired in
// internal/server), update decodes into a pointer-field patch struct so
// omitted fields are left untouched, and delete confirms with the
// resource's "removed" message.
type SkillHandler struct {
	svc    *service.SkillService
	logger *slog.Logger
}

func NewSkillHandler(svc *service.SkillService, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{svc: svc, logger: logger}
}

// HandleList — GET /api/skills
func (h *SkillHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

// HandleCreate — POST /api/skills (gated)
func (h *SkillHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.SkillInput
	if !decodeJSON(w, r, &in) {
		return
	}

	skill, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, skill)
}

// HandleUpdate — PUT /api/skills/{id} (gated)
func (h *SkillHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch service.SkillPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	skill, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

// HandleDelete — DELETE /api/skills/{id} (gated)
func (h *SkillHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Skill removed")
}
