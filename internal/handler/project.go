package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/service"
)

// ProjectHandler exposes project CRUD.
type ProjectHandler struct {
	svc    *service.ProjectService
	logger *slog.Logger
}

func NewProjectHandler(svc *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, logger: logger}
}

// HandleList — GET /api/projects
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// HandleCreate — POST /api/projects (gated)
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}

	project, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// HandleUpdate — PUT /api/projects/{id} (gated)
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch service.ProjectPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	project, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// HandleDelete — DELETE /api/projects/{id} (gated)
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Project removed")
}
