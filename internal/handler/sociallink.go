package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/service"
)

// SocialLinkHandler exposes social link CRUD.
type SocialLinkHandler struct {
	svc    *service.SocialLinkService
	logger *slog.Logger
}

func NewSocialLinkHandler(svc *service.SocialLinkService, logger *slog.Logger) *SocialLinkHandler {
	return &SocialLinkHandler{svc: svc, logger: logger}
}

// HandleList — GET /api/social-links
func (h *SocialLinkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// HandleCreate — POST /api/social-links (gated)
func (h *SocialLinkHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.SocialLinkInput
	if !decodeJSON(w, r, &in) {
		return
	}

	link, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// HandleUpdate — PUT /api/social-links/{id} (gated)
func (h *SocialLinkHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch service.SocialLinkPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	link, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// HandleDelete — DELETE /api/social-links/{id} (gated)
func (h *SocialLinkHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Social link removed")
}
