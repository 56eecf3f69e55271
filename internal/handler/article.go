package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/service"
)

// ArticleHandler exposes article CRUD.
type ArticleHandler struct {
	svc    *service.ArticleService
	logger *slog.Logger
}

func NewArticleHandler(svc *service.ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, logger: logger}
}

// HandleList — GET /api/articles (sorted newest-first)
func (h *ArticleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleCreate — POST /api/articles (gated)
func (h *ArticleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.ArticleInput
	if !decodeJSON(w, r, &in) {
		return
	}

	article, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

// HandleUpdate — PUT /api/articles/{id} (gated)
func (h *ArticleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch service.ArticlePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	article, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// HandleDelete — DELETE /api/articles/{id} (gated)
func (h *ArticleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Article removed")
}
