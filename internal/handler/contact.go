package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/service"
)

// ContactHandler exposes the public contact form plus the admin's list
// and delete over received messages.
type ContactHandler struct {
	svc    *service.ContactService
	logger *slog.Logger
}

func NewContactHandler(svc *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, logger: logger}
}

// submitResponse wraps the stored message with a confirmation line for
// the public form.
type submitResponse struct {
	Message string               `json:"message"`
	Data    *model.ContactMessage `json:"data"`
}

// HandleSubmit — POST /api/contact (public)
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if !decodeJSON(w, r, &in) {
		return
	}

	msg, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Message: "Message sent successfully!",
		Data:    msg,
	})
}

// HandleList — GET /api/admin/contact-messages (gated)
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// HandleDelete — DELETE /api/admin/contact-messages/{id} (gated)
func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Contact message removed")
}
