package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/portfolio-api/internal/handler"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository/sqlite"
	"github.com/sakif/portfolio-api/internal/service"
)

func newContactHandler(t *testing.T) *handler.ContactHandler {
	env := newTestEnv(t)
	svc := service.NewContactService(sqlite.NewContactRepo(env.db), env.logger)
	return handler.NewContactHandler(svc, env.logger)
}

func submitContact(t *testing.T, h *handler.ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.HandleSubmit(rr, req)
	return rr
}

func TestContactHandler_Submit(t *testing.T) {
	h := newContactHandler(t)

	rr := submitContact(t, h, `{"name":"Visitor","email":"v@example.com","message":"Hi there"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var res struct {
		Message string               `json:"message"`
		Data    model.ContactMessage `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "Message sent successfully!", res.Message)
	assert.NotEmpty(t, res.Data.ID)
	assert.Equal(t, "Hi there", res.Data.Message)
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	h := newContactHandler(t)

	rr := submitContact(t, h, `{"name":"Visitor","email":"v@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var res handler.MessageResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "Please enter all required fields: name, email, message", res.Message)
}

func TestContactHandler_ListAndDelete(t *testing.T) {
	h := newContactHandler(t)
	rr := submitContact(t, h, `{"name":"Visitor","email":"v@example.com","message":"Hi"}`)

	var created struct {
		Data model.ContactMessage `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&created))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contact-messages", nil)
	rr = httptest.NewRecorder()
	h.HandleList(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var msgs []model.ContactMessage
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&msgs))
	assert.Len(t, msgs, 1)

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/contact-messages/"+created.Data.ID, nil)
	req.SetPathValue("id", created.Data.ID)
	rr = httptest.NewRecorder()
	h.HandleDelete(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var res handler.MessageResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "Contact message removed", res.Message)
}

func TestContactHandler_Delete_NotFound(t *testing.T) {
	h := newContactHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/contact-messages/missing", nil)
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()
	h.HandleDelete(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
