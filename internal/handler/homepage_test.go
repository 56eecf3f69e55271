package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/portfolio-api/internal/handler"
	"github.com/sakif/portfolio-api/internal/repository/sqlite"
	"github.com/sakif/portfolio-api/internal/service"
)

func newHomepageHandler(t *testing.T) *handler.HomepageHandler {
	env := newTestEnv(t)
	svc := service.NewHomepageService(
		sqlite.NewHomepageRepo(env.db),
		sqlite.NewSkillRepo(env.db),
		sqlite.NewProjectRepo(env.db),
		env.logger,
	)
	return handler.NewHomepageHandler(svc, env.logger)
}

func getHomepage(t *testing.T, h *handler.HomepageHandler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/homepage-content", nil)
	rr := httptest.NewRecorder()
	h.HandleGet(rr, req)
	return rr
}

func TestHomepageHandler_Get_CreatesDefault(t *testing.T) {
	h := newHomepageHandler(t)

	// First read creates the default document, hence 201.
	rr := getHomepage(t, h)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var view map[string]any
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
	assert.Equal(t, "Your Name", view["name"])
	assert.Equal(t, "Fullstack Software Engineer", view["headline"])
	// Expanded reference lists serialize as arrays even when empty.
	assert.Equal(t, []any{}, view["featuredSkillIds"])
	assert.Equal(t, []any{}, view["featuredProjectIds"])

	// Second read finds it, hence 200.
	rr = getHomepage(t, h)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHomepageHandler_Update(t *testing.T) {
	h := newHomepageHandler(t)
	getHomepage(t, h)

	req := httptest.NewRequest(http.MethodPut, "/api/homepage-content",
		bytes.NewBufferString(`{"name":"Sakif","resumeUrl":"https://example.com/resume.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.HandleUpdate(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var content map[string]any
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&content))
	assert.Equal(t, "Sakif", content["name"])
	assert.Equal(t, "https://example.com/resume.pdf", content["resumeUrl"])
	// Untouched default survives the patch.
	assert.Equal(t, "Fullstack Software Engineer", content["headline"])
}

func TestHomepageHandler_Update_BeforeCreate(t *testing.T) {
	h := newHomepageHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/homepage-content",
		bytes.NewBufferString(`{"name":"Sakif"}`))
	rr := httptest.NewRecorder()
	h.HandleUpdate(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var res handler.MessageResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "Homepage content not found. Please create one first.", res.Message)
}
