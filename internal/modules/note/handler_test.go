package note

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohit273848/travel-notes-app/internal/middleware"
	"github.com/Rohit273848/travel-notes-app/internal/pkg/jwt"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := NewService(newTestDB(t))
	r := gin.New()
	api := r.Group("/api")
	NewHandler(svc).RegisterRoutes(api, middleware.Auth())
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.Sign(userID, time.Hour)
	require.NoError(t, err)
	return token
}

const minimalNote = `{
	"basicInfo": {"place": {"name": "Goa"}, "visitType": "visited", "visibility": "public"},
	"noteText": "Great trip"
}`

func TestHandler_CreateRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/notes", "", minimalNote)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"unauthorized"`)

	w = doJSON(t, r, http.MethodPost, "/api/notes", "not-a-jwt", minimalNote)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateAndFetch(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/notes", token, minimalNote)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID        string `json:"id"`
		BasicInfo struct {
			Place struct {
				Name string `json:"name"`
			} `json:"place"`
		} `json:"basicInfo"`
		User string `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Goa", created.BasicInfo.Place.Name)
	assert.Equal(t, "user-1", created.User)

	// Public note is readable without any token.
	w = doJSON(t, r, http.MethodGet, "/api/notes/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notes/my-notes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[`)
	assert.Contains(t, w.Body.String(), created.ID)
}

func TestHandler_CreateValidationFailure(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/notes", token, `{"noteText": "no place"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"validation"`)
	assert.Contains(t, w.Body.String(), "place")

	w = doJSON(t, r, http.MethodPost, "/api/notes", token, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchRequiresQuery(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/notes/search", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "place query is required")
}

func TestHandler_SearchAndPublicList(t *testing.T) {
	r, svc := newTestRouter(t)

	_, err := svc.Create("user-1", decodeInput(t, minimalNote))
	require.NoError(t, err)
	_, err = svc.Create("user-2", decodeInput(t, `{
		"basicInfo": {"place": {"name": "Hampi"}, "visitType": "visited", "visibility": "personal"}
	}`))
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/notes/public", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Goa")
	assert.NotContains(t, w.Body.String(), "Hampi")

	w = doJSON(t, r, http.MethodGet, "/api/notes/search?place=goa", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Goa")

	w = doJSON(t, r, http.MethodGet, "/api/notes/search?place=hampi", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"data":[]}`, w.Body.String(), "personal notes are not searchable")
}

func TestHandler_GetHidesPersonalNotes(t *testing.T) {
	r, svc := newTestRouter(t)

	created, err := svc.Create("owner", decodeInput(t, `{
		"basicInfo": {"place": {"name": "Hampi"}, "visitType": "visited", "visibility": "personal"}
	}`))
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/notes/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "anonymous viewer")

	w = doJSON(t, r, http.MethodGet, "/api/notes/"+created.ID, tokenFor(t, "stranger"), "")
	assert.Equal(t, http.StatusNotFound, w.Code, "other user")

	w = doJSON(t, r, http.MethodGet, "/api/notes/"+created.ID, tokenFor(t, "owner"), "")
	assert.Equal(t, http.StatusOK, w.Code, "owner")
}

func TestHandler_UpdateAndDeleteOwnership(t *testing.T) {
	r, svc := newTestRouter(t)

	created, err := svc.Create("owner", decodeInput(t, minimalNote))
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/api/notes/"+created.ID, tokenFor(t, "stranger"), `{"noteText": "hijack"}`)
	require.Equal(t, http.StatusNotFound, w.Code, "someone else's note reads as missing")
	assert.Contains(t, w.Body.String(), `"kind":"not_found"`)

	w = doJSON(t, r, http.MethodPut, "/api/notes/"+created.ID, tokenFor(t, "owner"), `{"noteText": "v2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"noteText":"v2"`)

	w = doJSON(t, r, http.MethodDelete, "/api/notes/"+created.ID, tokenFor(t, "stranger"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/notes/"+created.ID, tokenFor(t, "owner"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "note deleted successfully")

	w = doJSON(t, r, http.MethodDelete, "/api/notes/"+created.ID, tokenFor(t, "owner"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
