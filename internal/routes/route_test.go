package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showpro/showpro-server/internal/config"
	"github.com/showpro/showpro-server/internal/container"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:              "8080",
		Environment:       "test",
		DefaultTenantSlug: "showpro",
		PlatformSuffix:    ".pages.dev",
		SessionSecret:     "test-session-secret",
		AdminUsername:     "admin",
		AdminPassword:     "admin",
		CORSOrigin:        "http://localhost:5173",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return SetupRoutes(container.NewContainer(logger, cfg, nil, nil))
}

func doRequest(t *testing.T, r *gin.Engine, method, target, host, body string, setup ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if host != "" {
		req.Host = host
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, fn := range setup {
		fn(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLandingViaHostname(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/e/annual-conference-2025", "showpro.example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	tenant := data["tenant"].(map[string]any)
	assert.Equal(t, "showpro", tenant["slug"])

	embed := data["embed"].(map[string]any)
	assert.Equal(t, "embeddable", embed["decision"])
	assert.Equal(t, "allow-scripts allow-same-origin", embed["sandbox"])
}

// An explicit path slug beats the hostname-derived candidate: the event slug
// below only exists in the brightlights workspace.
func TestPathSlugWinsOverHostname(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/t/brightlights/e/product-launch", "showpro.example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	tenant := body["data"].(map[string]any)["tenant"].(map[string]any)
	assert.Equal(t, "brightlights", tenant["slug"])
}

func TestHostnameFallsBackToDefaultTenant(t *testing.T) {
	r := newTestRouter()
	// localhost yields no candidate; the default workspace is showpro.
	w := doRequest(t, r, http.MethodGet, "/e/annual-conference-2025", "localhost:8080", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// www is not a tenant either.
	w = doRequest(t, r, http.MethodGet, "/e/annual-conference-2025", "www.example.com", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownWorkspaceIsDistinctNotFound(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/t/ghost/e/anything", "showpro.example.com", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "TENANT_NOT_FOUND", body["code"])
	assert.Contains(t, body["error"], "ghost")
}

func TestDraftEventNotPubliclyVisible(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/t/showpro/e/hybrid-production-workshop", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestManagementRequiresAuth(t *testing.T) {
	r := newTestRouter()

	// API clients get a 401 carrying the login URL with the original path
	// and query preserved.
	w := doRequest(t, r, http.MethodGet, "/t/showpro/api/events?status=draft", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	loginURL := body["data"].(map[string]any)["login_url"].(string)
	assert.Contains(t, loginURL, "/login?next=")
	assert.Contains(t, loginURL, "%2Ft%2Fshowpro%2Fapi%2Fevents%3Fstatus%3Ddraft")

	// Browser navigation is redirected instead.
	w = doRequest(t, r, http.MethodGet, "/t/showpro/api/events?status=draft", "", "", func(req *http.Request) {
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
	})
	require.Equal(t, http.StatusFound, w.Code)
	loc := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/login?next="))
	assert.Contains(t, loc, "%2Ft%2Fshowpro%2Fapi%2Fevents%3Fstatus%3Ddraft")
}

func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "",
		`{"username":"admin","password":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "",
		`{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEventThenPublicLanding(t *testing.T) {
	r := newTestRouter()
	session := login(t, r)
	withSession := func(req *http.Request) { req.AddCookie(session) }

	payload := `{
		"title": "Winter Gala",
		"slug": "winter-gala",
		"status": "published",
		"start_at": "2026-12-01T18:00:00Z",
		"end_at": "2026-12-01T23:00:00Z",
		"timezone": "Europe/Paris",
		"venue": "Grand Palais",
		"description": "An evening celebration.",
		"stream": {
			"provider": "vimeo",
			"embed_url": "https://player.vimeo.com/video/42",
			"is_live": true
		}
	}`

	w := doRequest(t, r, http.MethodPost, "/t/showpro/api/events", "", payload, withSession)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/t/showpro/e/winter-gala", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	event := data["event"].(map[string]any)
	assert.Equal(t, "Winter Gala", event["title"])
	embed := data["embed"].(map[string]any)
	assert.Equal(t, "embeddable", embed["decision"])
	assert.Equal(t, true, embed["is_live"])

	// The same slug is free in another workspace but taken in this one.
	w = doRequest(t, r, http.MethodPost, "/t/showpro/api/events", "", payload, withSession)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = doRequest(t, r, http.MethodPost, "/t/brightlights/api/events", "", payload, withSession)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRejectedStreamNeverAccepted(t *testing.T) {
	r := newTestRouter()
	session := login(t, r)

	payload := `{
		"title": "Sketchy Stream",
		"slug": "sketchy-stream",
		"status": "published",
		"start_at": "2026-12-01T18:00:00Z",
		"end_at": "2026-12-01T23:00:00Z",
		"timezone": "UTC",
		"description": "Testing the gate.",
		"stream": {
			"provider": "youtube",
			"embed_url": "https://evil.example.com/embed/x"
		}
	}`

	w := doRequest(t, r, http.MethodPost, "/t/showpro/api/events", "", payload,
		func(req *http.Request) { req.AddCookie(session) })
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
}

func TestThemeRoundTrip(t *testing.T) {
	r := newTestRouter()

	// Unsaved theme falls back to the workspace branding color.
	w := doRequest(t, r, http.MethodGet, "/t/showpro/api/theme", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	theme := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "#4F46E5", theme["accent_color"])

	// Saving requires a session.
	w = doRequest(t, r, http.MethodPut, "/t/showpro/api/theme", "", `{"accent_color":"#00AA55","dark_mode":true}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	session := login(t, r)
	w = doRequest(t, r, http.MethodPut, "/t/showpro/api/theme", "", `{"accent_color":"#00AA55","dark_mode":true}`,
		func(req *http.Request) { req.AddCookie(session) })
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/t/showpro/api/theme", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	theme = decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "#00AA55", theme["accent_color"])
	assert.Equal(t, true, theme["dark_mode"])
}

func TestWorkspaceEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/workspace", "brightlights.example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "brightlights", data["slug"])

	w = doRequest(t, r, http.MethodGet, "/t/ghost/api/workspace", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TENANT_NOT_FOUND", decodeBody(t, w)["code"])
}
