package http

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rr, _ := env.do(t, http.MethodGet, "/api/health", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Server is running"}`, rr.Body.String())
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rr, _ := env.do(t, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{"version":"test-version"}}`, rr.Body.String())
}

func TestUnknownRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown api path", method: http.MethodGet, target: "/api/unknown"},
		{name: "unknown non-api path without static dir", method: http.MethodGet, target: "/dashboard"},
		{name: "wrong method on exact path", method: http.MethodDelete, target: "/api/health"},
		{name: "wrong method on parameterised path", method: http.MethodPost, target: "/api/notes/n1/archive"},
		{name: "wrong method on notes collection", method: http.MethodPatch, target: "/api/notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Server{})

			rr := serve(env.router, newRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"success":false,"error":"Route not found"}`, rr.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	req := newRequest(http.MethodOptions, "/api/notes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := serve(env.router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, PATCH", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, rr.Body.String())

	rr = serve(env.router, newRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestTraceIDHeaderOnEveryResponse(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	for _, target := range []string{"/api/health", "/api/unknown", "/api/notes"} {
		rr := serve(env.router, newRequest(http.MethodGet, target, nil))
		assert.NotEmpty(t, rr.Header().Get(traceIDHeader), target)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	createTestNote(t, env, "token-u1", models.NoteInput{Title: "T", Content: "C"})
	serve(env.router, newRequest(http.MethodGet, "/api/unknown", nil))

	rr := serve(env.router, newRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `notes_http_requests_total{method="POST",route="/api/notes",status="201"} 1`)
	assert.Contains(t, body, `notes_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, "notes_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_RouteLabelUsesPattern(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	env.do(t, http.MethodGet, "/api/notes/abc", "token-u1", nil)
	env.do(t, http.MethodGet, "/api/notes/def", "token-u1", nil)

	rr := serve(env.router, newRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), `notes_http_requests_total{method="GET",route="/api/notes/{id}",status="404"} 2`)
}

func TestGZipThroughRouter(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	req := newRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := serve(env.router, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"success":true,"message":"Server is running"}`, gunzip(t, rr.Body))
}

// ─────────────────────────────────────────────
// rate limiting
// ─────────────────────────────────────────────

func TestAuthRateLimit(t *testing.T) {
	env := newTestEnv(t, config.Server{AuthRateLimit: 0.001, AuthRateBurst: 2})
	env.auth.loginFn = func(_ context.Context, _ models.LoginRequest) (models.AuthResult, error) {
		return models.AuthResult{}, service.ErrInvalidCredentials
	}

	login := func(ip string) int {
		req := newRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
		req.RemoteAddr = ip + ":1234"
		return serve(env.router, req).Code
	}

	assert.Equal(t, http.StatusUnauthorized, login("10.0.0.1"))
	assert.Equal(t, http.StatusUnauthorized, login("10.0.0.1"))

	req := newRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.RemoteAddr = "10.0.0.1:1234"
	rr := serve(env.router, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Too many requests, please try again later"}`, rr.Body.String())

	// other clients have their own bucket
	assert.Equal(t, http.StatusUnauthorized, login("10.0.0.2"))

	// note routes are not limited
	for i := 0; i < 5; i++ {
		r := newRequest(http.MethodGet, "/api/notes", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		r.Header.Set("Authorization", "Bearer token-u1")
		assert.Equal(t, http.StatusOK, serve(env.router, r).Code)
	}
}

func TestAuthRateLimit_ForwardedFor(t *testing.T) {
	env := newTestEnv(t, config.Server{AuthRateLimit: 0.001, AuthRateBurst: 1})
	env.auth.loginFn = func(_ context.Context, _ models.LoginRequest) (models.AuthResult, error) {
		return models.AuthResult{}, service.ErrInvalidCredentials
	}

	login := func(forwarded string) int {
		req := newRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
		req.RemoteAddr = "192.168.0.1:1234"
		req.Header.Set("X-Forwarded-For", forwarded)
		return serve(env.router, req).Code
	}

	assert.NotEqual(t, http.StatusTooManyRequests, login("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, login("1.1.1.1"))
	assert.NotEqual(t, http.StatusTooManyRequests, login("2.2.2.2"))
}

func TestClientIP(t *testing.T) {
	req := newRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "10.1.2.3", clientIP(req))

	req.RemoteAddr = "10.1.2.3"
	assert.Equal(t, "10.1.2.3", clientIP(req))
}

// ─────────────────────────────────────────────
// static frontend
// ─────────────────────────────────────────────

func TestStaticFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600))

	env := newTestEnv(t, config.Server{StaticDir: dir})

	tests := []struct {
		name     string
		target   string
		wantBody string
	}{
		{name: "root serves index", target: "/", wantBody: "<html>app</html>"},
		{name: "asset served as is", target: "/assets/app.js", wantBody: "console.log(1)"},
		{name: "client route falls back to index", target: "/notes/123", wantBody: "<html>app</html>"},
		{name: "missing nested asset falls back to index", target: "/assets/missing.js", wantBody: "<html>app</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(env.router, newRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			body, err := io.ReadAll(rr.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}

	rr := serve(env.router, newRequest(http.MethodGet, "/api/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Route not found"}`, rr.Body.String())

	rr = serve(env.router, newRequest(http.MethodPost, "/anything", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStaticDir_Missing(t *testing.T) {
	env := newTestEnv(t, config.Server{StaticDir: filepath.Join(t.TempDir(), "missing")})

	assert.Empty(t, env.handler.staticDir)
}

func TestIsAPIPath(t *testing.T) {
	assert.True(t, isAPIPath("/api"))
	assert.True(t, isAPIPath("/api/notes"))
	assert.False(t, isAPIPath("/apidocs"))
	assert.False(t, isAPIPath("/"))
}
