// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/platform/ctxutil"
	"github.com/eventfulindia/eventful/internal/platform/middleware"
	"github.com/eventfulindia/eventful/internal/platform/sec"
)

var ok = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

type fakeVerifier map[string]*sec.SessionClaims

func (verifier fakeVerifier) VerifyToken(token string) (*sec.SessionClaims, error) {
	if claims, found := verifier[token]; found {
		return claims, nil
	}
	return nil, errors.New("bad token")
}

type appConfig struct {
	development bool
	suffix      string
}

func (c appConfig) IsDevelopment() bool  { return c.development }
func (c appConfig) OriginSuffix() string { return c.suffix }

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "upstream-42")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "upstream-42", seen)
}

func TestStructuredLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))

	handler := middleware.StructuredLogger(logger)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/artists/nobody", nil))

	assert.Contains(t, buffer.String(), `"msg":"http_request_finished"`)
	assert.Contains(t, buffer.String(), `"status":404`)
	assert.Contains(t, buffer.String(), `"level":"WARN"`)
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 1, 2)(ok)

	codes := make([]int, 0, 3)
	for range 3 {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, recorder.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Real-IP", "203.0.113.9")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		cfg     appConfig
		origin  string
		allowed bool
	}{
		{"development allows any origin", appConfig{development: true}, "http://localhost:5173", true},
		{"matching suffix", appConfig{suffix: "eventful.in"}, "https://app.eventful.in", true},
		{"exact host", appConfig{suffix: "eventful.in"}, "https://eventful.in", true},
		{"subdomain with port", appConfig{suffix: "eventful.in"}, "https://admin.eventful.in:8443", true},
		{"foreign origin", appConfig{suffix: "eventful.in"}, "https://evil.example", false},
		{"lookalike host", appConfig{suffix: "eventful.in"}, "https://evileventful.in", false},
		{"suffix in path", appConfig{suffix: "eventful.in"}, "https://evil.example/eventful.in", false},
		{"no suffix configured", appConfig{}, "https://app.eventful.in", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)

			recorder := httptest.NewRecorder()
			middleware.CORS(tt.cfg)(ok).ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	preflight.Header.Set("Origin", "https://app.eventful.in")
	recorder := httptest.NewRecorder()
	middleware.CORS(appConfig{suffix: "eventful.in"})(ok).ServeHTTP(recorder, preflight)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestAuthenticateAndRoles(t *testing.T) {
	verifier := fakeVerifier{
		"manager-token": {ManagerID: "1", Name: "Amit Patel", Role: string(sec.RoleManager)},
		"visitor-token": {ManagerID: "9", Name: "Guest", Role: string(sec.RoleVisitor)},
	}
	authenticate := middleware.Authenticate(verifier)

	tests := []struct {
		name   string
		header string
		guard  func(http.Handler) http.Handler
		want   int
	}{
		{"anonymous passes through", "", func(next http.Handler) http.Handler { return next }, http.StatusOK},
		{"anonymous blocked by RequireAuth", "", middleware.RequireAuth, http.StatusUnauthorized},
		{"malformed header", "Token abc", middleware.RequireAuth, http.StatusUnauthorized},
		{"unknown token", "Bearer forged", middleware.RequireAuth, http.StatusUnauthorized},
		{"manager authenticated", "Bearer manager-token", middleware.RequireAuth, http.StatusOK},
		{"manager has manager role", "Bearer manager-token", middleware.RequireRole(sec.RoleManager), http.StatusOK},
		{"visitor lacks manager role", "Bearer visitor-token", middleware.RequireRole(sec.RoleManager), http.StatusForbidden},
		{"anonymous lacks manager role", "", middleware.RequireRole(sec.RoleManager), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			authenticate(tt.guard(ok)).ServeHTTP(recorder, request)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "203.0.113.5")
	assert.Equal(t, "203.0.113.5", middleware.RealIP(request))
}
