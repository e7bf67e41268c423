// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/api"
	"github.com/eventfulindia/eventful/internal/auth"
	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/booking"
	"github.com/eventfulindia/eventful/internal/core/event"
	"github.com/eventfulindia/eventful/internal/core/notification"
	"github.com/eventfulindia/eventful/internal/core/onboarding"
	"github.com/eventfulindia/eventful/internal/core/seed"
	"github.com/eventfulindia/eventful/internal/core/site"
	"github.com/eventfulindia/eventful/internal/platform/config"
	"github.com/eventfulindia/eventful/internal/platform/sec"
)

func newServer(t *testing.T, health api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := sec.NewTokenService("test-secret", "eventful.in", time.Hour)
	require.NoError(t, err)

	notifications := notification.NewService(notification.NewMemoryRepository(), logger)
	artists := artist.NewService(artist.NewMemoryRepository(), artist.NewMemoryCriteriaStore(), logger)
	events := event.NewService(event.NewMemoryRepository(), logger)
	bookings := booking.NewService(booking.NewMemoryRepository(), artists, events, notifications, logger)
	wizard := onboarding.NewService(onboarding.NewMemoryDraftStore(), artists, notifications, logger)

	require.NoError(t, seed.Load(ctx, seed.Loaders{Artists: artists, Events: events, Bookings: bookings}, logger))

	liveness, readiness := api.NewHealthHandlers(health, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	server := api.NewServer(ctx, cfg, logger, tokens, api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Auth:          auth.NewHandler(auth.NewService(tokens, logger)),
		Artists:       artist.NewHandler(artists),
		Events:        event.NewHandler(events),
		Bookings:      booking.NewHandler(bookings),
		Notifications: notification.NewHandler(notifications),
		Onboarding:    onboarding.NewHandler(wizard),
		Site:          site.NewHandler(artists),
	})
	return server.Handler()
}

func call(t *testing.T, handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Data
}

func TestServer_Health(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{})

	assert.Equal(t, http.StatusOK, call(t, handler, http.MethodGet, "/health", "", "").Code)

	ready := call(t, handler, http.MethodGet, "/ready", "", "")
	require.Equal(t, http.StatusOK, ready.Code)
	assert.Contains(t, ready.Body.String(), `"ready"`)
}

func TestServer_ReadinessDegraded(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{
		CheckCache: func(context.Context) error { return errors.New("dial tcp: refused") },
	})

	ready := call(t, handler, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, ready.Code)
	assert.Contains(t, ready.Body.String(), "redis")
}

func TestServer_BookingFlow(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{})

	// Anonymous browsing works.
	listing := call(t, handler, http.MethodGet, "/api/v1/artists?q=rock", "", "")
	require.Equal(t, http.StatusOK, listing.Code)
	assert.Len(t, decode[[]*artist.Artist](t, listing), 1)

	// Bookings need a session.
	assert.Equal(t, http.StatusUnauthorized, call(t, handler, http.MethodGet, "/api/v1/bookings", "", "").Code)

	login := decode[auth.LoginSession](t, call(t, handler, http.MethodPost, "/api/v1/auth/auto-login", "", ""))
	require.NotEmpty(t, login.AccessToken)

	created := call(t, handler, http.MethodPost, "/api/v1/bookings", login.AccessToken,
		`{"eventId":"1","artistId":"2","proposedPrice":20000,"message":"Are you free in March?"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	ledger := decode[[]*booking.Booking](t, call(t, handler, http.MethodGet, "/api/v1/bookings", login.AccessToken, ""))
	assert.Len(t, ledger, 2)

	feed := decode[notification.Feed](t, call(t, handler, http.MethodGet, "/api/v1/notifications", login.AccessToken, ""))
	require.NotEmpty(t, feed.Items)
	assert.Equal(t, "Booking Request Sent", feed.Items[0].Title)
	assert.Equal(t, 1, feed.UnreadCount)
}

func TestServer_SiteAndOnboarding(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{})

	home := decode[site.Home](t, call(t, handler, http.MethodGet, "/api/v1/site/home", "", ""))
	assert.Len(t, home.Featured, 3)

	steps := call(t, handler, http.MethodGet, "/api/v1/onboarding/steps", "", "")
	assert.Equal(t, http.StatusOK, steps.Code)

	assert.Equal(t, http.StatusNotFound, call(t, handler, http.MethodGet, "/api/v1/nowhere", "", "").Code)
}

func TestServer_RejectsForgedToken(t *testing.T) {
	handler := newServer(t, api.HealthDependencies{})

	recorder := call(t, handler, http.MethodGet, "/api/v1/artists", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
