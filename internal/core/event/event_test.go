// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/core/event"
	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/internal/platform/ctxutil"
	"github.com/eventfulindia/eventful/internal/platform/sec"
	"github.com/eventfulindia/eventful/pkg/pointer"
)

func gala() *event.Event {
	return &event.Event{
		ID:             "1",
		Title:          "Corporate Annual Gala",
		Date:           "2024-03-15",
		Venue:          "Grand Ballroom, Hotel Taj",
		Location:       "Mumbai",
		Type:           "Corporate",
		Budget:         150000,
		RequiredGenres: []string{"Classical", "Contemporary"},
		Status:         event.StatusPlanning,
		OrganizerID:    "1",
		Capacity:       500,
	}
}

func reception() *event.Event {
	return &event.Event{
		ID:          "2",
		Title:       "Wedding Reception",
		Date:        "2024-04-20",
		Venue:       "Palace Gardens",
		Location:    "Delhi",
		Type:        "Wedding",
		Budget:      200000,
		Status:      event.StatusConfirmed,
		OrganizerID: "1",
		ArtistID:    "1",
		Capacity:    300,
	}
}

func newService(t *testing.T) *event.Service {
	t.Helper()

	service := event.NewService(event.NewMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, service.ReplaceAll(context.Background(), []*event.Event{gala(), reception()}))
	return service
}

func TestEvent_Matches(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		eventType string
		want      bool
	}{
		{"empty_term_all", "", "all", true},
		{"empty_type", "", "", true},
		{"title_case_insensitive", "GALA", "all", true},
		{"location", "mum", "Corporate", true},
		{"type_mismatch", "gala", "Wedding", false},
		{"type_is_exact", "", "corporate", false},
		{"venue_not_searched", "ballroom", "all", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gala().Matches(tt.term, tt.eventType))
		})
	}
}

func TestService_List(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	all, err := service.List(ctx, "", event.TypeAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	weddings, err := service.List(ctx, "", "Wedding")
	require.NoError(t, err)
	require.Len(t, weddings, 1)
	assert.Equal(t, "2", weddings[0].ID)

	none, err := service.List(ctx, "goa", event.TypeAll)
	require.NoError(t, err)
	assert.Empty(t, none)

	assert.Equal(t, []string{"all", "Corporate", "Wedding", "Concert", "Festival", "Private"}, service.Types())
}

func TestService_CreateAndUpdate(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	input := &event.Event{
		Title:    "Sunburn Warmup",
		Date:     "2024-12-01",
		Venue:    "Vagator Beach",
		Location: "Goa",
		Type:     "Festival",
		Budget:   80000,
	}
	require.NoError(t, service.Create(ctx, "1", input))
	assert.Equal(t, event.StatusPlanning, input.Status)
	assert.Equal(t, "1", input.OrganizerID)
	assert.NotEmpty(t, input.ID)

	updated, err := service.Update(ctx, input.ID, event.Patch{Status: pointer.To(event.StatusConfirmed)})
	require.NoError(t, err)
	assert.Equal(t, event.StatusConfirmed, updated.Status)
	assert.Equal(t, "Goa", updated.Location)

	_, err = service.Update(ctx, input.ID, event.Patch{Date: pointer.To("next friday")})
	require.Error(t, err)

	_, err = service.Get(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_CreateValidation(t *testing.T) {
	err := newService(t).Create(context.Background(), "1", &event.Event{Type: event.TypeAll, Budget: -1})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestHandler_Routes(t *testing.T) {
	router := event.NewHandler(newService(t)).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?type=Corporate", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Corporate Annual Gala")
	assert.NotContains(t, recorder.Body.String(), "Wedding Reception")

	body := `{"title":"Diwali Night","date":"2024-11-01","venue":"NSCI Dome","location":"Mumbai","type":"Private"}`

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.SessionClaims{ManagerID: "1", Role: string(sec.RoleManager)}))

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"planning"`)
}
