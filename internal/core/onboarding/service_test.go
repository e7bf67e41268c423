// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/notification"
	"github.com/eventfulindia/eventful/internal/core/onboarding"
	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/pkg/pointer"
)

type fixture struct {
	service       *onboarding.Service
	artists       *artist.Service
	notifications *notification.Service
}

func newFixture() fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	artists := artist.NewService(artist.NewMemoryRepository(), artist.NewMemoryCriteriaStore(), logger)
	notifications := notification.NewService(notification.NewMemoryRepository(), logger)

	return fixture{
		service:       onboarding.NewService(onboarding.NewMemoryDraftStore(), artists, notifications, logger),
		artists:       artists,
		notifications: notifications,
	}
}

func fullPatch() onboarding.FormPatch {
	form := completeForm()
	return onboarding.FormPatch{
		Name:         &form.Name,
		Email:        &form.Email,
		Phone:        &form.Phone,
		Location:     &form.Location,
		Description:  &form.Description,
		Genre:        &form.Genre,
		Skills:       &form.Skills,
		Experience:   pointer.To(3),
		PriceRange:   &form.PriceRange,
		ProfileImage: &form.ProfileImage,
	}
}

func TestService_WizardToSubmission(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	progress, err := f.service.Start(ctx)
	require.NoError(t, err)
	id := progress.ID
	assert.False(t, progress.StepValid)

	_, err = f.service.Submit(ctx, id)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	progress, err = f.service.Update(ctx, id, fullPatch())
	require.NoError(t, err)
	assert.True(t, progress.StepValid)

	for i := 0; i < 3; i++ {
		progress, err = f.service.Next(ctx, id)
		require.NoError(t, err)
	}
	assert.Equal(t, onboarding.LastStep, progress.Step)

	profile, err := f.service.Submit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, artist.StatusPending, profile.VerificationStatus)
	assert.Equal(t, "kavya-iyer", profile.Slug)
	assert.Equal(t, 3, profile.Experience)

	stored, err := f.artists.Get(ctx, "kavya-iyer")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, stored.ID)

	feed, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, notification.TypeVerification, feed.Items[0].Type)
	assert.Equal(t, "Profile Submitted Successfully!", feed.Items[0].Title)

	_, err = f.service.Get(ctx, id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_RejectedSubmissionKeepsDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	progress, err := f.service.Start(ctx)
	require.NoError(t, err)

	patch := fullPatch()
	patch.Email = pointer.To("not-an-email")
	_, err = f.service.Update(ctx, progress.ID, patch)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = f.service.Next(ctx, progress.ID)
		require.NoError(t, err)
	}

	_, err = f.service.Submit(ctx, progress.ID)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	kept, err := f.service.Get(ctx, progress.ID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.LastStep, kept.Step)
}

func TestHandler_Wizard(t *testing.T) {
	router := onboarding.NewHandler(newFixture().service).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/steps", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Skills & Experience")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/missing/next", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/missing", strings.NewReader(`{"name":"x"}`)))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestService_ConcurrentUpdatesMergeAllFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	progress, err := f.service.Start(ctx)
	require.NoError(t, err)

	patches := []onboarding.FormPatch{
		{Name: pointer.To("Meera Iyer")},
		{Email: pointer.To("meera@example.com")},
		{Phone: pointer.To("+91 98765 43210")},
		{Location: pointer.To("Chennai")},
		{Description: pointer.To("Carnatic vocalist.")},
	}

	var wg sync.WaitGroup
	for _, patch := range patches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Update(ctx, progress.ID, patch)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := f.service.Get(ctx, progress.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meera Iyer", stored.Form.Name)
	assert.Equal(t, "meera@example.com", stored.Form.Email)
	assert.Equal(t, "+91 98765 43210", stored.Form.Phone)
	assert.Equal(t, "Chennai", stored.Form.Location)
	assert.Equal(t, "Carnatic vocalist.", stored.Form.Description)
}
