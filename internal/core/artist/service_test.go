// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/pkg/pointer"
	"github.com/eventfulindia/eventful/pkg/uuid"
)

func newService(t *testing.T) *artist.Service {
	t.Helper()

	service := artist.NewService(
		artist.NewMemoryRepository(),
		artist.NewMemoryCriteriaStore(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, service.ReplaceAll(context.Background(), roster()))
	return service
}

func TestService_ReplaceAllFillsDefaults(t *testing.T) {
	service := newService(t)

	a, err := service.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "arjun-sharma", a.Slug)
	assert.Equal(t, artist.StatusPending, a.VerificationStatus)
	assert.False(t, a.JoinedDate.IsZero())
}

func TestService_GetByIDOrSlug(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	bySlug, err := service.Get(ctx, "rohit-mehta")
	require.NoError(t, err)
	assert.Equal(t, "3", bySlug.ID)

	_, err = service.Get(ctx, "nobody")
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_Search(t *testing.T) {
	service := newService(t)

	got, err := service.Search(context.Background(), artist.Criteria{Availability: true}, "guitar")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestService_Featured(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	two, err := service.Featured(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(two))

	all, err := service.Featured(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestService_Create(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	input := &artist.Artist{
		Name:     "Arjun Sharma",
		Email:    "arjun.two@example.com",
		Genre:    []string{"Sufi"},
		Location: "Pune",
	}
	require.NoError(t, service.Create(ctx, input))

	assert.True(t, uuid.IsValid(input.ID))
	assert.NotEqual(t, "arjun-sharma", input.Slug)
	assert.Contains(t, input.Slug, "arjun-sharma-")
	assert.Equal(t, artist.StatusPending, input.VerificationStatus)

	count, err := service.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	// New artists join the end of the collection.
	all, err := service.Search(ctx, artist.DefaultCriteria(), "")
	require.NoError(t, err)
	assert.Equal(t, input.ID, all[3].ID)
}

func TestService_CreateValidation(t *testing.T) {
	service := newService(t)

	err := service.Create(context.Background(), &artist.Artist{
		Email:        "not-an-email",
		ProfileImage: "/relative.png",
		Rating:       7,
		Experience:   -1,
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	fields := make([]string, 0, len(ae.Details))
	for _, d := range ae.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{
		artist.FieldName, artist.FieldEmail, artist.FieldProfileImage, artist.FieldGenre,
		artist.FieldLocation, artist.FieldExperience, artist.FieldRating,
	}, fields)
}

func TestService_UpdateReplacesRecord(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	before, err := service.Get(ctx, "2")
	require.NoError(t, err)

	updated, err := service.Update(ctx, "2", artist.Patch{
		Availability: pointer.To(false),
		Genre:        &[]string{"Jazz"},
	})
	require.NoError(t, err)
	assert.False(t, updated.Availability)
	assert.Equal(t, []string{"Jazz"}, updated.Genre)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Slug, updated.Slug)

	// The earlier read is a separate value.
	assert.True(t, before.Availability)

	_, err = service.Update(ctx, "2", artist.Patch{Rating: pointer.To(9.0)})
	require.Error(t, err)
}

func TestService_SetVerification(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	a, err := service.SetVerification(ctx, "1", artist.StatusVerified)
	require.NoError(t, err)
	assert.Equal(t, artist.StatusVerified, a.VerificationStatus)

	_, err = service.SetVerification(ctx, "1", "archived")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestService_MergeCriteria(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	first, err := service.MergeCriteria(ctx, "manager-1", artist.CriteriaPatch{
		Genres: &[]string{"Rock", "Folk"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids(first.Artists))

	second, err := service.MergeCriteria(ctx, "manager-1", artist.CriteriaPatch{
		Availability: pointer.To(true),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rock", "Folk"}, second.Criteria.Genres)
	assert.True(t, second.Criteria.Availability)
	assert.Equal(t, []string{"2"}, ids(second.Artists))

	saved, err := service.SavedCriteria(ctx, "manager-1")
	require.NoError(t, err)
	assert.Equal(t, second.Criteria, saved)

	// Another manager starts from the defaults.
	other, err := service.SavedCriteria(ctx, "manager-2")
	require.NoError(t, err)
	assert.Equal(t, artist.DefaultCriteria(), other)

	// Out-of-range thresholds reset to their inactive value.
	third, err := service.MergeCriteria(ctx, "manager-1", artist.CriteriaPatch{
		PriceRange: &artist.PriceRange{500, 100},
		Rating:     pointer.To(6.0),
		Experience: pointer.To(-2),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, artist.DefaultPriceRange, third.Criteria.PriceRange)
	assert.Zero(t, third.Criteria.Rating)
	assert.Zero(t, third.Criteria.Experience)
	assert.Equal(t, []string{"2"}, ids(third.Artists))
}

func TestCriteria_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   artist.Criteria
		want artist.Criteria
	}{
		{
			name: "in range",
			in:   artist.Criteria{Rating: 4.5, Experience: 3, PriceRange: artist.PriceRange{100, 500}},
			want: artist.Criteria{Rating: 4.5, Experience: 3, PriceRange: artist.PriceRange{100, 500}},
		},
		{
			name: "rating above five",
			in:   artist.Criteria{Rating: 6, PriceRange: artist.DefaultPriceRange},
			want: artist.Criteria{PriceRange: artist.DefaultPriceRange},
		},
		{
			name: "negative rating and experience",
			in:   artist.Criteria{Rating: -1, Experience: -4, PriceRange: artist.DefaultPriceRange},
			want: artist.Criteria{PriceRange: artist.DefaultPriceRange},
		},
		{
			name: "inverted price range",
			in:   artist.Criteria{PriceRange: artist.PriceRange{500, 100}},
			want: artist.Criteria{PriceRange: artist.DefaultPriceRange},
		},
		{
			name: "negative minimum price",
			in:   artist.Criteria{PriceRange: artist.PriceRange{-10, 100}},
			want: artist.Criteria{PriceRange: artist.DefaultPriceRange},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestService_ConcurrentWritesAreNotLost(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 100 {
			_, err := service.Update(ctx, "3", artist.Patch{Location: pointer.To("Pune")})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		_, err := service.SetVerification(ctx, "3", artist.StatusVerified)
		assert.NoError(t, err)
	}()
	wg.Wait()

	stored, err := service.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Pune", stored.Location)
	assert.Equal(t, artist.StatusVerified, stored.VerificationStatus)
}

func TestService_ConcurrentCriteriaMerges(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 50 {
			_, err := service.MergeCriteria(ctx, "manager-1", artist.CriteriaPatch{Location: pointer.To("delhi")}, "")
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		_, err := service.MergeCriteria(ctx, "manager-1", artist.CriteriaPatch{Availability: pointer.To(true)}, "")
		assert.NoError(t, err)
	}()
	wg.Wait()

	saved, err := service.SavedCriteria(ctx, "manager-1")
	require.NoError(t, err)
	assert.Equal(t, "delhi", saved.Location)
	assert.True(t, saved.Availability)
}
