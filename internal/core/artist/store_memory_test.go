// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/platform/apperr"
)

func TestMemoryRepository_OrderAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := artist.NewMemoryRepository()

	for _, a := range roster() {
		a.Slug = "slug-" + a.ID
		require.NoError(t, repo.Create(ctx, a))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(all))

	found, err := repo.FindBySlug(ctx, "slug-2")
	require.NoError(t, err)
	assert.Equal(t, "Priya Rajesh", found.Name)

	_, err = repo.FindByID(ctx, "missing")
	assert.True(t, apperr.IsNotFound(err))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := artist.NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, arjun()))

	first, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	first.Genre[0] = "Jazz"
	first.Name = "Changed"

	second, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Arjun Sharma", second.Name)
	assert.Equal(t, []string{"Classical", "Bollywood"}, second.Genre)
}

func TestMemoryRepository_Conflicts(t *testing.T) {
	ctx := context.Background()
	repo := artist.NewMemoryRepository()

	a := arjun()
	a.Slug = "arjun-sharma"
	require.NoError(t, repo.Create(ctx, a))

	err := repo.Create(ctx, arjun())
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	b := priya()
	b.Slug = "arjun-sharma"
	err = repo.Create(ctx, b)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

func TestMemoryRepository_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := artist.NewMemoryRepository()
	require.NoError(t, repo.ReplaceAll(ctx, roster()))

	changed := priya()
	changed.Location = "Pune"
	changed.Slug = "priya"
	require.NoError(t, repo.Update(ctx, changed))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(all))
	assert.Equal(t, "Pune", all[1].Location)

	bySlug, err := repo.FindBySlug(ctx, "priya")
	require.NoError(t, err)
	assert.Equal(t, "2", bySlug.ID)

	err = repo.Update(ctx, &artist.Artist{ID: "missing"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestMemoryRepository_ReplaceAllIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := artist.NewMemoryRepository()
	require.NoError(t, repo.ReplaceAll(ctx, roster()))

	err := repo.ReplaceAll(ctx, []*artist.Artist{arjun(), arjun()})
	require.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, repo.ReplaceAll(ctx, []*artist.Artist{rohit()}))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(all))
}

func TestMemoryCriteriaStore(t *testing.T) {
	ctx := context.Background()
	store := artist.NewMemoryCriteriaStore()

	got, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, artist.DefaultCriteria(), got)

	saved := artist.DefaultCriteria()
	saved.Genres = []string{"Rock"}
	require.NoError(t, store.Save(ctx, "1", saved))

	// Mutating the caller's copy does not leak into the store.
	saved.Genres[0] = "Pop"

	got, err = store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rock"}, got.Genres)

	other, err := store.Get(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, other.Genres)
}
