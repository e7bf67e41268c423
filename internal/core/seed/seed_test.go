// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/booking"
	"github.com/eventfulindia/eventful/internal/core/event"
	"github.com/eventfulindia/eventful/internal/core/seed"
)

type failingEvents struct{}

func (failingEvents) ReplaceAll(context.Context, []*event.Event) error {
	return errors.New("store offline")
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	artists := artist.NewService(artist.NewMemoryRepository(), artist.NewMemoryCriteriaStore(), logger)
	events := event.NewService(event.NewMemoryRepository(), logger)
	bookings := booking.NewService(booking.NewMemoryRepository(), artists, events, nil, logger)

	loaders := seed.Loaders{Artists: artists, Events: events, Bookings: bookings}

	// Running twice leaves the same state.
	require.NoError(t, seed.Load(ctx, loaders, logger))
	require.NoError(t, seed.Load(ctx, loaders, logger))

	count, err := artists.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	arjun, err := artists.Get(ctx, "arjun-sharma")
	require.NoError(t, err)
	assert.Equal(t, "1", arjun.ID)
	assert.Equal(t, artist.StatusVerified, arjun.VerificationStatus)

	wedding, err := events.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "1", wedding.ArtistID)

	ledger, err := bookings.ListForManager(ctx, seed.ManagerID)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, 50000, *ledger[0].FinalPrice)
	assert.Len(t, ledger[0].Messages, 2)
}

func TestLoad_StopsOnFailure(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	artists := artist.NewService(artist.NewMemoryRepository(), artist.NewMemoryCriteriaStore(), logger)
	bookings := booking.NewService(booking.NewMemoryRepository(), nil, nil, nil, logger)

	err := seed.Load(ctx, seed.Loaders{Artists: artists, Events: failingEvents{}, Bookings: bookings}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed: events")

	ledger, err := bookings.ListForManager(ctx, seed.ManagerID)
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestCataloguesAreFreshCopies(t *testing.T) {
	first := seed.Artists()
	first[0].Genre[0] = "Jazz"

	assert.Equal(t, "Classical", seed.Artists()[0].Genre[0])
}
