// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads the demo catalogue: three artists, two events and one
confirmed booking with its conversation.

Seeding replaces each collection wholesale, so running it twice leaves the
same state as running it once.
*/
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/booking"
	"github.com/eventfulindia/eventful/internal/core/event"
)

// # Targets

type ArtistLoader interface {
	ReplaceAll(context context.Context, artists []*artist.Artist) error
}

type EventLoader interface {
	ReplaceAll(context context.Context, events []*event.Event) error
}

type BookingLoader interface {
	ReplaceAll(context context.Context, bookings []*booking.Booking) error
}

// Loaders groups the collections the demo catalogue is written to.
type Loaders struct {
	Artists  ArtistLoader
	Events   EventLoader
	Bookings BookingLoader
}

// # Loading

/*
Load writes the demo catalogue into every loader.

Artists go first so bookings never refer to a missing profile. A failure
stops the run; collections already loaded stay loaded.
*/
func Load(context context.Context, loaders Loaders, logger *slog.Logger) error {
	artists := Artists()
	if err := loaders.Artists.ReplaceAll(context, artists); err != nil {
		return fmt.Errorf("seed: artists: %w", err)
	}

	events := Events()
	if err := loaders.Events.ReplaceAll(context, events); err != nil {
		return fmt.Errorf("seed: events: %w", err)
	}

	bookings := Bookings()
	if err := loaders.Bookings.ReplaceAll(context, bookings); err != nil {
		return fmt.Errorf("seed: bookings: %w", err)
	}

	logger.InfoContext(context, "demo_data_seeded",
		slog.Int("artists", len(artists)),
		slog.Int("events", len(events)),
		slog.Int("bookings", len(bookings)),
	)
	return nil
}
