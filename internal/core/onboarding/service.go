// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/notification"
	"github.com/eventfulindia/eventful/pkg/uuid"
)

// ArtistCreator adds a submitted profile to the directory.
type ArtistCreator interface {
	Create(context context.Context, artist *artist.Artist) error
}

// Notifier appends to the notification feed.
type Notifier interface {
	Append(context context.Context, item notification.Item) (notification.Item, error)
}

// # Service Layer

type Service struct {
	// writes serializes draft changes so two requests never race on one draft.
	writes sync.Mutex

	drafts   DraftStore
	artists  ArtistCreator
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(drafts DraftStore, artists ArtistCreator, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		drafts:   drafts,
		artists:  artists,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Start opens an empty draft on the first step.
func (service *Service) Start(context context.Context) (*Progress, error) {
	now := service.now().UTC()
	draft := &Draft{
		ID:        uuid.New(),
		Step:      StepBasicInfo,
		Form:      Form{Genre: []string{}, Skills: []string{}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.drafts.Save(context, draft); err != nil {
		return nil, err
	}

	service.logger.Debug("onboarding_started", slog.String("draft_id", draft.ID))
	return draft.Progress(), nil
}

func (service *Service) Get(context context.Context, id string) (*Progress, error) {
	draft, err := service.drafts.Get(context, id)
	if err != nil {
		return nil, err
	}
	return draft.Progress(), nil
}

// Update merges form data into the draft. The step does not change.
func (service *Service) Update(context context.Context, id string, patch FormPatch) (*Progress, error) {
	return service.mutate(context, id, func(draft *Draft) error {
		draft.Form = draft.Form.Merge(patch)
		return nil
	})
}

// Next advances the draft when its current step is complete.
func (service *Service) Next(context context.Context, id string) (*Progress, error) {
	return service.mutate(context, id, (*Draft).Next)
}

// Prev moves the draft back one step.
func (service *Service) Prev(context context.Context, id string) (*Progress, error) {
	return service.mutate(context, id, func(draft *Draft) error {
		draft.Prev()
		return nil
	})
}

/*
Submit turns a complete draft into a pending artist profile.

Description: The artist is created through the directory, a verification
notification is appended and the draft is discarded. If the directory
rejects the profile the draft is kept so the form can be corrected.

Returns:
  - *artist.Artist: the created profile
  - error: CONFLICT off the review step, VALIDATION_ERROR for missing data
*/
func (service *Service) Submit(context context.Context, id string) (*artist.Artist, error) {
	service.writes.Lock()
	defer service.writes.Unlock()

	draft, err := service.drafts.Get(context, id)
	if err != nil {
		return nil, err
	}
	if err := draft.ReadyToSubmit(); err != nil {
		return nil, err
	}

	profile := draft.Artist(service.now().UTC())
	if err := service.artists.Create(context, profile); err != nil {
		return nil, err
	}

	if _, err := service.notifier.Append(context, notification.Item{
		Type:      notification.TypeVerification,
		Title:     "Profile Submitted Successfully!",
		Message:   "Your artist profile has been submitted for review. We'll notify you once it's approved.",
		ActionURL: "/artists/" + profile.Slug,
	}); err != nil {
		service.logger.Warn("onboarding_notification_failed", slog.Any("error", err))
	}

	if err := service.drafts.Delete(context, id); err != nil {
		service.logger.Warn("onboarding_draft_cleanup_failed", slog.String("draft_id", id), slog.Any("error", err))
	}

	service.logger.Info("onboarding_submitted",
		slog.String("draft_id", id),
		slog.String("artist_id", profile.ID),
	)
	return profile, nil
}

// mutate loads, changes and saves a draft. Nothing is saved when change fails.
func (service *Service) mutate(context context.Context, id string, change func(*Draft) error) (*Progress, error) {
	service.writes.Lock()
	defer service.writes.Unlock()

	draft, err := service.drafts.Get(context, id)
	if err != nil {
		return nil, err
	}

	if err := change(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = service.now().UTC()

	if err := service.drafts.Save(context, draft); err != nil {
		return nil, err
	}
	return draft.Progress(), nil
}
