// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/eventfulindia/eventful/internal/platform/validate"
	"github.com/eventfulindia/eventful/pkg/slice"
	"github.com/eventfulindia/eventful/pkg/uuid"
)

// dateLayout is the calendar-day format of [Event.Date].
const dateLayout = time.DateOnly

type Service struct {
	writes sync.Mutex
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the events matching term and eventType, in collection order.
func (service *Service) List(context context.Context, term, eventType string) ([]*Event, error) {
	events, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return slice.Filter(events, func(e *Event) bool { return e.Matches(term, eventType) }), nil
}

func (service *Service) Get(context context.Context, id string) (*Event, error) {
	return service.repo.FindByID(context, id)
}

// Types returns the listing tabs, "all" first.
func (service *Service) Types() []string {
	return slices.Clone(listingTypes)
}

/*
Create validates and appends a new event.

Description: The ID is always server-assigned and the status defaults to
planning. The organizer is the manager creating the event.
*/
func (service *Service) Create(context context.Context, organizerID string, event *Event) error {
	event.ID = uuid.New()
	event.OrganizerID = organizerID
	if event.Status == "" {
		event.Status = StatusPlanning
	}
	if event.RequiredGenres == nil {
		event.RequiredGenres = []string{}
	}

	if err := validateEvent(event); err != nil {
		return err
	}

	if err := service.repo.Create(context, event); err != nil {
		return err
	}

	service.logger.Info("event_created",
		slog.String("event_id", event.ID),
		slog.String("organizer_id", organizerID),
	)
	return nil
}

// Update merges patch over the stored event and replaces it.
func (service *Service) Update(context context.Context, id string, patch Patch) (*Event, error) {
	service.writes.Lock()
	defer service.writes.Unlock()

	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(current)
	if err := validateEvent(next); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, next); err != nil {
		return nil, err
	}

	service.logger.Info("event_updated", slog.String("event_id", id))
	return next, nil
}

// ReplaceAll swaps the whole collection. Used by seeding.
func (service *Service) ReplaceAll(context context.Context, events []*Event) error {
	service.writes.Lock()
	defer service.writes.Unlock()

	for _, event := range events {
		if err := validateEvent(event); err != nil {
			return err
		}
	}
	return service.repo.ReplaceAll(context, events)
}

func validateEvent(event *Event) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, event.Title).MaxLen(FieldTitle, event.Title, 200)
	validator.Required(FieldVenue, event.Venue)
	validator.Required(FieldLocation, event.Location)
	validator.Required(FieldType, event.Type)
	validator.Custom(FieldType, event.Type == TypeAll, "Must be a concrete event type")

	_, err := time.Parse(dateLayout, event.Date)
	validator.Custom(FieldDate, err != nil, "Must be a date in YYYY-MM-DD format")

	validator.Custom(FieldBudget, event.Budget < 0, "Must not be negative")
	validator.Custom(FieldCapacity, event.Capacity < 0, "Must not be negative")
	validator.OneOf(FieldStatus, string(event.Status),
		string(StatusPlanning),
		string(StatusConfirmed),
		string(StatusCompleted),
		string(StatusCancelled),
	)
	if event.ImageURL != "" {
		validator.URL(FieldImageURL, event.ImageURL)
	}

	return validator.Err()
}
