// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package booking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/event"
	"github.com/eventfulindia/eventful/internal/core/notification"
	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/internal/platform/validate"
	"github.com/eventfulindia/eventful/pkg/slice"
	"github.com/eventfulindia/eventful/pkg/uuid"
)

// # Dependencies

// ArtistLookup resolves the artist a booking refers to.
type ArtistLookup interface {
	Get(context context.Context, identifier string) (*artist.Artist, error)
}

// EventLookup resolves the event a booking refers to.
type EventLookup interface {
	Get(context context.Context, id string) (*event.Event, error)
}

// Notifier appends to the manager's notification feed.
type Notifier interface {
	Append(context context.Context, item notification.Item) (notification.Item, error)
}

// # Service Layer

type Service struct {
	// writes serializes every read-modify-write of the ledger.
	writes sync.Mutex

	repo     Repository
	artists  ArtistLookup
	events   EventLookup
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, artists ArtistLookup, events EventLookup, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		artists:  artists,
		events:   events,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// ListForManager returns the manager's bookings in creation order.
func (service *Service) ListForManager(context context.Context, managerID string) ([]*Booking, error) {
	bookings, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return slice.Filter(bookings, func(b *Booking) bool { return b.ManagerID == managerID }), nil
}

// Get returns one of the manager's bookings. Other managers' bookings are reported as missing.
func (service *Service) Get(context context.Context, managerID, id string) (*Booking, error) {
	booking, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if booking.ManagerID != managerID {
		return nil, apperr.NotFound("Booking")
	}
	return booking, nil
}

/*
Create opens a pending booking between an event and an artist.

Description: Both referenced records must exist. The optional opening
message becomes the first entry of the conversation, and a booking
notification is appended to the feed.

Returns:
  - *Booking: the stored booking
  - error: VALIDATION_ERROR for bad input or unknown references
*/
func (service *Service) Create(context context.Context, managerID string, input CreateInput) (*Booking, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEventID, input.EventID)
	validator.Required(FieldArtistID, input.ArtistID)
	validator.Custom(FieldProposedPrice, input.ProposedPrice <= 0, "Must be greater than zero")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.events.Get(context, input.EventID); err != nil {
		return nil, referenceError(err, FieldEventID, "Unknown event")
	}
	performer, err := service.artists.Get(context, input.ArtistID)
	if err != nil {
		return nil, referenceError(err, FieldArtistID, "Unknown artist")
	}

	now := service.now().UTC()
	booking := &Booking{
		ID:            uuid.New(),
		EventID:       input.EventID,
		ArtistID:      performer.ID,
		ManagerID:     managerID,
		Status:        StatusPending,
		ProposedPrice: input.ProposedPrice,
		Messages:      []Message{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.Message != "" {
		booking.Messages = append(booking.Messages, Message{
			ID:         uuid.New(),
			SenderID:   managerID,
			SenderType: SenderManager,
			Content:    input.Message,
			Timestamp:  now,
		})
	}

	if err := service.repo.Create(context, booking); err != nil {
		return nil, err
	}

	service.notify(context, notification.Item{
		Type:      notification.TypeBooking,
		Title:     "Booking Request Sent",
		Message:   "Your booking request for " + performer.Name + " is awaiting a response.",
		ActionURL: "/bookings/" + booking.ID,
	})

	service.logger.Info("booking_created",
		slog.String("booking_id", booking.ID),
		slog.String("artist_id", booking.ArtistID),
		slog.String("event_id", booking.EventID),
	)
	return booking, nil
}

// Update changes status and final price. Completed and cancelled bookings are frozen.
func (service *Service) Update(context context.Context, managerID, id string, patch Patch) (*Booking, error) {
	service.writes.Lock()
	defer service.writes.Unlock()

	booking, err := service.Get(context, managerID, id)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, apperr.Conflict("Booking is already " + string(booking.Status))
	}

	validator := &validate.Validator{}
	if patch.Status != nil {
		validator.OneOf(FieldStatus, string(*patch.Status),
			string(StatusPending),
			string(StatusConfirmed),
			string(StatusCompleted),
			string(StatusCancelled),
		)
	}
	if patch.FinalPrice != nil {
		validator.Custom(FieldFinalPrice, *patch.FinalPrice <= 0, "Must be greater than zero")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	previous := booking.Status
	if patch.Status != nil {
		booking.Status = *patch.Status
	}
	if patch.FinalPrice != nil {
		price := *patch.FinalPrice
		booking.FinalPrice = &price
	}
	booking.UpdatedAt = service.now().UTC()

	if err := service.repo.Update(context, booking); err != nil {
		return nil, err
	}

	if booking.Status != previous {
		service.notify(context, notification.Item{
			Type:      notification.TypeBooking,
			Title:     "Booking " + string(booking.Status),
			Message:   "Booking status changed from " + string(previous) + " to " + string(booking.Status) + ".",
			ActionURL: "/bookings/" + booking.ID,
		})
	}

	service.logger.Info("booking_updated",
		slog.String("booking_id", id),
		slog.String("status", string(booking.Status)),
	)
	return booking, nil
}

// AddMessage appends a manager message to the booking conversation.
func (service *Service) AddMessage(context context.Context, managerID, id string, input MessageInput) (*Message, error) {
	validator := &validate.Validator{}
	validator.Required(FieldContent, input.Content).MaxLen(FieldContent, input.Content, 4000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	service.writes.Lock()
	defer service.writes.Unlock()

	booking, err := service.Get(context, managerID, id)
	if err != nil {
		return nil, err
	}

	now := service.now().UTC()
	message := Message{
		ID:          uuid.New(),
		SenderID:    managerID,
		SenderType:  SenderManager,
		Content:     input.Content,
		Timestamp:   now,
		Attachments: input.Attachments,
	}
	booking.Messages = append(booking.Messages, message)
	booking.UpdatedAt = now

	if err := service.repo.Update(context, booking); err != nil {
		return nil, err
	}

	service.logger.Debug("booking_message_added",
		slog.String("booking_id", id),
		slog.String("message_id", message.ID),
	)
	return &message, nil
}

// ReplaceAll swaps the whole ledger. Used by seeding.
func (service *Service) ReplaceAll(context context.Context, bookings []*Booking) error {
	service.writes.Lock()
	defer service.writes.Unlock()

	return service.repo.ReplaceAll(context, bookings)
}

// notify appends to the feed. A failed notification never fails the booking.
func (service *Service) notify(context context.Context, item notification.Item) {
	if service.notifier == nil {
		return
	}
	if _, err := service.notifier.Append(context, item); err != nil {
		service.logger.Warn("booking_notification_failed", slog.Any("error", err))
	}
}

// referenceError turns a NOT_FOUND lookup into a field validation error.
func referenceError(err error, field, message string) error {
	if apperr.IsNotFound(err) {
		return apperr.ValidationError("Validation failed", apperr.FieldError{Field: field, Message: message})
	}
	return err
}
