// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/eventfulindia/eventful/internal/platform/validate"
	"github.com/eventfulindia/eventful/pkg/uuid"
)

// Service is the only writer of the feed.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

/*
Append adds an item to the top of the feed.

Description: The caller supplies everything except the identity; a UUIDv7
is always assigned here, and a zero timestamp is stamped with the current time.

Returns:
  - Item: the stored entry
  - error: VALIDATION_ERROR for an unknown type or empty title
*/
func (service *Service) Append(context context.Context, item Item) (Item, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldType, string(item.Type),
		string(TypeBooking),
		string(TypeMessage),
		string(TypeEvent),
		string(TypeVerification),
	)
	validator.Required(FieldTitle, item.Title).MaxLen(FieldTitle, item.Title, 200)
	validator.MaxLen(FieldMessage, item.Message, 1000)
	if err := validator.Err(); err != nil {
		return Item{}, err
	}

	item.ID = uuid.New()
	if item.Timestamp.IsZero() {
		item.Timestamp = service.now().UTC()
	}

	if err := service.repo.Prepend(context, item); err != nil {
		return Item{}, err
	}

	service.logger.Info("notification_appended",
		slog.String("notification_id", item.ID),
		slog.String("type", string(item.Type)),
	)
	return item, nil
}

func (service *Service) MarkRead(context context.Context, id string) error {
	return service.repo.MarkRead(context, id)
}

// UnreadCount counts unread items from the current feed.
func (service *Service) UnreadCount(context context.Context) (int, error) {
	items, err := service.repo.List(context)
	if err != nil {
		return 0, err
	}
	return countUnread(items), nil
}

// List returns the feed with its unread count.
func (service *Service) List(context context.Context) (*Feed, error) {
	items, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return &Feed{Items: items, UnreadCount: countUnread(items)}, nil
}

func countUnread(items []Item) int {
	unread := 0
	for _, item := range items {
		if !item.Read {
			unread++
		}
	}
	return unread
}
