// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notification

import (
	"context"
	"slices"
	"sync"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
)

// Repository stores the feed newest first.
type Repository interface {
	Prepend(context context.Context, item Item) error
	List(context context.Context) ([]Item, error)
	MarkRead(context context.Context, id string) error
}

// MemoryRepository is the in-process feed.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: []Item{}}
}

func (repository *MemoryRepository) Prepend(_ context.Context, item Item) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.items = slices.Insert(repository.items, 0, item)
	return nil
}

func (repository *MemoryRepository) List(_ context.Context) ([]Item, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return slices.Clone(repository.items), nil
}

func (repository *MemoryRepository) MarkRead(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := slices.IndexFunc(repository.items, func(item Item) bool { return item.ID == id })
	if index < 0 {
		return apperr.NotFound("Notification")
	}
	repository.items[index].Read = true
	return nil
}
