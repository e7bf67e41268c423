// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"slices"
	"sync"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/pkg/slice"
)

// Repository is the ordered event collection.
type Repository interface {
	List(context context.Context) ([]*Event, error)
	FindByID(context context.Context, id string) (*Event, error)
	Create(context context.Context, event *Event) error
	Update(context context.Context, event *Event) error
	ReplaceAll(context context.Context, events []*Event) error
}

// MemoryRepository keeps events in insertion order.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []*Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: []*Event{}}
}

func (repository *MemoryRepository) List(_ context.Context) ([]*Event, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return slice.Map(repository.events, (*Event).Clone), nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Event, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, apperr.NotFound("Event")
	}
	return repository.events[index].Clone(), nil
}

func (repository *MemoryRepository) Create(_ context.Context, event *Event) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.indexOf(event.ID) >= 0 {
		return apperr.Conflict("Event already exists")
	}
	repository.events = append(repository.events, event.Clone())
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, event *Event) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(event.ID)
	if index < 0 {
		return apperr.NotFound("Event")
	}
	repository.events[index] = event.Clone()
	return nil
}

func (repository *MemoryRepository) ReplaceAll(_ context.Context, events []*Event) error {
	next := slice.Map(events, (*Event).Clone)

	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.events = next
	return nil
}

// indexOf returns the position of id, or -1. Callers hold the lock.
func (repository *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(repository.events, func(e *Event) bool { return e.ID == id })
}
