// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package booking

import (
	"context"
	"slices"
	"sync"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/pkg/slice"
)

type Repository interface {
	List(context context.Context) ([]*Booking, error)
	FindByID(context context.Context, id string) (*Booking, error)
	Create(context context.Context, booking *Booking) error
	Update(context context.Context, booking *Booking) error
	ReplaceAll(context context.Context, bookings []*Booking) error
}

// MemoryRepository keeps bookings in creation order.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings []*Booking
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: []*Booking{}}
}

func (repository *MemoryRepository) List(_ context.Context) ([]*Booking, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return slice.Map(repository.bookings, (*Booking).Clone), nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Booking, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, apperr.NotFound("Booking")
	}
	return repository.bookings[index].Clone(), nil
}

func (repository *MemoryRepository) Create(_ context.Context, booking *Booking) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.indexOf(booking.ID) >= 0 {
		return apperr.Conflict("Booking already exists")
	}
	repository.bookings = append(repository.bookings, booking.Clone())
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, booking *Booking) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(booking.ID)
	if index < 0 {
		return apperr.NotFound("Booking")
	}
	repository.bookings[index] = booking.Clone()
	return nil
}

func (repository *MemoryRepository) ReplaceAll(_ context.Context, bookings []*Booking) error {
	next := slice.Map(bookings, (*Booking).Clone)

	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.bookings = next
	return nil
}

func (repository *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(repository.bookings, func(b *Booking) bool { return b.ID == id })
}
