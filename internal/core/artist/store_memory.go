// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"sync"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/pkg/slice"
)

// # In-Memory Repository

// MemoryRepository keeps the collection in process. It is the default store.
type MemoryRepository struct {
	mu      sync.RWMutex
	artists []*Artist
	byID    map[string]int
	bySlug  map[string]int
}

// NewMemoryRepository creates an empty collection.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		artists: []*Artist{},
		byID:    map[string]int{},
		bySlug:  map[string]int{},
	}
}

func (repository *MemoryRepository) List(_ context.Context) ([]*Artist, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return slice.Map(repository.artists, (*Artist).Clone), nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Artist, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("Artist")
	}
	return repository.artists[index].Clone(), nil
}

func (repository *MemoryRepository) FindBySlug(_ context.Context, slug string) (*Artist, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index, ok := repository.bySlug[slug]
	if !ok {
		return nil, apperr.NotFound("Artist")
	}
	return repository.artists[index].Clone(), nil
}

func (repository *MemoryRepository) Create(_ context.Context, artist *Artist) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, taken := repository.byID[artist.ID]; taken {
		return apperr.Conflict("Artist already exists")
	}
	if _, taken := repository.bySlug[artist.Slug]; taken && artist.Slug != "" {
		return apperr.Conflict("Artist slug already in use")
	}

	repository.artists = append(repository.artists, artist.Clone())
	repository.index(len(repository.artists) - 1)
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, artist *Artist) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index, ok := repository.byID[artist.ID]
	if !ok {
		return apperr.NotFound("Artist")
	}
	if owner, taken := repository.bySlug[artist.Slug]; taken && owner != index {
		return apperr.Conflict("Artist slug already in use")
	}

	delete(repository.bySlug, repository.artists[index].Slug)
	repository.artists[index] = artist.Clone()
	repository.index(index)
	return nil
}

/*
ReplaceAll swaps the collection for a copy of artists.

The new collection is validated before anything changes, so a conflicting
input leaves the previous collection in place.
*/
func (repository *MemoryRepository) ReplaceAll(_ context.Context, artists []*Artist) error {
	next := &MemoryRepository{
		artists: make([]*Artist, 0, len(artists)),
		byID:    make(map[string]int, len(artists)),
		bySlug:  make(map[string]int, len(artists)),
	}
	for _, artist := range artists {
		if _, taken := next.byID[artist.ID]; taken {
			return apperr.Conflict("Duplicate artist id " + artist.ID)
		}
		if _, taken := next.bySlug[artist.Slug]; taken && artist.Slug != "" {
			return apperr.Conflict("Duplicate artist slug " + artist.Slug)
		}
		next.artists = append(next.artists, artist.Clone())
		next.index(len(next.artists) - 1)
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.artists = next.artists
	repository.byID = next.byID
	repository.bySlug = next.bySlug
	return nil
}

func (repository *MemoryRepository) Count(_ context.Context) (int, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return len(repository.artists), nil
}

// index registers the artist at position i. Callers hold the write lock.
func (repository *MemoryRepository) index(i int) {
	artist := repository.artists[i]
	repository.byID[artist.ID] = i
	if artist.Slug != "" {
		repository.bySlug[artist.Slug] = i
	}
}

// # In-Memory Criteria Store

// MemoryCriteriaStore keeps saved criteria in process, without expiry.
type MemoryCriteriaStore struct {
	mu    sync.RWMutex
	saved map[string]Criteria
}

func NewMemoryCriteriaStore() *MemoryCriteriaStore {
	return &MemoryCriteriaStore{saved: map[string]Criteria{}}
}

func (store *MemoryCriteriaStore) Get(_ context.Context, userID string) (Criteria, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	criteria, ok := store.saved[userID]
	if !ok {
		return DefaultCriteria(), nil
	}
	return criteria.Merge(CriteriaPatch{}), nil
}

func (store *MemoryCriteriaStore) Save(_ context.Context, userID string, criteria Criteria) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.saved[userID] = criteria.Merge(CriteriaPatch{})
	return nil
}
