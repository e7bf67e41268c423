// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"slices"
	"sync"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/pkg/pointer"
)

// DraftStore holds wizards in progress.
type DraftStore interface {
	Get(context context.Context, id string) (*Draft, error)
	// Save inserts or replaces the draft.
	Save(context context.Context, draft *Draft) error
	Delete(context context.Context, id string) error
}

// MemoryDraftStore keeps drafts in process. Drafts do not expire.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[string]*Draft{}}
}

func (store *MemoryDraftStore) Get(_ context.Context, id string) (*Draft, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	draft, ok := store.drafts[id]
	if !ok {
		return nil, apperr.NotFound("Draft")
	}
	return cloneDraft(draft), nil
}

func (store *MemoryDraftStore) Save(_ context.Context, draft *Draft) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.drafts[draft.ID] = cloneDraft(draft)
	return nil
}

func (store *MemoryDraftStore) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.drafts[id]; !ok {
		return apperr.NotFound("Draft")
	}
	delete(store.drafts, id)
	return nil
}

func cloneDraft(d *Draft) *Draft {
	c := *d
	c.Form.Genre = slices.Clone(d.Form.Genre)
	c.Form.Skills = slices.Clone(d.Form.Skills)
	c.Form.Portfolio = artist.Portfolio{
		Images: slices.Clone(d.Form.Portfolio.Images),
		Videos: slices.Clone(d.Form.Portfolio.Videos),
		Audio:  slices.Clone(d.Form.Portfolio.Audio),
	}
	if d.Form.Experience != nil {
		c.Form.Experience = pointer.To(*d.Form.Experience)
	}
	return &c
}
