// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import "context"

// # Repository Interfaces

// Repository is the ordered artist collection.
//
// Order is insertion order and is the order every listing starts from.
// Implementations return copies; callers may not mutate what the store holds.
type Repository interface {
	// List returns every artist in collection order.
	List(context context.Context) ([]*Artist, error)

	FindByID(context context.Context, id string) (*Artist, error)
	FindBySlug(context context.Context, slug string) (*Artist, error)

	// Create appends a new artist. Duplicate id or slug is a conflict.
	Create(context context.Context, artist *Artist) error

	// Update replaces the stored record with the same id, keeping its position.
	Update(context context.Context, artist *Artist) error

	// ReplaceAll swaps the whole collection in one step.
	ReplaceAll(context context.Context, artists []*Artist) error

	Count(context context.Context) (int, error)
}

// CriteriaStore keeps the filter criteria each manager last applied.
type CriteriaStore interface {
	// Get returns the saved criteria, or [DefaultCriteria] when nothing is saved.
	Get(context context.Context, userID string) (Criteria, error)
	Save(context context.Context, userID string, criteria Criteria) error
}
