// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"slices"
	"strings"
)

// # Structured Filter

// Matches reports whether a satisfies every active constraint of c.
func (c Criteria) Matches(a *Artist) bool {
	if a == nil {
		return false
	}

	// Genre tags match exactly; one shared tag is enough.
	if len(c.Genres) > 0 && !slices.ContainsFunc(c.Genres, func(genre string) bool {
		return slices.Contains(a.Genre, genre)
	}) {
		return false
	}

	if c.Location != "" && !strings.Contains(strings.ToLower(a.Location), strings.ToLower(c.Location)) {
		return false
	}

	if a.Rating < c.Rating {
		return false
	}

	if c.Availability && !a.Availability {
		return false
	}

	return a.Experience >= c.Experience
}

// ApplyFilters returns the artists that satisfy every active constraint of
// criteria, in their original order.
//
// The result is a new slice; the input is never reordered or modified.
func ApplyFilters(artists []*Artist, criteria Criteria) []*Artist {
	filtered := make([]*Artist, 0, len(artists))
	for _, a := range artists {
		if criteria.Matches(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// # Free-text Search

// MatchesTerm reports whether the lower-cased term occurs in the artist's name,
// location, description, or any genre or skill tag.
func (a *Artist) MatchesTerm(lowerTerm string) bool {
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), lowerTerm)
	}

	return contains(a.Name) ||
		slices.ContainsFunc(a.Genre, contains) ||
		contains(a.Location) ||
		contains(a.Description) ||
		slices.ContainsFunc(a.Skills, contains)
}

// ApplySearch keeps the artists matching term in any text field.
//
// A blank term returns artists itself, unchanged. Otherwise the term is
// lower-cased as given (surrounding spaces are part of it) and matched as a
// substring.
func ApplySearch(artists []*Artist, term string) []*Artist {
	if strings.TrimSpace(term) == "" {
		return artists
	}

	lowerTerm := strings.ToLower(term)
	matched := make([]*Artist, 0, len(artists))
	for _, a := range artists {
		if a != nil && a.MatchesTerm(lowerTerm) {
			matched = append(matched, a)
		}
	}
	return matched
}

// # Composition

// Select runs the directory's listing pipeline: structured filter first, then
// free-text search over its result.
//
// When the structured filter leaves nothing, the search runs over the whole
// collection instead, so an over-tight filter shows every artist rather than
// an empty page.
func Select(artists []*Artist, criteria Criteria, term string) []*Artist {
	base := ApplyFilters(artists, criteria)
	if len(base) == 0 {
		base = artists
	}
	return ApplySearch(base, term)
}
