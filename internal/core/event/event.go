// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package event manages the events a manager is planning artists for.
package event

import (
	"slices"
	"strings"

	"github.com/eventfulindia/eventful/pkg/pointer"
)

// Status is the lifecycle state of an event.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// TypeAll is the listing tab that disables the type filter.
const TypeAll = "all"

// listingTypes are the tabs offered above the event list.
var listingTypes = []string{TypeAll, "Corporate", "Wedding", "Concert", "Festival", "Private"}

// Event is an occasion an artist can be booked for.
type Event struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	Venue          string   `json:"venue"`
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	Budget         int      `json:"budget"`
	RequiredGenres []string `json:"requiredGenres"`
	Status         Status   `json:"status"`
	OrganizerID    string   `json:"organizerId"`
	ArtistID       string   `json:"artistId,omitempty"`
	Capacity       int      `json:"capacity"`
	ImageURL       string   `json:"imageUrl"`
}

func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	c.RequiredGenres = slices.Clone(e.RequiredGenres)
	return &c
}

/*
Matches reports whether the event passes the listing search and type tab.

The term matches the title or location, case-insensitively; an empty term
matches everything. The type must equal eventType exactly unless eventType
is empty or "all".
*/
func (e *Event) Matches(term, eventType string) bool {
	lowerTerm := strings.ToLower(term)
	matchesSearch := strings.Contains(strings.ToLower(e.Title), lowerTerm) ||
		strings.Contains(strings.ToLower(e.Location), lowerTerm)

	matchesType := eventType == "" || eventType == TypeAll || e.Type == eventType

	return matchesSearch && matchesType
}

// Patch is a partial event update. Nil fields are left untouched.
type Patch struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Date           *string   `json:"date"`
	Venue          *string   `json:"venue"`
	Location       *string   `json:"location"`
	Type           *string   `json:"type"`
	Budget         *int      `json:"budget"`
	RequiredGenres *[]string `json:"requiredGenres"`
	Status         *Status   `json:"status"`
	ArtistID       *string   `json:"artistId"`
	Capacity       *int      `json:"capacity"`
	ImageURL       *string   `json:"imageUrl"`
}

// Apply returns a copy of e with the patch laid over it.
func (p Patch) Apply(e *Event) *Event {
	next := e.Clone()

	next.Title = pointer.Fallback(p.Title, next.Title)
	next.Description = pointer.Fallback(p.Description, next.Description)
	next.Date = pointer.Fallback(p.Date, next.Date)
	next.Venue = pointer.Fallback(p.Venue, next.Venue)
	next.Location = pointer.Fallback(p.Location, next.Location)
	next.Type = pointer.Fallback(p.Type, next.Type)
	next.Budget = pointer.Fallback(p.Budget, next.Budget)
	next.Status = pointer.Fallback(p.Status, next.Status)
	next.ArtistID = pointer.Fallback(p.ArtistID, next.ArtistID)
	next.Capacity = pointer.Fallback(p.Capacity, next.Capacity)
	next.ImageURL = pointer.Fallback(p.ImageURL, next.ImageURL)

	if p.RequiredGenres != nil {
		next.RequiredGenres = slices.Clone(*p.RequiredGenres)
	}
	return next
}

const (
	FieldTitle    = "title"
	FieldDate     = "date"
	FieldVenue    = "venue"
	FieldLocation = "location"
	FieldType     = "type"
	FieldBudget   = "budget"
	FieldStatus   = "status"
	FieldCapacity = "capacity"
	FieldImageURL = "imageUrl"
)
