// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"slices"
	"time"

	"github.com/eventfulindia/eventful/pkg/pointer"
)

// # Verification

// VerificationStatus tracks the review state of an artist profile.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusRejected VerificationStatus = "rejected"
)

// IsValid reports whether the status is one of the three known values.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// # Entities

// Portfolio lists references to the artist's media. Not used for selection.
type Portfolio struct {
	Images []string `json:"images"`
	Videos []string `json:"videos"`
	Audio  []string `json:"audio"`
}

// SocialMedia holds the artist's public handles. Not used for selection.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Spotify   string `json:"spotify,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Performance is one past gig shown on the profile page.
type Performance struct {
	ID        string  `json:"id"`
	EventName string  `json:"eventName"`
	Venue     string  `json:"venue"`
	Date      string  `json:"date"`
	Rating    float64 `json:"rating"`
	Feedback  string  `json:"feedback,omitempty"`
}

// Artist is a performer profile.
//
// Records are never edited in place: an update builds a new value (see [Patch.Apply])
// and the repository swaps it in wholesale.
type Artist struct {
	ID                 string             `json:"id"`
	Slug               string             `json:"slug"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	ProfileImage       string             `json:"profileImage"`
	Genre              []string           `json:"genre"`
	Skills             []string           `json:"skills"`
	Location           string             `json:"location"`
	Experience         int                `json:"experience"`
	Rating             float64            `json:"rating"`
	PriceRange         string             `json:"priceRange"`
	Availability       bool               `json:"availability"`
	Description        string             `json:"description"`
	Portfolio          Portfolio          `json:"portfolio"`
	SocialMedia        SocialMedia        `json:"socialMedia"`
	PerformanceHistory []Performance      `json:"performanceHistory"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	JoinedDate         time.Time          `json:"joinedDate"`
}

// Clone returns a deep copy so stores never share slices with callers.
func (a *Artist) Clone() *Artist {
	if a == nil {
		return nil
	}
	c := *a
	c.Genre = slices.Clone(a.Genre)
	c.Skills = slices.Clone(a.Skills)
	c.Portfolio = Portfolio{
		Images: slices.Clone(a.Portfolio.Images),
		Videos: slices.Clone(a.Portfolio.Videos),
		Audio:  slices.Clone(a.Portfolio.Audio),
	}
	c.PerformanceHistory = slices.Clone(a.PerformanceHistory)
	return &c
}

// Patch is a partial artist update. Nil fields are left untouched.
type Patch struct {
	Name               *string             `json:"name"`
	Email              *string             `json:"email"`
	ProfileImage       *string             `json:"profileImage"`
	Genre              *[]string           `json:"genre"`
	Skills             *[]string           `json:"skills"`
	Location           *string             `json:"location"`
	Experience         *int                `json:"experience"`
	Rating             *float64            `json:"rating"`
	PriceRange         *string             `json:"priceRange"`
	Availability       *bool               `json:"availability"`
	Description        *string             `json:"description"`
	Portfolio          *Portfolio          `json:"portfolio"`
	SocialMedia        *SocialMedia        `json:"socialMedia"`
	PerformanceHistory *[]Performance      `json:"performanceHistory"`
	VerificationStatus *VerificationStatus `json:"verificationStatus"`
}

// Apply shallow-merges the patch over a and returns the replacement record.
// ID, slug and joined date are never patched.
func (p Patch) Apply(a *Artist) *Artist {
	next := a.Clone()

	next.Name = pointer.Fallback(p.Name, next.Name)
	next.Email = pointer.Fallback(p.Email, next.Email)
	next.ProfileImage = pointer.Fallback(p.ProfileImage, next.ProfileImage)
	next.Location = pointer.Fallback(p.Location, next.Location)
	next.Experience = pointer.Fallback(p.Experience, next.Experience)
	next.Rating = pointer.Fallback(p.Rating, next.Rating)
	next.PriceRange = pointer.Fallback(p.PriceRange, next.PriceRange)
	next.Availability = pointer.Fallback(p.Availability, next.Availability)
	next.Description = pointer.Fallback(p.Description, next.Description)
	next.SocialMedia = pointer.Fallback(p.SocialMedia, next.SocialMedia)
	next.VerificationStatus = pointer.Fallback(p.VerificationStatus, next.VerificationStatus)

	if p.Genre != nil {
		next.Genre = slices.Clone(*p.Genre)
	}
	if p.Skills != nil {
		next.Skills = slices.Clone(*p.Skills)
	}
	if p.Portfolio != nil {
		next.Portfolio = Portfolio{
			Images: slices.Clone(p.Portfolio.Images),
			Videos: slices.Clone(p.Portfolio.Videos),
			Audio:  slices.Clone(p.Portfolio.Audio),
		}
	}
	if p.PerformanceHistory != nil {
		next.PerformanceHistory = slices.Clone(*p.PerformanceHistory)
	}

	return next
}

// # Selection Criteria

// PriceRange is the [min, max] bound pair of the filter sidebar.
type PriceRange [2]int

// DefaultPriceRange is the sidebar's untouched slider position.
var DefaultPriceRange = PriceRange{0, 100000}

// Criteria is the structured filter applied by [ApplyFilters].
//
// Each field has an inactive value: empty Genres, empty Location, zero Rating,
// false Availability, zero Experience. PriceRange is carried for clients but is
// never compared against anything, because an artist's price is a display label.
type Criteria struct {
	Genres       []string   `json:"genres"`
	Location     string     `json:"location"`
	PriceRange   PriceRange `json:"priceRange"`
	Rating       float64    `json:"rating"`
	Availability bool       `json:"availability"`
	Experience   int        `json:"experience"`
}

// DefaultCriteria returns criteria with every constraint inactive.
func DefaultCriteria() Criteria {
	return Criteria{
		Genres:     []string{},
		PriceRange: DefaultPriceRange,
	}
}

// CriteriaPatch is a partial criteria update. Nil fields keep their previous value.
type CriteriaPatch struct {
	Genres       *[]string   `json:"genres"`
	Location     *string     `json:"location"`
	PriceRange   *PriceRange `json:"priceRange"`
	Rating       *float64    `json:"rating"`
	Availability *bool       `json:"availability"`
	Experience   *int        `json:"experience"`
}

// Merge returns a new Criteria with the patch laid over c.
func (c Criteria) Merge(p CriteriaPatch) Criteria {
	next := Criteria{
		Genres:       slices.Clone(c.Genres),
		Location:     pointer.Fallback(p.Location, c.Location),
		PriceRange:   pointer.Fallback(p.PriceRange, c.PriceRange),
		Rating:       pointer.Fallback(p.Rating, c.Rating),
		Availability: pointer.Fallback(p.Availability, c.Availability),
		Experience:   pointer.Fallback(p.Experience, c.Experience),
	}
	if p.Genres != nil {
		next.Genres = slices.Clone(*p.Genres)
	}
	if next.Genres == nil {
		next.Genres = []string{}
	}
	return next.Normalize()
}

// Normalize resets out-of-range thresholds to their inactive value.
// A rating outside 0-5, a negative experience and an inverted or negative
// price range never narrow a search.
func (c Criteria) Normalize() Criteria {
	if c.Rating < 0 || c.Rating > 5 {
		c.Rating = 0
	}
	if c.Experience < 0 {
		c.Experience = 0
	}
	if c.PriceRange[0] < 0 || c.PriceRange[0] > c.PriceRange[1] {
		c.PriceRange = DefaultPriceRange
	}
	return c
}

// # Field Names

const (
	FieldName               = "name"
	FieldEmail              = "email"
	FieldProfileImage       = "profileImage"
	FieldGenre              = "genre"
	FieldSkills             = "skills"
	FieldLocation           = "location"
	FieldExperience         = "experience"
	FieldRating             = "rating"
	FieldPriceRange         = "priceRange"
	FieldDescription        = "description"
	FieldVerificationStatus = "verificationStatus"
)
