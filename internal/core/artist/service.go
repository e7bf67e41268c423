// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/internal/platform/validate"
	"github.com/eventfulindia/eventful/pkg/slug"
	"github.com/eventfulindia/eventful/pkg/uuid"
)

// # Service Layer

// Service owns the artist collection and the saved filter criteria.
//
// It is the only writer: the collection changes through [Service.Create],
// [Service.Update], [Service.SetVerification] and [Service.ReplaceAll], and
// saved criteria change through [Service.MergeCriteria].
type Service struct {
	// writes serializes read-modify-write sequences on the collection.
	writes sync.Mutex
	// criteriaWrites does the same for saved criteria.
	criteriaWrites sync.Mutex

	repo     Repository
	criteria CriteriaStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a new [Service] with its repositories.
func NewService(repo Repository, criteria CriteriaStore, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		criteria: criteria,
		logger:   logger,
		now:      time.Now,
	}
}

// Selection is a criteria set together with the artists it selects.
type Selection struct {
	Criteria Criteria  `json:"criteria"`
	Artists  []*Artist `json:"artists"`
}

// # Listing

/*
Search runs [Select] over the whole collection.

Parameters:
  - context: context.Context
  - criteria: Criteria (structured filter)
  - term: string (free-text search, blank for none)

Returns:
  - []*Artist: matching artists in collection order
  - error: repository errors only; selection itself cannot fail
*/
func (service *Service) Search(context context.Context, criteria Criteria, term string) ([]*Artist, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return Select(artists, criteria, term), nil
}

// Featured returns the first n artists in collection order.
func (service *Service) Featured(context context.Context, n int) ([]*Artist, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	if n >= 0 && n < len(artists) {
		artists = artists[:n]
	}
	return artists, nil
}

func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

/*
Get fetches one artist by ID, falling back to the slug.

Returns:
  - *Artist: the stored record
  - error: NOT_FOUND when neither matches
*/
func (service *Service) Get(context context.Context, identifier string) (*Artist, error) {
	artist, err := service.repo.FindByID(context, identifier)
	if apperr.IsNotFound(err) {
		return service.repo.FindBySlug(context, identifier)
	}
	return artist, err
}

// # Management

/*
Create validates and appends a new artist.

Description: Assigns a UUIDv7 identity and a unique slug, defaults the
verification status to pending and stamps the joined date when missing.

Parameters:
  - context: context.Context
  - artist: *Artist (filled in place with the generated fields)

Returns:
  - error: VALIDATION_ERROR, CONFLICT or persistence errors
*/
func (service *Service) Create(context context.Context, artist *Artist) error {
	service.writes.Lock()
	defer service.writes.Unlock()

	service.fillDefaults(artist)

	if err := validateArtist(artist); err != nil {
		return err
	}

	if err := service.assignSlug(context, artist); err != nil {
		return err
	}

	if err := service.repo.Create(context, artist); err != nil {
		return err
	}

	service.logger.Info("artist_created",
		slog.String("artist_id", artist.ID),
		slog.String("slug", artist.Slug),
	)
	return nil
}

// Update merges patch over the stored artist and replaces the whole record.
func (service *Service) Update(context context.Context, id string, patch Patch) (*Artist, error) {
	service.writes.Lock()
	defer service.writes.Unlock()

	return service.update(context, id, patch)
}

func (service *Service) update(context context.Context, id string, patch Patch) (*Artist, error) {
	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(current)
	if err := validateArtist(next); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, next); err != nil {
		return nil, err
	}

	service.logger.Info("artist_updated", slog.String("artist_id", id))
	return next, nil
}

// SetVerification moves an artist between pending, verified and rejected.
func (service *Service) SetVerification(context context.Context, id string, status VerificationStatus) (*Artist, error) {
	if !status.IsValid() {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldVerificationStatus,
			Message: "Must be one of: pending, verified, rejected",
		})
	}

	service.writes.Lock()
	defer service.writes.Unlock()

	artist, err := service.update(context, id, Patch{VerificationStatus: &status})
	if err != nil {
		return nil, err
	}

	service.logger.Info("artist_verification_changed",
		slog.String("artist_id", id),
		slog.String("status", string(status)),
	)
	return artist, nil
}

/*
ReplaceAll swaps the whole collection.

Description: Used by seeding and bulk imports. Records missing an ID, slug,
status or joined date get the same defaults as [Service.Create]; slugs are
made unique within the batch.
*/
func (service *Service) ReplaceAll(context context.Context, artists []*Artist) error {
	next := make([]*Artist, 0, len(artists))
	taken := make(map[string]struct{}, len(artists))

	for _, a := range artists {
		artist := a.Clone()
		service.fillDefaults(artist)

		if err := validateArtist(artist); err != nil {
			return err
		}

		if artist.Slug == "" {
			artist.Slug = baseSlug(artist)
		}
		if _, dup := taken[artist.Slug]; dup {
			artist.Slug = slug.WithSuffix(artist.Slug, shortID(artist.ID))
		}
		taken[artist.Slug] = struct{}{}

		next = append(next, artist)
	}

	service.writes.Lock()
	defer service.writes.Unlock()

	if err := service.repo.ReplaceAll(context, next); err != nil {
		return err
	}

	service.logger.Info("artist_collection_replaced", slog.Int("count", len(next)))
	return nil
}

// # Saved Criteria

// SavedCriteria returns the criteria a manager last applied.
func (service *Service) SavedCriteria(context context.Context, userID string) (Criteria, error) {
	return service.criteria.Get(context, userID)
}

/*
MergeCriteria lays patch over the manager's saved criteria, saves the result
and returns it with the artists it selects for term.
*/
func (service *Service) MergeCriteria(context context.Context, userID string, patch CriteriaPatch, term string) (*Selection, error) {
	merged, err := service.saveMerged(context, userID, patch)
	if err != nil {
		return nil, err
	}

	artists, err := service.Search(context, merged, term)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("criteria_merged",
		slog.String("user_id", userID),
		slog.Int("matches", len(artists)),
	)
	return &Selection{Criteria: merged, Artists: artists}, nil
}

// saveMerged lays patch over the saved criteria and stores the result.
func (service *Service) saveMerged(context context.Context, userID string, patch CriteriaPatch) (Criteria, error) {
	service.criteriaWrites.Lock()
	defer service.criteriaWrites.Unlock()

	current, err := service.criteria.Get(context, userID)
	if err != nil {
		return Criteria{}, err
	}

	merged := current.Merge(patch)
	if err := service.criteria.Save(context, userID, merged); err != nil {
		return Criteria{}, err
	}
	return merged, nil
}

// # Helpers

func (service *Service) fillDefaults(artist *Artist) {
	if artist.ID == "" {
		artist.ID = uuid.New()
	}
	if artist.VerificationStatus == "" {
		artist.VerificationStatus = StatusPending
	}
	if artist.JoinedDate.IsZero() {
		artist.JoinedDate = service.now().UTC()
	}
	if artist.Genre == nil {
		artist.Genre = []string{}
	}
	if artist.Skills == nil {
		artist.Skills = []string{}
	}
	if artist.PerformanceHistory == nil {
		artist.PerformanceHistory = []Performance{}
	}
}

// assignSlug derives the slug from the name, adding an ID suffix when it is taken.
func (service *Service) assignSlug(context context.Context, artist *Artist) error {
	if artist.Slug == "" {
		artist.Slug = baseSlug(artist)
	}

	_, err := service.repo.FindBySlug(context, artist.Slug)
	switch {
	case apperr.IsNotFound(err):
		return nil
	case err != nil:
		return err
	}

	artist.Slug = slug.WithSuffix(artist.Slug, shortID(artist.ID))
	return nil
}

func baseSlug(artist *Artist) string {
	if s := slug.From(artist.Name); s != "" {
		return s
	}
	return artist.ID
}

// shortID returns the tail of an ID, the random part of a UUIDv7.
func shortID(id string) string {
	const n = 6
	if len(id) <= n {
		return id
	}
	return id[len(id)-n:]
}

func validateArtist(artist *Artist) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, artist.Name).MaxLen(FieldName, artist.Name, 200)
	if artist.Email != "" {
		validator.Email(FieldEmail, artist.Email)
	}
	if artist.ProfileImage != "" {
		validator.URL(FieldProfileImage, artist.ProfileImage)
	}
	validator.NotEmpty(FieldGenre, artist.Genre)
	validator.Required(FieldLocation, artist.Location)
	validator.Range(FieldExperience, artist.Experience, 0, 80)
	validator.FloatRange(FieldRating, artist.Rating, 0, 5)
	validator.MaxLen(FieldDescription, artist.Description, 2000)
	validator.OneOf(FieldVerificationStatus, string(artist.VerificationStatus),
		string(StatusPending),
		string(StatusVerified),
		string(StatusRejected),
	)

	return validator.Err()
}
