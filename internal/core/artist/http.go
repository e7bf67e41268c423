// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artist implements the artist directory: the profile model, the
selection engine that filters and searches it, the stores that hold it and
its HTTP interface.

# Routing Strategy

  - Public (v1): listing, featured, profile lookup and tag vocabularies.
  - Authenticated (v1): saved filter criteria and profile management.
  - Manager (v1): verification decisions.
*/
package artist

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/eventfulindia/eventful/internal/platform/middleware"
	requestutil "github.com/eventfulindia/eventful/internal/platform/request"
	"github.com/eventfulindia/eventful/internal/platform/respond"
	"github.com/eventfulindia/eventful/internal/platform/sec"
	"github.com/eventfulindia/eventful/pkg/convert"
	"github.com/eventfulindia/eventful/pkg/pagination"
	"github.com/eventfulindia/eventful/pkg/query"
	"github.com/eventfulindia/eventful/pkg/slice"
)

// defaultFeatured is the number of artists the home page shows.
const defaultFeatured = 3

// # Handler Implementation

// Handler implements the HTTP layer for the artist directory.
type Handler struct {
	service *Service
}

// NewHandler constructs a new artist [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the directory's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listArtists)
	router.Get("/featured", handler.listFeatured)
	router.Get("/options", handler.getOptions)

	// ## Saved Criteria
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Get("/filters", handler.getFilters)
		authed.Patch("/filters", handler.mergeFilters)

		authed.Post("/", handler.createArtist)
		authed.Patch("/{id}", handler.updateArtist)
	})

	// ## Verification (Manager Protected)
	router.With(middleware.RequireRole(sec.RoleManager)).Patch("/{id}/verification", handler.setVerification)

	router.Get("/{identifier}", handler.getArtist)

	return router
}

// # Query Parsing

/*
CriteriaFromQuery builds [Criteria] from listing query parameters.

Malformed or missing values fall back to the inactive value of their field,
so a bad threshold widens the result instead of failing the request.

	?genres=Rock,Pop&location=mumbai&rating=4.5&availability=true&experience=5&min_price=0&max_price=50000
*/
func CriteriaFromQuery(values url.Values) Criteria {
	criteria := DefaultCriteria()

	if genres := query.Values(values["genres"]); len(genres) > 0 {
		criteria.Genres = genres
	}
	criteria.Location = values.Get("location")
	criteria.Rating = convert.ToFloat64D(values.Get("rating"), 0)
	criteria.Availability = convert.ToBool(values.Get("availability"))
	criteria.Experience = convert.ToIntD(values.Get("experience"), 0)
	criteria.PriceRange = PriceRange{
		convert.ToIntD(values.Get("min_price"), DefaultPriceRange[0]),
		convert.ToIntD(values.Get("max_price"), DefaultPriceRange[1]),
	}

	return criteria.Normalize()
}

// # Discovery

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	values := request.URL.Query()

	artists, err := handler.service.Search(request.Context(), CriteriaFromQuery(values), values.Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := slice.Window(artists, paginationParams.Offset(), paginationParams.Limit)
	respond.Paginated(writer, page, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(artists)))
}

func (handler *Handler) listFeatured(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToIntD(request.URL.Query().Get("limit"), defaultFeatured)
	if limit < 0 || limit > pagination.MaxLimit {
		limit = defaultFeatured
	}

	artists, err := handler.service.Featured(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}

func (handler *Handler) getOptions(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, DefaultOptions())
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artist, err := handler.service.Get(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

// # Saved Criteria

func (handler *Handler) getFilters(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	criteria, err := handler.service.SavedCriteria(request.Context(), managerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, criteria)
}

func (handler *Handler) mergeFilters(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch CriteriaPatch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	selection, err := handler.service.MergeCriteria(request.Context(), managerID, patch, request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, selection)
}

// # Management

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input Artist
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Identity is always server-assigned.
	input.ID = ""
	input.Slug = ""

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Verification has its own manager-only endpoint.
	patch.VerificationStatus = nil

	artist, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

type verificationRequest struct {
	Status VerificationStatus `json:"status"`
}

func (handler *Handler) setVerification(writer http.ResponseWriter, request *http.Request) {
	var input verificationRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.SetVerification(request.Context(), requestutil.Param(request, "id"), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}
