// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/platform/respond"
)

// featuredCount is how many artists the landing page shows.
const featuredCount = 3

// Directory is the part of the artist service the landing page reads.
type Directory interface {
	Featured(context context.Context, n int) ([]*artist.Artist, error)
	Count(context context.Context) (int, error)
}

type Handler struct {
	directory Directory
}

func NewHandler(directory Directory) *Handler {
	return &Handler{directory: directory}
}

// Routes returns a [chi.Router] for the public content pages.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/home", handler.getHome)
	router.Get("/about", handler.getAbout)

	return router
}

func (handler *Handler) getHome(writer http.ResponseWriter, request *http.Request) {
	featured, err := handler.directory.Featured(request.Context(), featuredCount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.directory.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Home{
		Featured:    featured,
		ArtistCount: count,
		Stats:       homeStats(),
		HowItWorks:  howItWorks(),
	})
}

func (handler *Handler) getAbout(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, AboutPage())
}
