// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventfulindia/eventful/internal/platform/middleware"
	requestutil "github.com/eventfulindia/eventful/internal/platform/request"
	"github.com/eventfulindia/eventful/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the feed endpoints. All of them require a session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listNotifications)
	router.Post("/{id}/read", handler.markRead)

	return router
}

func (handler *Handler) listNotifications(writer http.ResponseWriter, request *http.Request) {
	feed, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, feed)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.MarkRead(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
