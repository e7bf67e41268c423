// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

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

// Routes returns the event endpoints. Reads are public, writes need a session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listEvents)
	router.Get("/types", handler.listTypes)
	router.Get("/{id}", handler.getEvent)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Post("/", handler.createEvent)
		authed.Patch("/{id}", handler.updateEvent)
	})

	return router
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	events, err := handler.service.List(request.Context(), values.Get("q"), values.Get("type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, events)
}

func (handler *Handler) listTypes(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Types())
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	event, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Event
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), managerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}
