// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package booking

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

// Routes returns the booking endpoints, scoped to the calling manager.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listBookings)
	router.Post("/", handler.createBooking)
	router.Get("/{id}", handler.getBooking)
	router.Patch("/{id}", handler.updateBooking)
	router.Post("/{id}/messages", handler.addMessage)

	return router
}

func (handler *Handler) listBookings(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookings, err := handler.service.ListForManager(request.Context(), managerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, bookings)
}

func (handler *Handler) getBooking(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking, err := handler.service.Get(request.Context(), managerID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, booking)
}

func (handler *Handler) createBooking(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking, err := handler.service.Create(request.Context(), managerID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, booking)
}

func (handler *Handler) updateBooking(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking, err := handler.service.Update(request.Context(), managerID, requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, booking)
}

func (handler *Handler) addMessage(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input MessageInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.AddMessage(request.Context(), managerID, requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, message)
}
