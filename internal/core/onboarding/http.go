// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/eventfulindia/eventful/internal/platform/request"
	"github.com/eventfulindia/eventful/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the wizard endpoints. Onboarding is open to anonymous performers.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/steps", handler.listSteps)
	router.Post("/", handler.startDraft)
	router.Get("/{id}", handler.getDraft)
	router.Patch("/{id}", handler.updateDraft)
	router.Post("/{id}/next", handler.nextStep)
	router.Post("/{id}/prev", handler.prevStep)
	router.Post("/{id}/submit", handler.submitDraft)

	return router
}

func (handler *Handler) listSteps(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, Steps())
}

func (handler *Handler) startDraft(writer http.ResponseWriter, request *http.Request) {
	progress, err := handler.service.Start(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, progress)
}

func (handler *Handler) getDraft(writer http.ResponseWriter, request *http.Request) {
	progress, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

func (handler *Handler) updateDraft(writer http.ResponseWriter, request *http.Request) {
	var patch FormPatch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	progress, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

func (handler *Handler) nextStep(writer http.ResponseWriter, request *http.Request) {
	progress, err := handler.service.Next(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

func (handler *Handler) prevStep(writer http.ResponseWriter, request *http.Request) {
	progress, err := handler.service.Prev(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

func (handler *Handler) submitDraft(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.Submit(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, profile)
}
