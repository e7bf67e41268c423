// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventfulindia/eventful/internal/platform/middleware"
	requestutil "github.com/eventfulindia/eventful/internal/platform/request"
	"github.com/eventfulindia/eventful/internal/platform/respond"
)

// Handler implements the sign-in endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the sign-in routes.
//
// # Endpoints
//   - POST /auto-login : Returns a bearer token for the demo manager.
//   - GET  /me         : Returns the signed-in manager.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/auto-login", handler.autoLogin)
	router.With(middleware.RequireAuth).Get("/me", handler.me)

	return router
}

// autoLogin handles POST /api/v1/auth/auto-login.
func (handler *Handler) autoLogin(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.authService.AutoLogin(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

// me handles GET /api/v1/auth/me.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	managerID, err := requestutil.RequiredManagerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	manager, err := handler.authService.Me(request.Context(), managerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, manager)
}
