// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/internal/platform/sec"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(managerID, name string, role sec.UserRole) (string, time.Time, error)
}

// Service implements the auto-login use case.
type Service struct {
	tokens  TokenIssuer
	manager Manager
	logger  *slog.Logger
}

// NewService constructs a [Service] that signs in the demo manager.
func NewService(tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		tokens:  tokens,
		manager: DemoManager(),
		logger:  logger,
	}
}

// LoginSession is the result of a successful sign-in.
type LoginSession struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Manager     Manager   `json:"manager"`
}

/*
AutoLogin signs the demo manager in without credentials.

Returns:
  - *LoginSession: a bearer token with its expiry and the manager profile
  - error: only when signing fails
*/
func (service *Service) AutoLogin(context context.Context) (*LoginSession, error) {
	token, expiresAt, err := service.tokens.Issue(service.manager.ID, service.manager.Name, demoRole)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth: issue token: %w", err))
	}

	service.logger.InfoContext(context, "manager_auto_login", slog.String("manager_id", service.manager.ID))

	return &LoginSession{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Manager:     service.manager,
	}, nil
}

// Me returns the profile behind a session.
func (service *Service) Me(_ context.Context, managerID string) (*Manager, error) {
	if managerID != service.manager.ID {
		return nil, apperr.NotFound("Manager")
	}
	manager := service.manager
	return &manager, nil
}
