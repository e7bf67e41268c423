// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfulindia/eventful/internal/platform/sec"
)

/*
TestTokenService_RoundTrip issues a token and verifies it with the same service.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("secret", "eventful.in", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := service.Issue("1", "Amit Patel", sec.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.ManagerID)
	assert.Equal(t, "Amit Patel", claims.Name)
	assert.Equal(t, string(sec.RoleManager), claims.Role)
}

/*
TestTokenService_RejectsForeignSecret ensures tokens signed elsewhere fail verification.
*/
func TestTokenService_RejectsForeignSecret(t *testing.T) {
	issuer, err := sec.NewTokenService("one", "eventful.in", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("two", "eventful.in", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue("1", "Amit Patel", sec.RoleManager)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_RejectsWrongIssuer ensures the issuer claim is enforced.
*/
func TestTokenService_RejectsWrongIssuer(t *testing.T) {
	issuer, err := sec.NewTokenService("secret", "elsewhere", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret", "eventful.in", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue("1", "Amit Patel", sec.RoleManager)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestNewTokenService_Validation(t *testing.T) {
	_, err := sec.NewTokenService("", "eventful.in", time.Hour)
	assert.Error(t, err)

	_, err = sec.NewTokenService("secret", "eventful.in", 0)
	assert.Error(t, err)
}

func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleManager))
	assert.True(t, sec.RoleManager.AtLeast(sec.RoleManager))
	assert.False(t, sec.RoleVisitor.AtLeast(sec.RoleManager))
	assert.False(t, sec.UserRole("unknown").AtLeast(sec.RoleVisitor))
}
