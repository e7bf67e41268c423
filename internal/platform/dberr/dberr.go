// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates pgx errors into [apperr.AppError] values.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
)

// uniqueViolation is the SQLSTATE raised by a duplicate key.
const uniqueViolation = "23505"

// Wrap classifies a database error for the given resource name.
//
// pgx.ErrNoRows becomes NotFound(resource), a unique violation becomes Conflict,
// and everything else is an Internal error carrying the original cause.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict(resource + " already exists")
	}

	return apperr.Internal(err)
}
