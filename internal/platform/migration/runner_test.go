// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventfulindia/eventful/internal/platform/migration"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@localhost:5432/eventful", "pgx5://u:p@localhost:5432/eventful"},
		{"postgresql_scheme", "postgresql://localhost/eventful", "pgx5://localhost/eventful"},
		{"already_pgx5", "pgx5://localhost/eventful", "pgx5://localhost/eventful"},
		{"keyword_dsn", "host=localhost dbname=eventful", "host=localhost dbname=eventful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ConvertToPgx5DSN(tt.dsn))
		})
	}
}
