// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventfulindia/eventful/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/artists", 1, pagination.DefaultLimit},
		{"explicit", "/artists?page=3&limit=5", 3, 5},
		{"negative_page", "/artists?page=-2", 1, pagination.DefaultLimit},
		{"limit_too_large", "/artists?limit=1000", 1, pagination.DefaultLimit},
		{"garbage", "/artists?page=x&limit=y", 1, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", tt.url, nil))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 20, 41)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasMore)
	assert.False(t, pagination.NewMeta(3, 20, 41).HasMore)
	assert.Equal(t, 0, pagination.NewMeta(1, 20, 0).TotalPages)
}
