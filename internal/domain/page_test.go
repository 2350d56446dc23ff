package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/android-4dsoft/yettel/internal/domain"
)

func TestNewPaginationParams(t *testing.T) {
	ptr := func(n int) *int { return &n }
	tests := []struct {
		name        string
		page, limit *int
		want        domain.PaginationParams
		offset      int
	}{
		{"defaults", nil, nil, domain.PaginationParams{Page: 1, Limit: 20}, 0},
		{"explicit", ptr(3), ptr(10), domain.PaginationParams{Page: 3, Limit: 10}, 20},
		{"non-positive falls back", ptr(0), ptr(-5), domain.PaginationParams{Page: 1, Limit: 20}, 0},
		{"limit capped", ptr(2), ptr(500), domain.PaginationParams{Page: 2, Limit: 100}, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.NewPaginationParams(tc.page, tc.limit)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.offset, got.Offset())
		})
	}
}
