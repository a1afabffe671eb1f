package postgres

import (
	"testing"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pageCount(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestSortColumnsCoverWhitelist(t *testing.T) {
	for _, field := range []string{
		domain.SortModel,
		domain.SortYear,
		domain.SortBrandName,
		domain.SortLicensePlate,
	} {
		assert.Contains(t, sortColumns, field)
	}
	assert.Len(t, sortColumns, 4)
}
