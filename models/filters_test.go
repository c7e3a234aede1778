package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByOrderClause(t *testing.T) {
	tests := []struct {
		sortBy SortBy
		want   string
	}{
		{SortFeatured, "is_featured DESC"},
		{SortNewest, "created_at DESC"},
		{SortPriceLow, "price ASC"},
		{SortPriceHigh, "price DESC"},
		{SortRating, "rating DESC"},
		{SortBy("garbage"), "is_featured DESC"}, // unknown keys get the default
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sortBy.OrderClause())
		})
	}
}

func TestSortByValid(t *testing.T) {
	assert.True(t, SortFeatured.Valid())
	assert.True(t, SortRating.Valid())
	assert.False(t, SortBy("").Valid())
	assert.False(t, SortBy("price").Valid())
}

func TestDefaultFilterOptions(t *testing.T) {
	opts := DefaultFilterOptions()
	assert.Empty(t, opts.Categories)
	assert.Empty(t, opts.Sizes)
	assert.Equal(t, 0.0, opts.PriceMin)
	assert.Equal(t, 1000.0, opts.PriceMax)
	assert.Equal(t, SortFeatured, opts.SortBy)
}
