package productControllers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

func TestParseFilterOptionsDefaults(t *testing.T) {
	opts := ParseFilterOptions(url.Values{})
	assert.Empty(t, opts.Categories)
	assert.Empty(t, opts.Sizes)
	assert.Equal(t, 0.0, opts.PriceMin)
	assert.Equal(t, 1000.0, opts.PriceMax)
	assert.Equal(t, models.SortFeatured, opts.SortBy)
}

func TestParseFilterOptions(t *testing.T) {
	opts := ParseFilterOptions(url.Values{
		"categories": {"men, women"},
		"sizes":      {"M,L"},
		"min_price":  {"25"},
		"max_price":  {"150.50"},
		"sort_by":    {"price-low"},
	})

	assert.Equal(t, []string{"men", "women"}, opts.Categories)
	assert.Equal(t, []string{"M", "L"}, opts.Sizes)
	assert.Equal(t, 25.0, opts.PriceMin)
	assert.Equal(t, 150.50, opts.PriceMax)
	assert.Equal(t, models.SortPriceLow, opts.SortBy)
}

func TestParseFilterOptionsIgnoresMalformedValues(t *testing.T) {
	opts := ParseFilterOptions(url.Values{
		"min_price":  {"cheap"},
		"max_price":  {"-10"},
		"sort_by":    {"relevance"},
		"categories": {" , ,"},
	})

	assert.Empty(t, opts.Categories)
	assert.Equal(t, 0.0, opts.PriceMin)
	assert.Equal(t, 1000.0, opts.PriceMax)
	assert.Equal(t, models.SortFeatured, opts.SortBy)
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%linen%", SearchPattern("linen"))
	assert.Equal(t, "%%", SearchPattern(""))
}
