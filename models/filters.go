package models

// SortBy enumerates the catalog sort orders the storefront offers.
type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortNewest    SortBy = "newest"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortRating    SortBy = "rating"
)

func (s SortBy) Valid() bool {
	switch s {
	case SortFeatured, SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// OrderClause maps the sort key onto a SQL ORDER BY expression. "featured"
// is boolean-descending on the merchandising flag, not a relevance score.
func (s SortBy) OrderClause() string {
	switch s {
	case SortNewest:
		return "created_at DESC"
	case SortPriceLow:
		return "price ASC"
	case SortPriceHigh:
		return "price DESC"
	case SortRating:
		return "rating DESC"
	default:
		return "is_featured DESC"
	}
}

// FilterOptions is the storefront's ephemeral filter state. Sizes are
// carried so the sidebar can echo its selection, but they are deliberately
// not applied to the catalog query.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Sizes      []string `json:"sizes"`
	PriceMin   float64  `json:"price_min"`
	PriceMax   float64  `json:"price_max"`
	SortBy     SortBy   `json:"sort_by"`
}

// DefaultFilterOptions matches the sidebar's initial state.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Categories: []string{},
		Sizes:      []string{},
		PriceMin:   0,
		PriceMax:   1000,
		SortBy:     SortFeatured,
	}
}

// FilterMetadata feeds the filter sidebar: what categories exist, the
// store-wide price span, and stock availability counts.
type FilterMetadata struct {
	Categories   []CategoryCount `json:"categories"`
	PriceRange   PriceRange      `json:"price_range"`
	Availability Availability    `json:"availability"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Availability struct {
	InStock    int64 `json:"in_stock"`
	OutOfStock int64 `json:"out_of_stock"`
}
