package productControllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

// ParseFilterOptions builds FilterOptions from the listing query string.
// Unknown sort keys and malformed bounds fall back to the defaults rather
// than erroring; the sidebar always has a valid state to echo.
func ParseFilterOptions(values url.Values) models.FilterOptions {
	opts := models.DefaultFilterOptions()

	if raw := values.Get("categories"); raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				opts.Categories = append(opts.Categories, tok)
			}
		}
	}
	if raw := values.Get("sizes"); raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				opts.Sizes = append(opts.Sizes, tok)
			}
		}
	}
	if raw := values.Get("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			opts.PriceMin = v
		}
	}
	if raw := values.Get("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			opts.PriceMax = v
		}
	}
	if s := models.SortBy(values.Get("sort_by")); s.Valid() {
		opts.SortBy = s
	}
	return opts
}

// GET /products
//
// Sizes from the query string ride along in the echoed filter state but are
// not pushed into SQL; size selection narrows nothing server-side.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := ParseFilterOptions(c.Request.URL.Query())

		query := db.Model(&models.Product{}).
			Where("price >= ? AND price <= ?", opts.PriceMin, opts.PriceMax)

		if len(opts.Categories) > 0 {
			query = query.Where("category IN ?", opts.Categories)
		}

		var products []models.Product
		if err := query.Order(opts.SortBy.OrderClause()).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"filters":  opts,
		})
	}
}
