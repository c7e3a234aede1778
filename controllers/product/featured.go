package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

const defaultShelfLimit = 8

func shelfLimit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return defaultShelfLimit
}

// GET /products/featured
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("is_featured = ?", true).Limit(shelfLimit(c)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/new-arrivals
func GetNewArrivals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("is_new = ?", true).
			Order("created_at DESC").
			Limit(shelfLimit(c)).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch new arrivals"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
