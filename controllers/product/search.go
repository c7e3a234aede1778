package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

// SearchPattern wraps a term for a case-insensitive substring match.
func SearchPattern(term string) string {
	return "%" + term + "%"
}

// GET /products/search?q=
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("q")
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		pattern := SearchPattern(term)
		var products []models.Product
		if err := db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
