package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

// GET /products/filters
//
// Sidebar metadata: categories with product counts, store-wide price span,
// and availability counts.
func GetFilterMetadata(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var meta models.FilterMetadata

		if err := db.Model(&models.Product{}).
			Select("category, COUNT(*) AS count").
			Group("category").
			Order("category ASC").
			Scan(&meta.Categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter metadata"})
			return
		}

		if err := db.Model(&models.Product{}).
			Select("COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max").
			Scan(&meta.PriceRange).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter metadata"})
			return
		}

		if err := db.Model(&models.Product{}).
			Where("inventory > 0").
			Count(&meta.Availability.InStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter metadata"})
			return
		}
		if err := db.Model(&models.Product{}).
			Where("inventory <= 0").
			Count(&meta.Availability.OutOfStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter metadata"})
			return
		}

		c.JSON(http.StatusOK, meta)
	}
}
