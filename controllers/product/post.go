package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

type ProductInput struct {
	Slug             string         `json:"slug" binding:"required"`
	SKU              string         `json:"sku"`
	Name             string         `json:"name" binding:"required"`
	Description      string         `json:"description"`
	Price            float64        `json:"price" binding:"required,gt=0"`
	CompareAtPrice   *float64       `json:"compare_at_price"`
	Category         string         `json:"category" binding:"required"`
	Subcategory      string         `json:"subcategory"`
	Images           []string       `json:"images"`
	Sizes            []string       `json:"sizes"`
	Colors           []models.Color `json:"colors"`
	Inventory        int            `json:"inventory"`
	Material         string         `json:"material"`
	CareInstructions string         `json:"care_instructions"`
	IsFeatured       bool           `json:"is_featured"`
	IsNew            bool           `json:"is_new"`
}

// CreateProduct adds a catalog row. Images are external URLs; nothing is
// uploaded here.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Slug:             input.Slug,
			SKU:              input.SKU,
			Name:             input.Name,
			Description:      input.Description,
			Price:            input.Price,
			CompareAtPrice:   input.CompareAtPrice,
			Category:         input.Category,
			Subcategory:      input.Subcategory,
			Images:           pq.StringArray(input.Images),
			Sizes:            pq.StringArray(input.Sizes),
			Colors:           models.ColorList(input.Colors),
			Inventory:        input.Inventory,
			Material:         input.Material,
			CareInstructions: input.CareInstructions,
			IsFeatured:       input.IsFeatured,
			IsNew:            input.IsNew,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
