package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

// UpdateProductInput carries only the fields the caller wants changed.
type UpdateProductInput struct {
	Slug             *string         `json:"slug"`
	SKU              *string         `json:"sku"`
	Name             *string         `json:"name"`
	Description      *string         `json:"description"`
	Price            *float64        `json:"price"`
	CompareAtPrice   *float64        `json:"compare_at_price"`
	Category         *string         `json:"category"`
	Subcategory      *string         `json:"subcategory"`
	Images           *[]string       `json:"images"`
	Sizes            *[]string       `json:"sizes"`
	Colors           *[]models.Color `json:"colors"`
	Inventory        *int            `json:"inventory"`
	Material         *string         `json:"material"`
	CareInstructions *string         `json:"care_instructions"`
	IsFeatured       *bool           `json:"is_featured"`
	IsNew            *bool           `json:"is_new"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Slug != nil {
			product.Slug = *input.Slug
		}
		if input.SKU != nil {
			product.SKU = *input.SKU
		}
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			product.Price = *input.Price
		}
		if input.CompareAtPrice != nil {
			product.CompareAtPrice = input.CompareAtPrice
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Subcategory != nil {
			product.Subcategory = *input.Subcategory
		}
		if input.Images != nil {
			product.Images = pq.StringArray(*input.Images)
		}
		if input.Sizes != nil {
			product.Sizes = pq.StringArray(*input.Sizes)
		}
		if input.Colors != nil {
			product.Colors = models.ColorList(*input.Colors)
		}
		if input.Inventory != nil {
			product.Inventory = *input.Inventory
		}
		if input.Material != nil {
			product.Material = *input.Material
		}
		if input.CareInstructions != nil {
			product.CareInstructions = *input.CareInstructions
		}
		if input.IsFeatured != nil {
			product.IsFeatured = *input.IsFeatured
		}
		if input.IsNew != nil {
			product.IsNew = *input.IsNew
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
