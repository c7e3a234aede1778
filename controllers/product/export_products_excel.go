package productControllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
// GET /admin/products/export
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "SKU", "Slug", "Name", "Category", "Subcategory",
			"Price", "Compare At", "Inventory", "Sizes", "Featured", "New",
			"Rating", "Reviews", "Created At",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().Value = h
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetInt(int(p.ID))
			row.AddCell().Value = p.SKU
			row.AddCell().Value = p.Slug
			row.AddCell().Value = p.Name
			row.AddCell().Value = p.Category
			row.AddCell().Value = p.Subcategory
			row.AddCell().SetFloat(p.Price)
			if p.CompareAtPrice != nil {
				row.AddCell().SetFloat(*p.CompareAtPrice)
			} else {
				row.AddCell().Value = ""
			}
			row.AddCell().SetInt(p.Inventory)
			row.AddCell().Value = strings.Join(p.Sizes, ", ")
			row.AddCell().SetBool(p.IsFeatured)
			row.AddCell().SetBool(p.IsNew)
			row.AddCell().SetFloat(p.Rating)
			row.AddCell().SetInt(p.ReviewCount)
			row.AddCell().Value = p.CreatedAt.Format(time.RFC3339)
		}

		filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
