package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/p-sai-gowtham/stylepop-api/controllers/product"
	userControllers "github.com/p-sai-gowtham/stylepop-api/controllers/user"
	"github.com/p-sai-gowtham/stylepop-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))

		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}
}
