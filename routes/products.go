package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/p-sai-gowtham/stylepop-api/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/filters", productControllers.GetFilterMetadata(db))
		products.GET("/featured", productControllers.GetFeaturedProducts(db))
		products.GET("/new-arrivals", productControllers.GetNewArrivals(db))
		products.GET("/search", productControllers.SearchProducts(db))
		products.GET("/slug/:slug", productControllers.GetProductBySlug(db))
	}
}
