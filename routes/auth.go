package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/auth"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, userCarts store.CartStore, guestCarts *store.LocalStore) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup(db))
		authGroup.POST("/login", auth.Login(db, userCarts, guestCarts))
		authGroup.POST("/guest", auth.CreateGuestSession(db))
	}
}
