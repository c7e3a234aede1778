package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/p-sai-gowtham/stylepop-api/controllers/cart"
	userControllers "github.com/p-sai-gowtham/stylepop-api/controllers/user"
	wishlistControllers "github.com/p-sai-gowtham/stylepop-api/controllers/wishlist"
	"github.com/p-sai-gowtham/stylepop-api/middleware"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, userCarts store.CartStore, wishlist store.WishlistStore) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(db))    // GET /user
		userGroup.PUT("", userControllers.UpdateUser(db)) // PUT /user

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(userCarts, cartControllers.UserOwner))
			cartGroup.POST("", cartControllers.AddItem(db, userCarts, cartControllers.UserOwner))
			cartGroup.PUT("/:item_id", cartControllers.UpdateQuantity(userCarts, cartControllers.UserOwner))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveItem(userCarts, cartControllers.UserOwner))
			cartGroup.DELETE("", cartControllers.ClearCart(userCarts, cartControllers.UserOwner))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetWishlist(wishlist))
			wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlist(wishlist))
		}
	}
}
