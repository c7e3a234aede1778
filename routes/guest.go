package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/p-sai-gowtham/stylepop-api/controllers/cart"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

// SetupGuestRoutes registers the guest cart endpoints. Same handlers as the
// user cart, different owner resolution and storage strategy.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB, guestCarts *store.LocalStore) {
	guestGroup := r.Group("/guest/cart")
	{
		guestGroup.GET("", cartControllers.GetCart(guestCarts, cartControllers.GuestOwner))
		guestGroup.POST("", cartControllers.AddItem(db, guestCarts, cartControllers.GuestOwner))
		guestGroup.PUT("/:item_id", cartControllers.UpdateQuantity(guestCarts, cartControllers.GuestOwner))
		guestGroup.DELETE("/:item_id", cartControllers.RemoveItem(guestCarts, cartControllers.GuestOwner))
		guestGroup.DELETE("", cartControllers.ClearCart(guestCarts, cartControllers.GuestOwner))
	}
}
