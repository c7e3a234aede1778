package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/store"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, guestCarts *store.LocalStore) {
	userCarts := store.NewRemote(db)
	wishlist := store.NewRemoteWishlist(db)

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, userCarts, guestCarts)

	// Public catalog browsing
	SetupProductRoutes(r, db)

	// Guest cart (keyed by guest_id, no JWT)
	SetupGuestRoutes(r, db, guestCarts)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, userCarts, wishlist)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
