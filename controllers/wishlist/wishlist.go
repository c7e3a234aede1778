package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/p-sai-gowtham/stylepop-api/models"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

type ToggleInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(wishlist store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		items, err := wishlist.List(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
	}
}

// ToggleWishlist flips a product's membership: present removes it, absent
// adds it. The response carries the refreshed list so clients answer
// isInWishlist without another round trip.
// POST /user/wishlist/toggle
func ToggleWishlist(wishlist store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input ToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items, err := wishlist.Toggle(c.Request.Context(), userID, input.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"in_wishlist": models.WishlistContains(items, input.ProductID),
			"items":       items,
			"count":       len(items),
		})
	}
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
