package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

// OwnerFunc resolves the cart owner key from the request, writing an error
// response and returning false when it can't. The same handlers serve user
// and guest carts; only the owner resolution and the injected CartStore
// differ.
type OwnerFunc func(c *gin.Context) (string, bool)

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// UpdateQuantityInput deliberately has no minimum binding: a quantity below
// 1 is a no-op, not an error, and the handler answers with the unchanged
// cart.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET .../cart
func GetCart(carts store.CartStore, owner OwnerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := owner(c)
		if !ok {
			return
		}
		cart, err := carts.Load(c.Request.Context(), ownerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST .../cart
func AddItem(db *gorm.DB, carts store.CartStore, owner OwnerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := owner(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validate against the catalog before touching the cart.
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := carts.AddItem(c.Request.Context(), ownerID, &product, input.Quantity, input.Size, input.Color)
		if err != nil {
			respondCartError(c, err, "Failed to add item to cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT .../cart/:item_id
func UpdateQuantity(carts store.CartStore, owner OwnerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := owner(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.UpdateQuantity(c.Request.Context(), ownerID, c.Param("item_id"), input.Quantity)
		if err != nil {
			respondCartError(c, err, "Failed to update cart item")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE .../cart/:item_id
func RemoveItem(carts store.CartStore, owner OwnerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := owner(c)
		if !ok {
			return
		}

		cart, err := carts.RemoveItem(c.Request.Context(), ownerID, c.Param("item_id"))
		if err != nil {
			respondCartError(c, err, "Failed to delete cart item")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE .../cart
func ClearCart(carts store.CartStore, owner OwnerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := owner(c)
		if !ok {
			return
		}

		cart, err := carts.Clear(c.Request.Context(), ownerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// UserOwner reads the user id placed in the context by the JWT middleware.
func UserOwner(c *gin.Context) (string, bool) {
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

func respondCartError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, store.ErrInvalidQuantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
