package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// GuestID opts in to folding the device's guest cart into the server
	// cart. Absent means no merge.
	GuestID string `json:"guest_id"`
}

// POST /auth/signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        input.Email,
			PasswordHash: string(hash),
			FullName:     input.FullName,
			Cart:         models.Cart{ID: uuid.NewString()},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := IssueJWT(user.ID, user.Email, "user")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created",
			"user":    user,
			"token":   token,
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB, userCarts store.CartStore, guestCarts *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", input.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		mergeStatus := "no-guest-cart"
		if input.GuestID != "" {
			merged, err := MergeGuestCart(c.Request.Context(), db, guestCarts, input.GuestID, user.ID)
			mergeStatus = mergeStatusFor(merged, err)
		}

		// The cart snapshot is read after any merge, so the response never
		// carries pre-merge items or stale aggregates.
		if err := attachCart(c.Request.Context(), userCarts, &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		token, err := IssueJWT(user.ID, user.Email, "user")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        token,
		})
	}
}

// attachCart replaces the user's cart with a fresh snapshot from the store,
// items loaded and aggregates recomputed.
func attachCart(ctx context.Context, carts store.CartStore, user *models.User) error {
	cart, err := carts.Load(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Cart = *cart
	return nil
}

// mergeStatusFor maps a merge outcome onto the status string reported to the
// client. A merge that committed counts as success even when the guest-cart
// cleanup errored afterwards; the leftover guest cart is harmless.
func mergeStatusFor(merged bool, err error) string {
	switch {
	case merged:
		return "merged-success"
	case err != nil:
		return "merge-failed"
	default:
		return "guest-cart-empty"
	}
}
