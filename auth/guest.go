package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

const guestTTL = 24 * time.Hour

// POST /auth/guest
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + generateRandomString(16)

		guest := models.GuestUser{
			ID:        guestID,
			ExpiresAt: time.Now().Add(guestTTL),
		}

		if err := db.Create(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
			return
		}

		token, err := IssueJWT(guestID, "", "guest")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": guest.ExpiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
