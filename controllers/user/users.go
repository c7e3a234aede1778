package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

type UpdateUserInput struct {
	FullName  *string         `json:"full_name"`
	Phone     *string         `json:"phone"`
	AvatarURL *string         `json:"avatar_url"`
	Address   *models.Address `json:"address"`
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var user models.User

		if err := db.Preload("Cart.Items").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		user.Cart.Recalculate()
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "full_name", "avatar_url", "created_at"). // Select only public fields
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// PUT /user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var user models.User

		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.AvatarURL != nil {
			user.AvatarURL = *input.AvatarURL
		}
		if input.Address != nil {
			user.Address = *input.Address
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
