package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

// MergeGuestCart folds the device's guest cart into the user's server cart.
// Lines matching on (product, size, color) sum their quantities; everything
// else is inserted. The guest cart is deleted afterwards. Returns false when
// there was nothing to merge. A true result with a non-nil error means the
// merge committed but the guest cart could not be deleted.
//
// Merging only happens when the client sends its guest_id at login; it is
// never triggered implicitly.
func MergeGuestCart(ctx context.Context, db *gorm.DB, guestCarts *store.LocalStore, guestID, userID string) (bool, error) {
	guestCart, err := guestCarts.Load(ctx, guestID)
	if err != nil {
		return false, err
	}
	if len(guestCart.Items) == 0 {
		return false, nil
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var userCart models.Cart
	err = tx.Preload("Items").Where("user_id = ?", userID).First(&userCart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		userCart = models.Cart{ID: uuid.NewString(), UserID: &userID}
		if err := tx.Create(&userCart).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	} else if err != nil {
		tx.Rollback()
		return false, err
	}

	for _, guestItem := range guestCart.Items {
		var userItem models.CartItem
		lookupErr := tx.Where(
			"cart_id = ? AND product_id = ? AND size = ? AND color = ?",
			userCart.ID, guestItem.ProductID, guestItem.Size, guestItem.Color,
		).First(&userItem).Error

		switch {
		case lookupErr == nil:
			userItem.Quantity += guestItem.Quantity
			userItem.AddedAt = time.Now().UTC()
			if err := tx.Save(&userItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}

		case errors.Is(lookupErr, gorm.ErrRecordNotFound):
			newItem := guestItem
			newItem.ID = uuid.NewString()
			newItem.CartID = userCart.ID
			newItem.AddedAt = time.Now().UTC()
			if err := tx.Create(&newItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}

		default:
			tx.Rollback()
			return false, lookupErr
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := guestCarts.Delete(ctx, guestID); err != nil {
		return true, err
	}
	return true, nil
}
