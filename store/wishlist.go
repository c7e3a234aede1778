package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

// WishlistStore is a user's saved-products set. Toggle owns the full flip:
// it validates the product, inserts or deletes the membership row, and
// returns the refreshed list so callers never re-query.
type WishlistStore interface {
	// List returns the user's wishlist, newest first, products joined.
	List(ctx context.Context, userID string) ([]models.WishlistItem, error)

	// Toggle flips the product's membership and returns the refreshed list.
	// An unknown product yields ErrProductNotFound.
	Toggle(ctx context.Context, userID string, productID uint) ([]models.WishlistItem, error)
}

// RemoteWishlist keeps wishlist rows in Postgres through GORM.
type RemoteWishlist struct {
	db *gorm.DB
}

func NewRemoteWishlist(db *gorm.DB) *RemoteWishlist {
	return &RemoteWishlist{db: db}
}

func (s *RemoteWishlist) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	items := []models.WishlistItem{}
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *RemoteWishlist) Toggle(ctx context.Context, userID string, productID uint) ([]models.WishlistItem, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var existing models.WishlistItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return nil, err
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		item := models.WishlistItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: productID,
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	return s.List(ctx, userID)
}
