package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

// RemoteStore persists signed-in carts in Postgres through GORM. Mutations
// commit first and then refetch the joined cart, so the returned aggregates
// are always derived from what the database actually holds.
type RemoteStore struct {
	db *gorm.DB
}

func NewRemote(db *gorm.DB) *RemoteStore {
	return &RemoteStore{db: db}
}

func (s *RemoteStore) Load(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{ID: uuid.NewString(), UserID: &userID, Items: []models.CartItem{}}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	cart.Recalculate()
	return &cart, nil
}

func (s *RemoteStore) AddItem(ctx context.Context, userID string, product *models.Product, quantity int, size, color string) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := models.NewCartItem(product, quantity, size, color)
	item.CartID = cart.ID

	// Upsert on the line key: an existing (cart, product, size, color) row
	// absorbs the new quantity instead of duplicating the line.
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "cart_id"}, {Name: "product_id"}, {Name: "size"}, {Name: "color"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"added_at": item.AddedAt,
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, userID)
}

func (s *RemoteStore) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.Cart, error) {
	cart, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return cart, nil
	}

	result := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return cart, nil
	}
	return s.Load(ctx, userID)
}

func (s *RemoteStore) RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, error) {
	cart, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return cart, nil
	}
	return s.Load(ctx, userID)
}

func (s *RemoteStore) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	return s.Load(ctx, userID)
}

func (s *RemoteStore) Delete(ctx context.Context, userID string) error {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&cart).Error
}
