package models

import "time"

// WishlistItem is plain set membership: a product is either on a user's
// wishlist or it isn't. No quantity, no duplicates.
type WishlistItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_wishlist_member,priority:1" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_member,priority:2" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistContains reports membership with a linear scan; callers keep the
// fetched list around so this never touches the database.
func WishlistContains(items []WishlistItem, productID uint) bool {
	for _, item := range items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
