package models

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    *string    `gorm:"uniqueIndex;size:36" json:"user_id"` // one cart per user; nil for guest carts
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64    `gorm:"-" json:"total"`
	ItemCount int        `gorm:"-" json:"item_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem carries a denormalized copy of the product's display fields so a
// cart renders without a second lookup. A cart holds at most one item per
// (product, size, color); the composite unique index enforces it for
// server-side carts.
type CartItem struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CartID       string    `gorm:"size:36;index;uniqueIndex:idx_cart_line,priority:1" json:"-"`
	ProductID    uint      `gorm:"uniqueIndex:idx_cart_line,priority:2" json:"product_id"`
	Size         string    `gorm:"uniqueIndex:idx_cart_line,priority:3" json:"size"`
	Color        string    `gorm:"uniqueIndex:idx_cart_line,priority:4" json:"color"`
	ProductName  string    `json:"product_name"`
	ProductSlug  string    `json:"product_slug"`
	ProductImage string    `json:"product_image"`
	ProductPrice float64   `json:"product_price"`
	ProductStock int       `json:"product_stock"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// LineKey identifies a cart line for merge purposes.
type LineKey struct {
	ProductID uint
	Size      string
	Color     string
}

func (i CartItem) LineKey() LineKey {
	return LineKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// NewCartItem snapshots the product's display fields onto a fresh line item.
func NewCartItem(p *Product, quantity int, size, color string) CartItem {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return CartItem{
		ID:           uuid.NewString(),
		ProductID:    p.ID,
		Size:         size,
		Color:        color,
		ProductName:  p.Name,
		ProductSlug:  p.Slug,
		ProductImage: image,
		ProductPrice: p.Price,
		ProductStock: p.Inventory,
		Quantity:     quantity,
		AddedAt:      time.Now().UTC(),
	}
}

// NewGuestCart synthesizes an empty cart with a locally generated identifier.
func NewGuestCart() *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        uuid.NewString(),
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Recalculate rewrites the derived aggregates from the current line items.
// Both storage strategies call this after every mutation so Total and
// ItemCount can never drift from the items themselves.
func (c *Cart) Recalculate() {
	var total float64
	var count int
	for _, item := range c.Items {
		total += item.ProductPrice * float64(item.Quantity)
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}

// FindLine returns the item matching the (product, size, color) key, or nil.
func (c *Cart) FindLine(key LineKey) *CartItem {
	for i := range c.Items {
		if c.Items[i].LineKey() == key {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItem returns the index of the item with the given id, or -1.
func (c *Cart) FindItem(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}
