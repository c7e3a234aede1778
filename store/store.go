package store

import (
	"context"
	"errors"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrProductNotFound = errors.New("product not found")
)

// CartStore is a single cart capability with the storage backend chosen at
// construction: guest carts live in the embedded local store, signed-in
// carts in Postgres. The owner key is a guest ID for the local strategy and
// a user ID for the remote one.
//
// Every mutation returns the full refreshed cart with Total and ItemCount
// recomputed, so callers never do their own arithmetic.
type CartStore interface {
	// Load returns the owner's cart, creating an empty one if none exists.
	Load(ctx context.Context, ownerID string) (*models.Cart, error)

	// AddItem merges quantity into the line matching (product, size, color)
	// or appends a new line. Quantity below 1 is rejected.
	AddItem(ctx context.Context, ownerID string, product *models.Product, quantity int, size, color string) (*models.Cart, error)

	// UpdateQuantity sets an item's quantity. A quantity below 1 or an
	// unknown item id is a no-op and returns the cart unchanged.
	UpdateQuantity(ctx context.Context, ownerID, itemID string, quantity int) (*models.Cart, error)

	// RemoveItem deletes a line item by id. An unknown id is a no-op.
	RemoveItem(ctx context.Context, ownerID, itemID string) (*models.Cart, error)

	// Clear removes every item, keeping the cart itself.
	Clear(ctx context.Context, ownerID string) (*models.Cart, error)

	// Delete drops the cart entirely.
	Delete(ctx context.Context, ownerID string) error
}
