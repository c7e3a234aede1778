package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

func openTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := OpenLocal(filepath.Join(t.TempDir(), "guest-carts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func tee(id uint, price float64) *models.Product {
	return &models.Product{
		ID:     id,
		Slug:   "basic-tee",
		Name:   "Basic Tee",
		Price:  price,
		Images: []string{"https://cdn.example.com/tee.jpg"},
	}
}

func TestLoadSynthesizesEmptyCart(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cart, err := s.Load(ctx, "guest_abc")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.NotEmpty(t, cart.ID)
	assert.Nil(t, cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)

	// Same guest gets the same cart back, not a new one.
	again, err := s.Load(ctx, "guest_abc")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	// A different guest gets a different cart.
	other, err := s.Load(ctx, "guest_xyz")
	require.NoError(t, err)
	assert.NotEqual(t, cart.ID, other.ID)
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := tee(1, 20.00)

	_, err := s.AddItem(ctx, "g1", p, 1, "M", "Black")
	require.NoError(t, err)

	cart, err := s.AddItem(ctx, "g1", p, 2, "M", "Black")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 60.00, cart.Total, 1e-9)
	assert.Equal(t, 3, cart.ItemCount)
}

func TestAddItemKeepsDistinctLinesApart(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := tee(1, 20.00)

	_, err := s.AddItem(ctx, "g1", p, 1, "M", "Black")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "g1", p, 1, "L", "Black")
	require.NoError(t, err)
	cart, err := s.AddItem(ctx, "g1", p, 1, "M", "White")
	require.NoError(t, err)

	assert.Len(t, cart.Items, 3)
	assert.Equal(t, 3, cart.ItemCount)
	assert.InDelta(t, 60.00, cart.Total, 1e-9)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "g1", tee(1, 20), 0, "M", "Black")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = s.AddItem(ctx, "g1", tee(1, 20), -3, "M", "Black")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateQuantity(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cart, err := s.AddItem(ctx, "g1", tee(1, 20), 2, "M", "Black")
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = s.UpdateQuantity(ctx, "g1", itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.InDelta(t, 100.00, cart.Total, 1e-9)
	assert.Equal(t, 5, cart.ItemCount)
}

func TestUpdateQuantityBelowOneIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cart, err := s.AddItem(ctx, "g1", tee(1, 20), 2, "M", "Black")
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	for _, q := range []int{0, -1} {
		cart, err = s.UpdateQuantity(ctx, "g1", itemID, q)
		require.NoError(t, err)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 2, cart.ItemCount)
		assert.InDelta(t, 40.00, cart.Total, 1e-9)
	}
}

func TestUpdateQuantityUnknownItemIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before, err := s.AddItem(ctx, "g1", tee(1, 20), 2, "M", "Black")
	require.NoError(t, err)

	after, err := s.UpdateQuantity(ctx, "g1", "missing-id", 9)
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
}

func TestRemoveItem(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cart, err := s.AddItem(ctx, "g1", tee(1, 20), 1, "M", "Black")
	require.NoError(t, err)
	cart, err = s.AddItem(ctx, "g1", tee(2, 35), 1, "L", "White")
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	line := cart.FindLine(models.LineKey{ProductID: 1, Size: "M", Color: "Black"})
	require.NotNil(t, line)

	cart, err = s.RemoveItem(ctx, "g1", line.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)
	assert.InDelta(t, 35.00, cart.Total, 1e-9)
	assert.Equal(t, 1, cart.ItemCount)
}

func TestRemoveUnknownItemIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before, err := s.AddItem(ctx, "g1", tee(1, 20), 2, "M", "Black")
	require.NoError(t, err)

	after, err := s.RemoveItem(ctx, "g1", "missing-id")
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, before.Total, after.Total)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "g1", tee(1, 20), 2, "M", "Black")
	require.NoError(t, err)

	cart, err := s.Clear(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.AddItem(ctx, "g1", tee(1, 20), 2, "M", "Black")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "g1"))

	// The next load starts over with a fresh cart.
	fresh, err := s.Load(ctx, "g1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, fresh.ID)
	assert.Empty(t, fresh.Items)
}

func TestCartSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guest-carts.db")
	ctx := context.Background()

	s, err := OpenLocal(path)
	require.NoError(t, err)
	saved, err := s.AddItem(ctx, "g1", tee(1, 19.99), 2, "M", "Black")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenLocal(path)
	require.NoError(t, err)
	defer s.Close()

	loaded, err := s.Load(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, loaded.ID)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.InDelta(t, 39.98, loaded.Total, 1e-9)
	assert.Equal(t, 2, loaded.ItemCount)
}
