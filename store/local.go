package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/p-sai-gowtham/stylepop-api/models"
)

var guestCartBucket = []byte("guest_carts")

// LocalStore keeps guest carts in an embedded bbolt file, one serialized
// cart per guest key. Mutations are read-modify-rewrite: the whole cart is
// loaded, transformed in memory, and written back. A missing cart is
// synthesized empty on first load.
type LocalStore struct {
	mu sync.Mutex
	db *bolt.DB
}

// OpenLocal opens (or creates) the guest cart file at path.
func OpenLocal(path string) (*LocalStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(guestCartBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

func (s *LocalStore) Load(ctx context.Context, guestID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(guestID)
}

func (s *LocalStore) AddItem(ctx context.Context, guestID string, product *models.Product, quantity int, size, color string) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(guestID)
	if err != nil {
		return nil, err
	}
	key := models.LineKey{ProductID: product.ID, Size: size, Color: color}
	if line := cart.FindLine(key); line != nil {
		line.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.NewCartItem(product, quantity, size, color))
	}
	if err := s.save(guestID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *LocalStore) UpdateQuantity(ctx context.Context, guestID, itemID string, quantity int) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(guestID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return cart, nil
	}
	idx := cart.FindItem(itemID)
	if idx < 0 {
		return cart, nil
	}
	cart.Items[idx].Quantity = quantity
	if err := s.save(guestID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *LocalStore) RemoveItem(ctx context.Context, guestID, itemID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(guestID)
	if err != nil {
		return nil, err
	}
	idx := cart.FindItem(itemID)
	if idx < 0 {
		return cart, nil
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	if err := s.save(guestID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *LocalStore) Clear(ctx context.Context, guestID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(guestID)
	if err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	if err := s.save(guestID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *LocalStore) Delete(ctx context.Context, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(guestCartBucket).Delete([]byte(guestID))
	})
}

func (s *LocalStore) load(guestID string) (*models.Cart, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(guestCartBucket).Get([]byte(guestID)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		cart := models.NewGuestCart()
		if err := s.save(guestID, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}
	var cart models.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	cart.Recalculate()
	return &cart, nil
}

func (s *LocalStore) save(guestID string, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	cart.Recalculate()
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(guestCartBucket).Put([]byte(guestID), raw)
	})
}
