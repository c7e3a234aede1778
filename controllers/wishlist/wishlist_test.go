package wishlistControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-sai-gowtham/stylepop-api/models"
	"github.com/p-sai-gowtham/stylepop-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memWishlist keeps memberships in a map, same contract as the GORM-backed
// store: Toggle validates the product and hands back the refreshed list.
type memWishlist struct {
	products map[uint]models.Product
	items    map[string][]models.WishlistItem
	nextID   int
}

func newMemWishlist(products ...models.Product) *memWishlist {
	m := &memWishlist{
		products: map[uint]models.Product{},
		items:    map[string][]models.WishlistItem{},
	}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memWishlist) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return append([]models.WishlistItem{}, m.items[userID]...), nil
}

func (m *memWishlist) Toggle(ctx context.Context, userID string, productID uint) ([]models.WishlistItem, error) {
	product, ok := m.products[productID]
	if !ok {
		return nil, store.ErrProductNotFound
	}

	list := m.items[userID]
	for i, item := range list {
		if item.ProductID == productID {
			m.items[userID] = append(list[:i], list[i+1:]...)
			return m.List(ctx, userID)
		}
	}

	m.nextID++
	m.items[userID] = append(list, models.WishlistItem{
		ID:        fmt.Sprintf("w%d", m.nextID),
		UserID:    userID,
		ProductID: productID,
		Product:   product,
	})
	return m.List(ctx, userID)
}

func newWishlistRouter(wishlist store.WishlistStore) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u1") })
	r.GET("/user/wishlist", GetWishlist(wishlist))
	r.POST("/user/wishlist/toggle", ToggleWishlist(wishlist))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type toggleResponse struct {
	InWishlist bool                  `json:"in_wishlist"`
	Items      []models.WishlistItem `json:"items"`
	Count      int                   `json:"count"`
}

func toggle(t *testing.T, r *gin.Engine, productID uint) toggleResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/user/wishlist/toggle", fmt.Sprintf(`{"product_id": %d}`, productID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp toggleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	wishlist := newMemWishlist(
		models.Product{ID: 1, Slug: "basic-tee", Name: "Basic Tee"},
		models.Product{ID: 2, Slug: "linen-shirt", Name: "Linen Shirt"},
	)
	r := newWishlistRouter(wishlist)

	// Product 2 is already saved; it must survive the toggle pair untouched.
	first := toggle(t, r, 2)
	require.True(t, first.InWishlist)
	require.Equal(t, 1, first.Count)

	added := toggle(t, r, 1)
	assert.True(t, added.InWishlist)
	assert.Equal(t, 2, added.Count)

	removed := toggle(t, r, 1)
	assert.False(t, removed.InWishlist)
	assert.Equal(t, 1, removed.Count)
	require.Len(t, removed.Items, 1)
	assert.Equal(t, uint(2), removed.Items[0].ProductID)
}

func TestToggleUnknownProduct(t *testing.T) {
	r := newWishlistRouter(newMemWishlist())

	w := doJSON(r, http.MethodPost, "/user/wishlist/toggle", `{"product_id": 99}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestToggleRejectsInvalidInput(t *testing.T) {
	r := newWishlistRouter(newMemWishlist())

	w := doJSON(r, http.MethodPost, "/user/wishlist/toggle", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWishlist(t *testing.T) {
	wishlist := newMemWishlist(models.Product{ID: 1, Slug: "basic-tee", Name: "Basic Tee"})
	r := newWishlistRouter(wishlist)
	toggle(t, r, 1)

	w := doJSON(r, http.MethodGet, "/user/wishlist", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp toggleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "basic-tee", resp.Items[0].Product.Slug)
}

func TestWishlistRequiresUser(t *testing.T) {
	wishlist := newMemWishlist()
	r := gin.New()
	r.GET("/user/wishlist", GetWishlist(wishlist))

	w := doJSON(r, http.MethodGet, "/user/wishlist", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
