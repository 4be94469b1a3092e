package handlers

import (
	"net/http"
	"testing"

	"laxmimall-server/database"
	"laxmimall-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartDoc() *database.Document {
	return &database.Document{
		CartItems: []models.CartItem{
			{ID: 1, Name: "Cotton Kurti", Price: 799, Quantity: 2, InStock: true},
			{ID: 2, Name: "Nehru Jacket", Price: 1599, Quantity: 1, InStock: true},
		},
		WishlistItems: []models.WishlistItem{
			{ID: 1, Name: "Wedding Sherwani", UnitPrice: 4999, Quantity: 1, InStock: true},
		},
	}
}

func TestAddCartItemAllocatesID(t *testing.T) {
	router := newTestRouter(cartDoc())

	rec := doRequest(t, router, http.MethodPost, "/api/cartItems", map[string]interface{}{
		"name":    "Silk Kurta",
		"price":   1199,
		"inStock": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, 3, item.ID)
	assert.Equal(t, 1, item.Quantity, "missing quantity defaults to 1")
}

func TestAddCartItemKeepsSuppliedID(t *testing.T) {
	router := newTestRouter(cartDoc())

	rec := doRequest(t, router, http.MethodPost, "/api/cartItems", map[string]interface{}{
		"id":       7,
		"name":     "Earrings",
		"quantity": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, 7, item.ID)
}

func TestDeleteMaxThenAddReusesID(t *testing.T) {
	router := newTestRouter(cartDoc())

	rec := doRequest(t, router, http.MethodDelete, "/api/cartItems/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/cartItems", map[string]interface{}{
		"name":     "Replacement",
		"quantity": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, 2, item.ID)
}

func TestUpdateCartItemQuantityFloor(t *testing.T) {
	router := newTestRouter(cartDoc())

	rec := doRequest(t, router, http.MethodPatch, "/api/cartItems/1", map[string]interface{}{
		"quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/api/cartItems/1", map[string]interface{}{
		"quantity": 5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, "Cotton Kurti", item.Name, "untouched fields survive a patch")
}

func TestCartItemNotFound(t *testing.T) {
	router := newTestRouter(cartDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/cartItems/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/api/cartItems/99", map[string]interface{}{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/cartItems/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistMoveToCartShape(t *testing.T) {
	// The move-to-cart flow deletes the wishlist entry and posts a cart
	// line with price instead of unitPrice.
	router := newTestRouter(cartDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/wishlistItems/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var wish models.WishlistItem
	decodeBody(t, rec, &wish)

	rec = doRequest(t, router, http.MethodPost, "/api/cartItems", map[string]interface{}{
		"name":     wish.Name,
		"image":    wish.Image,
		"color":    wish.Color,
		"size":     wish.Size,
		"price":    wish.UnitPrice,
		"quantity": wish.Quantity,
		"inStock":  wish.InStock,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/wishlistItems/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/wishlistItems", nil)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestWishlistPatchUnitPrice(t *testing.T) {
	router := newTestRouter(cartDoc())

	rec := doRequest(t, router, http.MethodPatch, "/api/wishlistItems/1", map[string]interface{}{
		"unitPrice": 4499,
		"quantity":  2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.WishlistItem
	decodeBody(t, rec, &item)
	assert.Equal(t, 4499.0, item.UnitPrice)
	assert.Equal(t, 2, item.Quantity)
}
