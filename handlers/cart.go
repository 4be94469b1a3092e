package handlers

import (
	"net/http"

	"laxmimall-server/database"
	"laxmimall-server/models"

	"github.com/gin-gonic/gin"
)

// GetCartItems lists the cart.
func GetCartItems(c *gin.Context) {
	items := []models.CartItem{}
	Store.View(func(doc *database.Document) {
		items = append(items, doc.CartItems...)
	})
	c.JSON(http.StatusOK, items)
}

// GetCartItem fetches one cart line.
func GetCartItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var item models.CartItem
	var found bool
	Store.View(func(doc *database.Document) {
		item, found = database.FindByID(doc.CartItems, id)
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// AddCartItem inserts a cart line. An id is allocated when the caller
// does not supply one; a missing quantity defaults to 1.
func AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item"})
		return
	}

	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		return
	}

	err := Store.Update(func(doc *database.Document) error {
		if item.ID == 0 {
			item.ID = database.NextID(doc.CartItems)
		}
		doc.CartItems = append(doc.CartItems, item)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

type cartItemPatch struct {
	Name     *string  `json:"name"`
	Image    *string  `json:"image"`
	Color    *string  `json:"color"`
	Size     *string  `json:"size"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	InStock  *bool    `json:"inStock"`
}

// UpdateCartItem applies a partial update. The quantity floor of 1 is
// enforced here rather than clamped silently.
func UpdateCartItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch cartItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item"})
		return
	}

	if patch.Quantity != nil && *patch.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		return
	}

	var updated models.CartItem
	err := Store.Update(func(doc *database.Document) error {
		i := database.IndexByID(doc.CartItems, id)
		if i < 0 {
			return database.ErrNotFound
		}

		item := &doc.CartItems[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Image != nil {
			item.Image = *patch.Image
		}
		if patch.Color != nil {
			item.Color = *patch.Color
		}
		if patch.Size != nil {
			item.Size = *patch.Size
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.InStock != nil {
			item.InStock = *patch.InStock
		}
		updated = *item
		return nil
	})

	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCartItem removes a cart line and returns it.
func DeleteCartItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var removed models.CartItem
	err := Store.Update(func(doc *database.Document) error {
		items, item, ok := database.RemoveByID(doc.CartItems, id)
		if !ok {
			return database.ErrNotFound
		}
		doc.CartItems = items
		removed = item
		return nil
	})

	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
		return
	}

	c.JSON(http.StatusOK, removed)
}
