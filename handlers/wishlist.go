package handlers

import (
	"net/http"

	"laxmimall-server/database"
	"laxmimall-server/models"

	"github.com/gin-gonic/gin"
)

// GetWishlistItems lists the wishlist.
func GetWishlistItems(c *gin.Context) {
	items := []models.WishlistItem{}
	Store.View(func(doc *database.Document) {
		items = append(items, doc.WishlistItems...)
	})
	c.JSON(http.StatusOK, items)
}

// GetWishlistItem fetches one wishlist entry.
func GetWishlistItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var item models.WishlistItem
	var found bool
	Store.View(func(doc *database.Document) {
		item, found = database.FindByID(doc.WishlistItems, id)
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// AddWishlistItem inserts a wishlist entry, allocating an id when the
// caller does not supply one.
func AddWishlistItem(c *gin.Context) {
	var item models.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist item"})
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
			item.ID = database.NextID(doc.WishlistItems)
		}
		doc.WishlistItems = append(doc.WishlistItems, item)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save wishlist item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

type wishlistItemPatch struct {
	Name      *string  `json:"name"`
	Image     *string  `json:"image"`
	Color     *string  `json:"color"`
	Size      *string  `json:"size"`
	UnitPrice *float64 `json:"unitPrice"`
	Quantity  *int     `json:"quantity"`
	InStock   *bool    `json:"inStock"`
}

// UpdateWishlistItem applies a partial update with the same quantity floor
// as the cart.
func UpdateWishlistItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch wishlistItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist item"})
		return
	}

	if patch.Quantity != nil && *patch.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		return
	}

	var updated models.WishlistItem
	err := Store.Update(func(doc *database.Document) error {
		i := database.IndexByID(doc.WishlistItems, id)
		if i < 0 {
			return database.ErrNotFound
		}

		item := &doc.WishlistItems[i]
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
		if patch.UnitPrice != nil {
			item.UnitPrice = *patch.UnitPrice
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist item"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteWishlistItem removes a wishlist entry and returns it.
func DeleteWishlistItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var removed models.WishlistItem
	err := Store.Update(func(doc *database.Document) error {
		items, item, ok := database.RemoveByID(doc.WishlistItems, id)
		if !ok {
			return database.ErrNotFound
		}
		doc.WishlistItems = items
		removed = item
		return nil
	})

	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wishlist item"})
		return
	}

	c.JSON(http.StatusOK, removed)
}
