package models

// WishlistItem represents a product saved for later. Unlike CartItem it
// stores the price under unitPrice; the move-to-cart flow translates the
// field when it creates the cart line.
type WishlistItem struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	InStock   bool    `json:"inStock"`
}

func (WishlistItem) TableName() string {
	return "wishlistItems"
}

func (i WishlistItem) GetID() int { return i.ID }
