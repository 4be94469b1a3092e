package models

// CartItem is a line in the cart. Quantity never drops below 1; handlers
// clamp decrements at the floor instead of deleting the line.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Color    string  `json:"color"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	InStock  bool    `json:"inStock"`
}

func (CartItem) TableName() string {
	return "cartItems"
}

func (i CartItem) GetID() int { return i.ID }
