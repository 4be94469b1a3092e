package models

// Product is a catalog row as rendered on the shop grid.
type Product struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Sizes    []string `json:"sizes"`
	Rating   float64  `json:"rating"`
	Image    string   `json:"image"`
	IsNew    bool     `json:"isNew"`
}

func (Product) TableName() string {
	return "products"
}

func (p Product) GetID() int { return p.ID }

// ProductDetail is the expanded record behind the product page. Its rating
// is derived: whenever Reviews is non-empty it equals the mean of the
// review ratings rounded to one decimal.
type ProductDetail struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	IsNew       bool     `json:"isNew"`
	Reviews     []Review `json:"reviews"`
}

func (ProductDetail) TableName() string {
	return "productDetails"
}

func (p ProductDetail) GetID() int { return p.ID }

// Review carries no date field; blog comments do. The asymmetry is
// intentional and mirrors the stored data.
type Review struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Avatar string `json:"avatar"`
}

func (r Review) GetID() int { return r.ID }
