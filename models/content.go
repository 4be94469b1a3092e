package models

// AboutContent backs the about page. Stored as an array; only the first
// record is ever served.
type AboutContent struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Story   string `json:"story"`
	Mission string `json:"mission"`
	Image   string `json:"image,omitempty"`
}

func (AboutContent) TableName() string {
	return "aboutContent"
}

// DiscoverProduct is a styled tile on the home discover strip.
type DiscoverProduct struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Badge      string `json:"badge"`
	BgColor    string `json:"bgColor"`
	ImageClass string `json:"imageClass"`
}

func (DiscoverProduct) TableName() string {
	return "discoverProducts"
}

// Category is a shop-by-category tile.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

type Testimonial struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Avatar string `json:"avatar"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type TeamMember struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

func (TeamMember) TableName() string {
	return "team"
}

// RatedProduct is an entry in the precomputed top-rating grouping. The
// grouping is its own table keyed by category name, not derived from the
// live product tables, so price stays the display string it is stored as.
type RatedProduct struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Price      string  `json:"price"`
	Rating     float64 `json:"rating"`
	ImageClass string  `json:"imageClass"`
}
