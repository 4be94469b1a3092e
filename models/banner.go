package models

// Banner is a hero banner record. Banners are keyed by a fixed integer id;
// the page-name mapping lives in the handlers layer.
type Banner struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	Image      string `json:"image"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonLink string `json:"buttonLink,omitempty"`
}

func (Banner) TableName() string {
	return "homeBanners"
}

func (b Banner) GetID() int { return b.ID }
