package handlers

import (
	"net/http"
	"testing"

	"laxmimall-server/database"
	"laxmimall-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bannerDoc() *database.Document {
	return &database.Document{
		HomeBanners: []models.Banner{
			{ID: 1, Title: "Home Hero"},
			{ID: 3, Title: "Shop Hero"},
		},
	}
}

func TestGetHomeBannerByPageName(t *testing.T) {
	router := newTestRouter(bannerDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/homeBanners/page/home", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var banner models.Banner
	decodeBody(t, rec, &banner)
	assert.Equal(t, 1, banner.ID)
	assert.Equal(t, "Home Hero", banner.Title)
}

func TestGetHomeBannerInvalidPageName(t *testing.T) {
	router := newTestRouter(bannerDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/homeBanners/page/unknown", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid page name", body["error"])
}

func TestGetHomeBannerRecordMissing(t *testing.T) {
	// "cart" maps to id 7, which is absent from the table. The failure is
	// distinct from an unmapped page name.
	router := newTestRouter(bannerDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/homeBanners/page/cart", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Banner not found", body["error"])
}

func TestGetTopRatingProducts(t *testing.T) {
	router := newTestRouter(&database.Document{
		TopRatingProducts: map[string][]models.RatedProduct{
			"kids": {{ID: 1, Title: "Kids Lehenga Set", Rating: 4.8}},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/topRatingProducts/kids", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.RatedProduct
	decodeBody(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Kids Lehenga Set", products[0].Title)
}

func TestGetTopRatingProductsUnknownCategory(t *testing.T) {
	router := newTestRouter(&database.Document{
		TopRatingProducts: map[string][]models.RatedProduct{},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/topRatingProducts/gadgets", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Category 'gadgets' not found", body["error"])
}

func TestGetAboutContentServesFirstRecord(t *testing.T) {
	router := newTestRouter(&database.Document{
		AboutContent: []models.AboutContent{
			{ID: 1, Title: "Our Story"},
			{ID: 2, Title: "Never Served"},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/aboutContent/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var content models.AboutContent
	decodeBody(t, rec, &content)
	assert.Equal(t, "Our Story", content.Title)
}

func TestGetAboutContentEmpty(t *testing.T) {
	router := newTestRouter(&database.Document{})

	rec := doRequest(t, router, http.MethodGet, "/api/aboutContent/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
