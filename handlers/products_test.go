package handlers

import (
	"net/http"
	"testing"

	"laxmimall-server/database"
	"laxmimall-server/models"
	"laxmimall-server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogDoc() *database.Document {
	return &database.Document{
		Products: []models.Product{
			{ID: 1, Title: "Saree", Price: 3499, Category: "Female", Sizes: []string{"Free"}, Rating: 4.9},
			{ID: 2, Title: "Kurti", Price: 799, Category: "Female", Sizes: []string{"M"}, Rating: 4.4},
			{ID: 3, Title: "Sherwani", Price: 4999, Category: "Male", Sizes: []string{"L"}, Rating: 4.8},
			{ID: 4, Title: "Necklace", Price: 2000, Category: "Jewellery", Sizes: []string{"Free"}, Rating: 4.6},
		},
	}
}

func TestGetProductsNoFilters(t *testing.T) {
	router := newTestRouter(catalogDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeBody(t, rec, &products)
	require.Len(t, products, 4)
	// Default sort is rating descending.
	assert.Equal(t, "Saree", products[0].Title)
}

func TestGetProductsFiltered(t *testing.T) {
	router := newTestRouter(catalogDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/products?category=Female&sort=price-low", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeBody(t, rec, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "Kurti", products[0].Title)
	assert.Equal(t, "Saree", products[1].Title)
}

func TestGetProductsBoundaryPrice(t *testing.T) {
	router := newTestRouter(catalogDoc())

	for _, bucket := range []string{"1000-2000", "2000-3000"} {
		rec := doRequest(t, router, http.MethodGet, "/api/products?price="+bucket, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []models.Product
		decodeBody(t, rec, &products)
		require.Len(t, products, 1, "bucket %s", bucket)
		assert.Equal(t, "Necklace", products[0].Title)
	}
}

func TestGetProductsPaged(t *testing.T) {
	router := newTestRouter(catalogDoc())

	rec := doRequest(t, router, http.MethodGet, "/api/products?page=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page services.CatalogPage
	decodeBody(t, rec, &page)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 4, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 4)

	rec = doRequest(t, router, http.MethodGet, "/api/products?page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &page)
	assert.Empty(t, page.Items)

	rec = doRequest(t, router, http.MethodGet, "/api/products?page=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
