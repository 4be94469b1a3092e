package handlers

import (
	"net/http"
	"strconv"

	"laxmimall-server/database"
	"laxmimall-server/models"
	"laxmimall-server/services"

	"github.com/gin-gonic/gin"
)

// GetProducts serves the catalog. Without query parameters it returns the
// whole collection; with filter/sort parameters it runs the query pipeline
// and returns the matching products. Passing page= additionally paginates
// and wraps the slice in page metadata.
func GetProducts(c *gin.Context) {
	var filters services.FilterState
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	var products []models.Product
	Store.View(func(doc *database.Document) {
		products = append(products, doc.Products...)
	})

	if c.Query("page") != "" {
		page, err := strconv.Atoi(c.Query("page"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		c.JSON(http.StatusOK, services.Query(products, filters, page))
		return
	}

	c.JSON(http.StatusOK, services.Filter(products, filters))
}

// GetProductDetails serves the expanded record behind the product page.
func GetProductDetails(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var detail models.ProductDetail
	var found bool
	Store.View(func(doc *database.Document) {
		detail, found = database.FindByID(doc.ProductDetails, id)
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
