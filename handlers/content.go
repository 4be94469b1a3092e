package handlers

import (
	"fmt"
	"net/http"

	"laxmimall-server/database"
	"laxmimall-server/models"

	"github.com/gin-gonic/gin"
)

// GetAboutContent serves the first about record; the table is stored as
// an array but only one record is ever used.
func GetAboutContent(c *gin.Context) {
	var content models.AboutContent
	var found bool
	Store.View(func(doc *database.Document) {
		if len(doc.AboutContent) > 0 {
			content, found = doc.AboutContent[0], true
		}
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "About content not found"})
		return
	}

	c.JSON(http.StatusOK, content)
}

// GetTopRatingProducts serves the precomputed per-category grouping. The
// grouping is its own table, not derived from the live products.
func GetTopRatingProducts(c *gin.Context) {
	category := c.Param("category")

	var products []models.RatedProduct
	var found bool
	Store.View(func(doc *database.Document) {
		products, found = doc.TopRatingProducts[category]
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Category '%s' not found", category)})
		return
	}

	c.JSON(http.StatusOK, products)
}

func GetDiscoverProducts(c *gin.Context) {
	items := []models.DiscoverProduct{}
	Store.View(func(doc *database.Document) {
		items = append(items, doc.DiscoverProducts...)
	})
	c.JSON(http.StatusOK, items)
}

func GetCategories(c *gin.Context) {
	items := []models.Category{}
	Store.View(func(doc *database.Document) {
		items = append(items, doc.Categories...)
	})
	c.JSON(http.StatusOK, items)
}

func GetTestimonials(c *gin.Context) {
	items := []models.Testimonial{}
	Store.View(func(doc *database.Document) {
		items = append(items, doc.Testimonials...)
	})
	c.JSON(http.StatusOK, items)
}

func GetTeam(c *gin.Context) {
	items := []models.TeamMember{}
	Store.View(func(doc *database.Document) {
		items = append(items, doc.Team...)
	})
	c.JSON(http.StatusOK, items)
}
