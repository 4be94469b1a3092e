package handlers

import (
	"net/http"
	"strconv"

	"laxmimall-server/database"
	"laxmimall-server/models"
	"laxmimall-server/services"

	"github.com/gin-gonic/gin"
)

type addReviewRequest struct {
	ProductID int    `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
	Avatar    string `json:"avatar"`
}

// AddProductReview appends a review to a product and recomputes the
// product's display rating from the full review list. Reviews carry no
// date field.
func AddProductReview(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data"})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	var created models.Review
	err := Store.Update(func(doc *database.Document) error {
		i := database.IndexByID(doc.ProductDetails, req.ProductID)
		if i < 0 {
			return database.ErrNotFound
		}

		product := &doc.ProductDetails[i]
		created = models.Review{
			ID:     database.NextID(product.Reviews),
			Name:   req.Name,
			Rating: req.Rating,
			Text:   req.Comment,
			Avatar: req.Avatar,
		}
		product.Reviews = append(product.Reviews, created)
		product.Rating = services.AverageRating(product.Reviews)
		return nil
	})

	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetProductReviews lists a product's reviews.
func GetProductReviews(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	var reviews []models.Review
	var found bool
	Store.View(func(doc *database.Document) {
		var product models.ProductDetail
		product, found = database.FindByID(doc.ProductDetails, productID)
		if found {
			reviews = append(reviews, product.Reviews...)
		}
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}
