package services

import (
	"math"

	"laxmimall-server/models"
)

// AverageRating computes the display rating for a product: the arithmetic
// mean of its review ratings rounded to one decimal. An empty review list
// yields 0; callers keep the seeded rating in that case.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
