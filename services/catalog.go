// Package services holds the catalog query pipeline: pure functions over
// the product collection, free of store or transport concerns.
package services

import (
	"math"
	"sort"

	"laxmimall-server/models"
)

// PageSize is the fixed shop grid size.
const PageSize = 6

// Price bucket tokens accepted by the price dimension.
const (
	BucketUnder1000  = "under-1000"
	Bucket1000To2000 = "1000-2000"
	Bucket2000To3000 = "2000-3000"
	BucketAbove3000  = "above-3000"
)

// Sort keys.
const (
	SortPopularity = "popularity"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortNewest     = "newest"
)

// FilterState mirrors the shop sidebar: selections are OR'd within a
// dimension, dimensions are AND'd together, and an empty dimension
// imposes no constraint.
type FilterState struct {
	Price    []string `form:"price"`
	Category []string `form:"category"`
	Size     []string `form:"size"`
	Sort     string   `form:"sort"`
}

// CatalogPage is one page of a filtered catalog plus its metadata.
type CatalogPage struct {
	Items      []models.Product `json:"items"`
	Page       int              `json:"page"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// matchesBucket reports whether a price falls in a named bucket. The
// 1000-2000 and 2000-3000 buckets are both closed on 2000, so that exact
// price matches either selection; an unrecognized token matches
// everything.
func matchesBucket(token string, price float64) bool {
	switch token {
	case BucketUnder1000:
		return price < 1000
	case Bucket1000To2000:
		return price >= 1000 && price <= 2000
	case Bucket2000To3000:
		return price >= 2000 && price <= 3000
	case BucketAbove3000:
		return price > 3000
	default:
		return true
	}
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// Filter applies the filter-set and sort to the collection and returns a
// fresh slice; the input is never mutated.
func Filter(products []models.Product, f FilterState) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if len(f.Price) > 0 {
			ok := false
			for _, token := range f.Price {
				if matchesBucket(token, p.Price) {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		if len(f.Category) > 0 && !contains(f.Category, p.Category) {
			continue
		}

		if len(f.Size) > 0 {
			ok := false
			for _, s := range p.Sizes {
				if contains(f.Size, s) {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		filtered = append(filtered, p)
	}

	// Ties retain their relative order from the filter step; newest has no
	// secondary key on purpose.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch f.Sort {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortNewest:
			return a.IsNew && !b.IsNew
		default: // popularity
			return a.Rating > b.Rating
		}
	})

	return filtered
}

// TotalPages returns ceil(n / PageSize).
func TotalPages(n int) int {
	return int(math.Ceil(float64(n) / float64(PageSize)))
}

// Paginate slices out the 1-based page. A page past the end yields an
// empty slice, not an error.
func Paginate(items []models.Product, page int) []models.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []models.Product{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Query filters, sorts and paginates in one step. It is a pure function
// of its inputs: identical calls yield identical pages.
func Query(products []models.Product, f FilterState, page int) CatalogPage {
	filtered := Filter(products, f)
	return CatalogPage{
		Items:      Paginate(filtered, page),
		Page:       page,
		TotalItems: len(filtered),
		TotalPages: TotalPages(len(filtered)),
	}
}
