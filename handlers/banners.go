package handlers

import (
	"net/http"

	"laxmimall-server/database"
	"laxmimall-server/models"

	"github.com/gin-gonic/gin"
)

// pageBannerIDs translates symbolic page names to fixed banner ids. An
// unmapped name and a mapped-but-missing record are distinct failures: the
// first is the caller's mistake (400), the second missing data (404).
var pageBannerIDs = map[string]int{
	"home":     1,
	"about":    2,
	"shop":     3,
	"blog":     4,
	"contact":  5,
	"account":  6,
	"cart":     7,
	"wishlist": 8,
	"product":  9,
}

// GetHomeBanner resolves the hero banner for a page name.
func GetHomeBanner(c *gin.Context) {
	pageName := c.Param("pageName")

	bannerID, ok := pageBannerIDs[pageName]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page name"})
		return
	}

	var banner models.Banner
	var found bool
	Store.View(func(doc *database.Document) {
		banner, found = database.FindByID(doc.HomeBanners, bannerID)
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	c.JSON(http.StatusOK, banner)
}
