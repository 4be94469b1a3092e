package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"laxmimall-server/config"
	"laxmimall-server/database"
	"laxmimall-server/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLoggerDev()
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

// newTestRouter wires the handlers to an in-memory store and registers
// the same routes main.go does.
func newTestRouter(doc *database.Document) *gin.Engine {
	InitializeHandlers(database.NewMemStore(doc))

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/homeBanners/page/:pageName", GetHomeBanner)
		api.GET("/aboutContent/1", GetAboutContent)
		api.GET("/discoverProducts", GetDiscoverProducts)
		api.GET("/categories", GetCategories)
		api.GET("/testimonials", GetTestimonials)
		api.GET("/team", GetTeam)
		api.GET("/topRatingProducts/:category", GetTopRatingProducts)

		api.GET("/blogHome", GetBlogHome)
		api.GET("/blogPages", GetBlogPages)
		api.GET("/blogPages/:page", GetBlogPage)
		api.GET("/innerBlog/:id", GetInnerBlog)
		api.POST("/innerBlog/:id/comments", AddBlogComment)

		api.GET("/products", GetProducts)
		api.GET("/productDetails/:id", GetProductDetails)

		api.GET("/productReviews", GetProductReviews)
		api.POST("/productReviews", AddProductReview)

		api.GET("/cartItems", GetCartItems)
		api.POST("/cartItems", AddCartItem)
		api.GET("/cartItems/:id", GetCartItem)
		api.PATCH("/cartItems/:id", UpdateCartItem)
		api.DELETE("/cartItems/:id", DeleteCartItem)

		api.GET("/wishlistItems", GetWishlistItems)
		api.POST("/wishlistItems", AddWishlistItem)
		api.GET("/wishlistItems/:id", GetWishlistItem)
		api.PATCH("/wishlistItems/:id", UpdateWishlistItem)
		api.DELETE("/wishlistItems/:id", DeleteWishlistItem)

		api.GET("/users", GetUsers)
		api.POST("/users", RegisterUser)
		api.POST("/users/login", LoginUser)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
