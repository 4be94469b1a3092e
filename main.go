package main

import (
	"net/http"

	"laxmimall-server/config"
	"laxmimall-server/database"
	"laxmimall-server/handlers"
	"laxmimall-server/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		panic(err)
	}

	if config.AppConfig.Environment == "production" {
		logger.InitLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.InitLoggerDev()
	}
	defer logger.Sync()

	// Open the data file
	store, err := database.Open(config.AppConfig.DataFile)
	if err != nil {
		logger.Log.Fatalw("failed to open data file", "path", config.AppConfig.DataFile, "error", err)
	}
	defer store.Close()

	// Create Gin router
	router := gin.Default()

	// Stamp every response with a request id for log correlation
	router.Use(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Laxmi Mall Server is running",
		})
	})

	// Initialize handlers
	handlers.InitializeHandlers(store)

	// API routes
	api := router.Group("/api")
	{
		// Banner lookup by page name
		api.GET("/homeBanners/page/:pageName", handlers.GetHomeBanner)

		// Home page content
		api.GET("/aboutContent/1", handlers.GetAboutContent)
		api.GET("/discoverProducts", handlers.GetDiscoverProducts)
		api.GET("/categories", handlers.GetCategories)
		api.GET("/testimonials", handlers.GetTestimonials)
		api.GET("/team", handlers.GetTeam)
		api.GET("/topRatingProducts/:category", handlers.GetTopRatingProducts)

		// Blog
		api.GET("/blogHome", handlers.GetBlogHome)
		api.GET("/blogPages", handlers.GetBlogPages)
		api.GET("/blogPages/:page", handlers.GetBlogPage)
		api.GET("/innerBlog/:id", handlers.GetInnerBlog)
		api.POST("/innerBlog/:id/comments", handlers.AddBlogComment)

		// Catalog
		api.GET("/products", handlers.GetProducts)
		api.GET("/productDetails/:id", handlers.GetProductDetails)

		// Reviews
		api.GET("/productReviews", handlers.GetProductReviews)
		api.POST("/productReviews", handlers.AddProductReview)

		// Cart
		api.GET("/cartItems", handlers.GetCartItems)
		api.POST("/cartItems", handlers.AddCartItem)
		api.GET("/cartItems/:id", handlers.GetCartItem)
		api.PATCH("/cartItems/:id", handlers.UpdateCartItem)
		api.DELETE("/cartItems/:id", handlers.DeleteCartItem)

		// Wishlist
		api.GET("/wishlistItems", handlers.GetWishlistItems)
		api.POST("/wishlistItems", handlers.AddWishlistItem)
		api.GET("/wishlistItems/:id", handlers.GetWishlistItem)
		api.PATCH("/wishlistItems/:id", handlers.UpdateWishlistItem)
		api.DELETE("/wishlistItems/:id", handlers.DeleteWishlistItem)

		// Accounts
		api.GET("/users", handlers.GetUsers)
		api.POST("/users", handlers.RegisterUser)
		api.POST("/users/login", handlers.LoginUser)
	}

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Start server
	logger.Log.Infow("starting server",
		"port", config.AppConfig.ServerPort,
		"baseURL", config.AppConfig.BaseURL,
	)
	if err := http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, c.Handler(router)); err != nil {
		logger.Log.Fatalw("server stopped", "error", err)
	}
}
