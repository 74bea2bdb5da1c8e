// Package api wires the REST surface of the storefront: public catalog
// endpoints, the authenticated account/cart/order flows and the admin
// back-office, all on a shared gin engine.
package api

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tanvi/artisan-market/internal/auth"
	"github.com/tanvi/artisan-market/internal/mailer"
	"go.uber.org/zap"
)

type Server struct {
	db       *sql.DB
	sessions *auth.SessionStore
	mailer   *mailer.Mailer
	logger   *zap.Logger
}

func NewServer(db *sql.DB, sessions *auth.SessionStore, m *mailer.Mailer, logger *zap.Logger) *Server {
	return &Server{
		db:       db,
		sessions: sessions,
		mailer:   m,
		logger:   logger,
	}
}

func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		if err := s.db.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(200, gin.H{"status": "healthy", "service": "artisan-market"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", s.Register)
			authGroup.POST("/login", s.Login)
			authGroup.POST("/logout", s.RequireAuth, s.Logout)
			authGroup.GET("/me", s.RequireAuth, s.Me)
		}

		api.GET("/products", s.ListProducts)
		api.GET("/products/:id", s.GetProduct)
		api.GET("/products/:id/reviews", s.ListReviews)
		api.POST("/products/:id/reviews", s.RequireAuth, s.CreateReview)

		cart := api.Group("/cart", s.RequireAuth)
		{
			cart.GET("", s.GetCart)
			cart.POST("", s.AddToCart)
			cart.PUT("/:id", s.UpdateCartItem)
			cart.DELETE("/:id", s.RemoveCartItem)
		}

		orders := api.Group("/orders", s.RequireAuth)
		{
			orders.GET("", s.ListOrders)
			orders.POST("", s.CreateOrder)
			orders.GET("/:id", s.GetOrder)
			orders.PUT("/:id/cancel", s.CancelOrder)
		}

		addresses := api.Group("/addresses", s.RequireAuth)
		{
			addresses.GET("", s.ListAddresses)
			addresses.POST("", s.CreateAddress)
			addresses.PUT("/:id", s.UpdateAddress)
			addresses.DELETE("/:id", s.DeleteAddress)
		}

		api.GET("/artisans", s.ListArtisans)
		api.GET("/artisans/:id", s.GetArtisan)
		api.POST("/artisans", s.RequireAuth, s.RequireAdmin, s.CreateArtisan)
		api.PUT("/artisans/:id", s.RequireAuth, s.RequireAdmin, s.UpdateArtisan)
		api.DELETE("/artisans/:id", s.RequireAuth, s.RequireAdmin, s.DeleteArtisan)

		api.POST("/products", s.RequireAuth, s.RequireAdmin, s.CreateProduct)
		api.PUT("/products/:id", s.RequireAuth, s.RequireAdmin, s.UpdateProduct)
		api.DELETE("/products/:id", s.RequireAuth, s.RequireAdmin, s.DeleteProduct)

		api.POST("/support", s.CreateSupportMessage)

		admin := api.Group("/admin", s.RequireAuth, s.RequireAdmin)
		{
			admin.GET("/orders", s.AdminListOrders)
			admin.PUT("/orders/:id/status", s.AdminUpdateOrderStatus)
			admin.GET("/support", s.AdminListSupport)
			admin.PUT("/support/:id/status", s.AdminUpdateSupportStatus)
		}

		cfg := api.Group("/config")
		{
			cfg.GET("/countries", s.ConfigCountries)
			cfg.GET("/materials", s.ConfigMaterials)
			cfg.GET("/categories", s.ConfigCategories)
			cfg.GET("/currency-rates", s.ConfigCurrencyRates)
		}
	}

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
