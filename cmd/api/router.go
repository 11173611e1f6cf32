package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fashionstore-backend/internal/shared/middleware"
	"fashionstore-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupOrderRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
		auth.GET("/verify-email", c.UserHandler.CheckVerificationToken)
		auth.POST("/verify-email", c.UserHandler.VerifyEmail)
		auth.PUT("/verify-email", c.UserHandler.ResendVerification)
		auth.POST("/resend-verification", c.UserHandler.ResendVerification)
		auth.POST("/forgot-password", c.UserHandler.ForgotPassword)
		auth.POST("/reset-password", c.UserHandler.ResetPassword)
	}
}

// ========================================
// USER ROUTES (authenticated)
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.RequireAuth(c.TokenCodec))
	{
		users.GET("/me", c.UserHandler.GetProfile)
		users.PUT("/me", c.UserHandler.UpdateProfile)
		users.PUT("/me/password", c.UserHandler.ChangePassword)
	}
}

// ========================================
// CATALOG ROUTES (public)
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.ListCategories)
		categories.GET("/tree", c.CategoryHandler.GetTree)
		categories.GET("/:slug", c.CategoryHandler.GetBySlug)
	}
}

func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.GET("", c.ProductHandler.ListProducts)
		products.GET("/featured", c.ProductHandler.GetFeatured)
		products.GET("/:slug", c.ProductHandler.GetBySlug)
	}
}

func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	{
		events.GET("", c.EventHandler.ListRunning)
		events.GET("/featured", c.EventHandler.ListFeatured)
		events.GET("/:slug", c.EventHandler.GetBySlug)
		events.GET("/:slug/products", c.EventHandler.GetEventProducts)
	}
}

// ========================================
// ORDER ROUTES (authenticated)
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	orders.Use(middleware.RequireAuth(c.TokenCodec))
	{
		orders.POST("", c.OrderHandler.Checkout)
		orders.GET("", c.OrderHandler.ListMyOrders)
		orders.GET("/:id", c.OrderHandler.GetOrder)
		orders.POST("/:id/cancel", c.OrderHandler.CancelOrder)
	}
}

// ========================================
// ADMIN ROUTES (authenticated + ADMIN role)
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAuth(c.TokenCodec), middleware.RequireAdmin())
	{
		admin.GET("/users", c.UserHandler.ListUsers)
		admin.PUT("/users/:id/role", c.UserHandler.UpdateUserRole)
		admin.PUT("/users/:id/blocked", c.UserHandler.SetUserBlocked)
		admin.DELETE("/users/:id", c.UserHandler.DeleteUser)

		admin.POST("/categories", c.CategoryHandler.CreateCategory)
		admin.PUT("/categories/:id", c.CategoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", c.CategoryHandler.DeleteCategory)

		admin.POST("/products", c.ProductHandler.CreateProduct)
		admin.PUT("/products/:id", c.ProductHandler.UpdateProduct)
		admin.DELETE("/products/:id", c.ProductHandler.DeleteProduct)

		admin.GET("/events", c.EventHandler.ListEvents)
		admin.POST("/events", c.EventHandler.CreateEvent)
		admin.PUT("/events/:id", c.EventHandler.UpdateEvent)
		admin.DELETE("/events/:id", c.EventHandler.DeleteEvent)

		admin.GET("/orders", c.OrderHandler.ListOrders)
		admin.PATCH("/orders/:id/status", c.OrderHandler.UpdateOrderStatus)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		overall := "ok"
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":      overall,
			"environment": c.Config.App.Environment,
			"version":     c.Config.App.Version,
			"database":    dbStatus,
			"cache":       cacheStatus,
			"time":        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
