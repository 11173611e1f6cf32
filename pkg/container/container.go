package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"fashionstore-backend/internal/config"
	infraCache "fashionstore-backend/internal/infrastructure/cache"
	"fashionstore-backend/internal/infrastructure/database"
	"fashionstore-backend/internal/infrastructure/email"
	"fashionstore-backend/pkg/cache"
	"fashionstore-backend/pkg/token"

	"fashionstore-backend/internal/domains/category"
	categoryHandler "fashionstore-backend/internal/domains/category/handler"
	categoryRepo "fashionstore-backend/internal/domains/category/repository"
	categoryService "fashionstore-backend/internal/domains/category/service"

	"fashionstore-backend/internal/domains/event"
	eventHandler "fashionstore-backend/internal/domains/event/handler"
	eventRepo "fashionstore-backend/internal/domains/event/repository"
	eventService "fashionstore-backend/internal/domains/event/service"

	"fashionstore-backend/internal/domains/order"
	orderHandler "fashionstore-backend/internal/domains/order/handler"
	orderRepo "fashionstore-backend/internal/domains/order/repository"
	orderService "fashionstore-backend/internal/domains/order/service"

	"fashionstore-backend/internal/domains/product"
	productHandler "fashionstore-backend/internal/domains/product/handler"
	productRepo "fashionstore-backend/internal/domains/product/repository"
	productService "fashionstore-backend/internal/domains/product/service"

	"fashionstore-backend/internal/domains/user"
	userHandler "fashionstore-backend/internal/domains/user/handler"
	userRepo "fashionstore-backend/internal/domains/user/repository"
	userService "fashionstore-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependency graph của application.
// Thứ tự initialization: Config → Infrastructure → Repositories →
// Services → Handlers. Mọi component là singleton trong app lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	TokenCodec *token.Codec
	Mailer     *email.Dispatcher

	// Repositories
	UserRepo      user.Repository
	UserTokenRepo user.TokenRepository
	CategoryRepo  category.Repository
	ProductRepo   product.Repository
	EventRepo     event.Repository
	OrderRepo     order.Repository

	// Services
	UserService     user.Service
	CategoryService category.Service
	ProductService  product.Service
	EventService    event.Service
	OrderService    order.Service

	// Handlers
	UserHandler     *userHandler.UserHandler
	CategoryHandler *categoryHandler.CategoryHandler
	ProductHandler  *productHandler.ProductHandler
	EventHandler    *eventHandler.EventHandler
	OrderHandler    *orderHandler.OrderHandler
}

// NewContainer build toàn bộ dependency graph theo thứ tự.
// Sai thứ tự → nil pointer dereference, nên đừng đổi.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure không critical, cache-aside fallback về DB
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: TOKEN CODEC + EMAIL
	// ========================================
	c.TokenCodec = token.NewCodec(cfg.JWT.Secret)
	c.Mailer = email.NewDispatcher(&cfg.Email, cfg.App.Environment)

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.UserTokenRepo = userRepo.NewTokenRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.ProductRepo = productRepo.NewPostgresRepository(pool)
	c.EventRepo = eventRepo.NewPostgresRepository(pool)
	c.OrderRepo = orderRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.UserTokenRepo,
		c.TokenCodec,
		c.Mailer,
		c.Config.App.BaseURL,
	)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Cache)
	c.ProductService = productService.NewProductService(c.ProductRepo, c.Cache)
	c.EventService = eventService.NewEventService(c.EventRepo, c.ProductRepo)
	c.OrderService = orderService.NewOrderService(
		c.OrderRepo,
		c.ProductRepo, // Cross-domain: snapshot giá tại checkout
		c.UserRepo,    // Cross-domain: recipient cho confirmation email
		c.Mailer,
	)
}

func (c *Container) initHandlers() {
	isProd := c.Config.IsProduction()

	c.UserHandler = userHandler.NewUserHandler(c.UserService, isProd)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
}

// Cleanup đóng các connections khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connection closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Redis close error: %v", err)
		} else {
			log.Println("✅ Redis connection closed")
		}
	}

	log.Println("👋 Container cleanup completed")
}
