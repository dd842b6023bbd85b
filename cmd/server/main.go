package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/furnimart/backend/internal/application/cart"
	catalogapp "github.com/furnimart/backend/internal/application/catalog"
	checkoutapp "github.com/furnimart/backend/internal/application/checkout"
	identityapp "github.com/furnimart/backend/internal/application/identity"
	orderapp "github.com/furnimart/backend/internal/application/order"
	"github.com/furnimart/backend/internal/infrastructure/auth"
	"github.com/furnimart/backend/internal/infrastructure/config"
	"github.com/furnimart/backend/internal/infrastructure/event"
	"github.com/furnimart/backend/internal/infrastructure/logger"
	"github.com/furnimart/backend/internal/infrastructure/persistence"
	"github.com/furnimart/backend/internal/infrastructure/telemetry"
	"github.com/furnimart/backend/internal/interfaces/http/handler"
	"github.com/furnimart/backend/internal/interfaces/http/middleware"
	"github.com/furnimart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting furnimart backend",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize database with zap-backed gorm logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	if err := telemetry.NewDBTracingPlugin(cfg.Telemetry, log).Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	variantRepo := persistence.NewGormVariantRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	checkoutScope := persistence.NewGormCheckoutScope(db.DB)

	// Token infrastructure. Redis keeps revocations visible across
	// instances; a single-node deployment falls back to process memory.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, variantRepo, categoryRepo, brandRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	brandService := catalogapp.NewBrandService(brandRepo)
	reviewService := catalogapp.NewReviewService(reviewRepo, productRepo)
	cartService := cartapp.NewCartService(cartRepo, variantRepo)
	orderService := orderapp.NewOrderService(orderRepo)
	checkoutService := checkoutapp.NewCheckoutService(checkoutScope)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)
	addressService := identityapp.NewAddressService(addressRepo)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(orderapp.NewOrderPlacedHandler(log))

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	productService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)
	checkoutService.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	brandHandler := handler.NewBrandHandler(brandService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	addressHandler := handler.NewAddressHandler(addressService)
	systemHandler := handler.NewSystemHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting
	// 8. Tracing - OpenTelemetry spans
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitRequests > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))

	// Liveness and readiness probes (outside API versioning)
	engine.GET("/health", systemHandler.Health)
	engine.GET("/ready", systemHandler.Ready)

	// Authenticated routes require a valid access token
	jwtMiddleware := middleware.JWTAuthWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	// Credential endpoints get a tighter, per-client budget
	authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	authRateLimit := middleware.RateLimitByKey(authLimiter, func(c *gin.Context) string {
		return c.ClientIP() + " " + c.FullPath()
	})

	// Public auth routes
	authRoutes := router.NewGroup("/auth").Use(authRateLimit)
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)

	// Session routes requiring authentication
	sessionRoutes := router.NewGroup("/auth").Use(jwtMiddleware)
	sessionRoutes.POST("/logout", authHandler.Logout)
	sessionRoutes.POST("/logout-all", authHandler.LogoutAll)

	// Public catalog reads
	catalogRoutes := router.NewGroup("/catalog")
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/slug/:slug", productHandler.GetBySlug)
	catalogRoutes.GET("/products/:id/variants", productHandler.ListVariants)
	catalogRoutes.GET("/products/:id/reviews", reviewHandler.ListByProduct)
	catalogRoutes.GET("/categories", categoryHandler.List)
	catalogRoutes.GET("/categories/:id", categoryHandler.GetByID)
	catalogRoutes.GET("/categories/slug/:slug", categoryHandler.GetBySlug)
	catalogRoutes.GET("/categories/:id/children", categoryHandler.ListChildren)
	catalogRoutes.GET("/brands", brandHandler.List)
	catalogRoutes.GET("/brands/:id", brandHandler.GetByID)
	catalogRoutes.GET("/brands/slug/:slug", brandHandler.GetBySlug)

	// Review writes require authentication; ownership is enforced
	// in the application layer
	reviewRoutes := router.NewGroup("/catalog").Use(jwtMiddleware)
	reviewRoutes.POST("/products/:id/reviews", reviewHandler.Create)
	reviewRoutes.PUT("/reviews/:id", reviewHandler.Update)
	reviewRoutes.DELETE("/reviews/:id", reviewHandler.Delete)

	// Cart and checkout
	cartRoutes := router.NewGroup("/cart").Use(jwtMiddleware)
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.POST("/items", cartHandler.AddItem)
	cartRoutes.PUT("/items/:id", cartHandler.UpdateItem)
	cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)

	checkoutRoutes := router.NewGroup("/checkout").Use(jwtMiddleware)
	checkoutRoutes.POST("", checkoutHandler.Checkout)

	// Customer order routes
	orderRoutes := router.NewGroup("/orders").Use(jwtMiddleware)
	orderRoutes.GET("", orderHandler.ListMine)
	orderRoutes.GET("/:id", orderHandler.GetMine)
	orderRoutes.POST("/:id/cancel", orderHandler.CancelMine)

	// Profile and addresses
	profileRoutes := router.NewGroup("/profile").Use(jwtMiddleware)
	profileRoutes.GET("", userHandler.GetProfile)
	profileRoutes.PUT("", userHandler.UpdateProfile)
	profileRoutes.PUT("/password", userHandler.ChangePassword)

	addressRoutes := router.NewGroup("/addresses").Use(jwtMiddleware)
	addressRoutes.POST("", addressHandler.Create)
	addressRoutes.GET("", addressHandler.List)
	addressRoutes.GET("/:id", addressHandler.Get)
	addressRoutes.PUT("/:id", addressHandler.Update)
	addressRoutes.POST("/:id/default", addressHandler.SetDefault)
	addressRoutes.DELETE("/:id", addressHandler.Delete)

	// Admin routes
	adminRoutes := router.NewGroup("/admin").Use(jwtMiddleware, middleware.RequireAdmin())

	adminRoutes.POST("/products", productHandler.Create)
	adminRoutes.GET("/products", productHandler.ListAll)
	adminRoutes.PUT("/products/:id", productHandler.Update)
	adminRoutes.DELETE("/products/:id", productHandler.Delete)
	adminRoutes.PUT("/products/:id/price", productHandler.SetPrice)
	adminRoutes.PUT("/products/:id/images", productHandler.SetImages)
	adminRoutes.POST("/products/:id/activate", productHandler.Activate)
	adminRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)
	adminRoutes.POST("/products/:id/discontinue", productHandler.Discontinue)
	adminRoutes.POST("/products/:id/variants", productHandler.AddVariant)
	adminRoutes.PUT("/variants/:id/stock", productHandler.SetVariantStock)
	adminRoutes.DELETE("/variants/:id", productHandler.DeleteVariant)

	adminRoutes.POST("/categories", categoryHandler.Create)
	adminRoutes.PUT("/categories/:id", categoryHandler.Update)
	adminRoutes.DELETE("/categories/:id", categoryHandler.Delete)

	adminRoutes.POST("/brands", brandHandler.Create)
	adminRoutes.PUT("/brands/:id", brandHandler.Update)
	adminRoutes.DELETE("/brands/:id", brandHandler.Delete)

	adminRoutes.GET("/carts", cartHandler.List)
	adminRoutes.GET("/users", userHandler.List)

	adminRoutes.GET("/orders", orderHandler.List)
	adminRoutes.GET("/orders/:id", orderHandler.GetByID)
	adminRoutes.POST("/orders/:id/ship", orderHandler.Ship)
	adminRoutes.POST("/orders/:id/deliver", orderHandler.Deliver)
	adminRoutes.POST("/orders/:id/cancel", orderHandler.Cancel)
	adminRoutes.POST("/orders/:id/payment-result", orderHandler.RecordPaymentResult)
	adminRoutes.POST("/orders/:id/refund", orderHandler.RefundPayment)

	// Register all route groups under /api/v1
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(authRoutes).
		Register(sessionRoutes).
		Register(catalogRoutes).
		Register(reviewRoutes).
		Register(cartRoutes).
		Register(checkoutRoutes).
		Register(orderRoutes).
		Register(profileRoutes).
		Register(addressRoutes).
		Register(adminRoutes)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.App.Port),
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
