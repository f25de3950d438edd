package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/purrify/pricing_api/internal/cache"
	"github.com/purrify/pricing_api/internal/config"
	"github.com/purrify/pricing_api/internal/database"
	"github.com/purrify/pricing_api/internal/handler"
	"github.com/purrify/pricing_api/internal/middleware"
	"github.com/purrify/pricing_api/internal/repository"
	"github.com/purrify/pricing_api/internal/service"
	"github.com/purrify/pricing_api/internal/utils"
	"github.com/purrify/pricing_api/internal/worker"
	"github.com/purrify/pricing_api/pkg/paymentlinks"
)

// main is the application entrypoint for the Purrify pricing API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting pricing api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize link/price-range cache
	linkCache := cache.NewLinkCache(redisClient)

	// 4. Initialize payment-link registry client (optional)
	var linksClient *paymentlinks.Client
	if cfg.PaymentLinks.BaseURL != "" {
		linksClient = paymentlinks.NewClient(cfg.PaymentLinks.BaseURL, cfg.PaymentLinks.Secret)
		log.Info().Str("registry", cfg.PaymentLinks.BaseURL).Msg("payment-link registry configured")
	} else {
		log.Warn().Msg("payment-link registry not configured - checkout links will be unavailable")
	}

	// 5. Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	planRepo := repository.NewPlanRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 6. Initialize services
	utils.SetJWTSecret(cfg.JWTSecret)
	authSvc := service.NewAuthService(clientRepo)
	adminAuthSvc := service.NewAdminAuthService(adminRepo)
	clientSvc := service.NewClientService(clientRepo)

	catalogSvc, err := service.NewCatalogService(productRepo, linkCache)
	if err != nil {
		log.Error().Err(err).Msg("catalog initialization failed")
		fmt.Fprintf(os.Stderr, "catalog initialization failed: %v\n", err)
		os.Exit(1)
	}

	pricingSvc := service.NewPricingService(catalogSvc, linkCache)

	var linkResolver service.LinkResolver
	if linksClient != nil {
		linkResolver = linksClient
	}
	subscriptionSvc := service.NewSubscriptionService(linkResolver, linkCache)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:       handler.NewHealthHandler(db, redisClient),
		Pricing:      handler.NewPricingHandler(pricingSvc),
		Subscription: handler.NewSubscriptionHandler(subscriptionSvc),
		Auth:         handler.NewAuthHandler(adminAuthSvc),
		Client:       handler.NewClientHandler(clientSvc),
		Catalog:      handler.NewCatalogHandler(catalogSvc, planRepo),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware(authSvc)
	jwtMw := middleware.NewJWTMiddleware()
	currencyMw := middleware.CurrencyMiddleware(cfg.GeoHeader)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw, jwtMw, currencyMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewCatalogRefreshWorker(catalogSvc, cfg.Worker.CatalogRefreshInterval).Start(ctx)
	if linksClient != nil {
		go worker.NewLinkWarmupWorker(linksClient, linkCache, cfg.Worker.LinkWarmupInterval).Start(ctx)
	}

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health       *handler.HealthHandler
	Pricing      *handler.PricingHandler
	Subscription *handler.SubscriptionHandler
	Auth         *handler.AuthHandler
	Client       *handler.ClientHandler
	Catalog      *handler.CatalogHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMiddleware *middleware.AuthMiddleware, jwtMiddleware *middleware.JWTMiddleware, currencyMiddleware gin.HandlerFunc) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Pricing routes (protected with client API key)
	pricing := router.Group("/v1/pricing")
	pricing.Use(authMiddleware.Handle(), currencyMiddleware)
	{
		pricing.GET("/products", handlers.Pricing.GetProducts)
		pricing.GET("/products/:key", handlers.Pricing.GetProduct)
		pricing.GET("/aliases", handlers.Pricing.GetAliases)
		pricing.GET("/range", handlers.Pricing.GetPriceRange)
		pricing.GET("/format", handlers.Pricing.FormatValue)
	}

	// Client self-inspection (protected with client API key)
	client := router.Group("/v1/client")
	client.Use(authMiddleware.Handle())
	{
		client.GET("/me", handlers.Client.Me)
	}

	// Subscription routes (protected with client API key)
	subscription := router.Group("/v1/subscription")
	subscription.Use(authMiddleware.Handle(), currencyMiddleware)
	{
		subscription.GET("/plans", handlers.Subscription.GetPlans)
		subscription.GET("/plans/:id/ltv", handlers.Subscription.GetPlanLTV)
		subscription.GET("/plans/:id/upgrade", handlers.Subscription.GetUpgrade)
		subscription.POST("/recommend", handlers.Subscription.Recommend)
		subscription.POST("/churn-risk", handlers.Subscription.ChurnRisk)
		subscription.GET("/payment-link", handlers.Subscription.GetPaymentLink)
		subscription.GET("/triggers", handlers.Subscription.GetTriggers)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Client Management
		admin.POST("/clients", handlers.Client.CreateClient)
		admin.GET("/clients", handlers.Client.ListClients)
		admin.GET("/clients/:id", handlers.Client.GetClient)
		admin.PUT("/clients/:id", handlers.Client.UpdateClient)
		admin.POST("/clients/:id/regenerate", handlers.Client.RegenerateKeys)

		// Catalog Management
		admin.GET("/products", handlers.Catalog.ListProducts)
		admin.PUT("/products/:catalogId", handlers.Catalog.UpsertProduct)
		admin.PUT("/products/:catalogId/prices", handlers.Catalog.UpdatePrices)
		admin.PUT("/products/:catalogId/status", handlers.Catalog.UpdateStatus)
		admin.GET("/plans", handlers.Catalog.ListPlans)
		admin.PUT("/plans/:id/retention", handlers.Catalog.UpdateRetention)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
