// File: airlace/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airlace/config"
	"airlace/database"
	catalogRepo "airlace/database/repository/catalog"
	"airlace/database/repository/localstore"
	"airlace/handlers"
	"airlace/middleware"
	"airlace/routes"
	"airlace/services/cart"
	"airlace/services/checkout"
	"airlace/services/search"
	"airlace/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Catalog repository.
	var catalog catalogRepo.CatalogRepository
	var mongoClient *mongo.Client
	switch config.AppConfig.CatalogBackend {
	case "mongo":
		database.InitDB()
		mongoClient = database.MongoClient
		catalog = catalogRepo.NewMongoCatalogRepo()
	default:
		catalog = catalogRepo.NewSeededCatalogRepo()
	}

	// Durable local store for the cart, recent searches and last order.
	var store localstore.Store
	var redisClients []*redis.Client
	switch config.AppConfig.CartBackend {
	case "redis":
		cartClient := utils.GetCartStoreClient()
		cacheClient := utils.GetCacheClient()
		redisClients = append(redisClients, cartClient, cacheClient)
		store = localstore.NewRedisStore(cartClient, cacheClient)
	case "memory":
		store = localstore.NewMemoryStore()
	default:
		fileStore, err := localstore.NewFileStore(config.AppConfig.CartFilePath)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize file store: %v", err)
		}
		store = fileStore
	}

	// Services.
	searchService := search.NewSearchService(catalog, store,
		time.Duration(config.AppConfig.SearchDebounceMs)*time.Millisecond)
	cartService := cart.NewCartService(store)

	var paymentHandler checkout.PaymentProcessor
	switch config.AppConfig.PaymentBackend {
	case "stripe":
		paymentHandler = checkout.NewStripePaymentHandler(logger)
	default:
		paymentHandler = checkout.NewSimulatedPaymentHandler(logger,
			time.Duration(config.AppConfig.PaymentDelayMs)*time.Millisecond)
	}

	checkoutService := &checkout.DefaultCheckoutService{
		Cart:     cartService,
		Payments: paymentHandler,
		Orders:   store,
		Logger:   logger,
	}

	catalogHandler := handlers.NewCatalogHandler(catalog)
	searchHandler := handlers.NewSearchHandler(searchService)
	cartHandler := handlers.NewCartHandler(cartService, catalog)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		GetPropertyByIDHandler: catalogHandler.GetPropertyByIDHandler,
		GetFeaturedHandler:     catalogHandler.GetFeaturedHandler,
		GetNewHandler:          catalogHandler.GetNewHandler,
		GetByRegionHandler:     catalogHandler.GetByRegionHandler,

		// Search endpoints.
		ListPropertiesHandler:    searchHandler.ListPropertiesHandler,
		GetRecentSearchesHandler: searchHandler.GetRecentSearchesHandler,
		RememberSearchHandler:    searchHandler.RememberSearchHandler,

		// Cart endpoints.
		GetCartHandler:        cartHandler.GetCartHandler,
		AddToCartHandler:      cartHandler.AddToCartHandler,
		RemoveFromCartHandler: cartHandler.RemoveFromCartHandler,
		ClearCartHandler:      cartHandler.ClearCartHandler,

		// Checkout endpoints.
		PlaceOrderHandler:   checkoutHandler.PlaceOrderHandler,
		GetLastOrderHandler: checkoutHandler.GetLastOrderHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(redisClients, mongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
