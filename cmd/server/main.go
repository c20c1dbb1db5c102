package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boutique-dz/storefront-backend/internal/cart"
	"github.com/boutique-dz/storefront-backend/internal/catalog"
	"github.com/boutique-dz/storefront-backend/internal/config"
	"github.com/boutique-dz/storefront-backend/internal/handlers"
	"github.com/boutique-dz/storefront-backend/internal/middleware"
	"github.com/boutique-dz/storefront-backend/internal/models"
	"github.com/boutique-dz/storefront-backend/internal/pricing"
	"github.com/boutique-dz/storefront-backend/internal/repository"
	"github.com/boutique-dz/storefront-backend/internal/service"
	"github.com/boutique-dz/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"currency", cfg.Pricing.CurrencyCode,
	)

	unit := cfg.Currency()

	// Delivery option catalog: file-backed when configured, built-in otherwise
	deliveryCatalog := catalog.DefaultDelivery(unit)
	if path := cfg.Catalog.DeliveryOptionsPath; path != "" {
		deliveryCatalog, err = catalog.LoadDelivery(path, unit)
		if err != nil {
			log.Error("failed to load delivery catalog", "path", path, "error", err)
			os.Exit(1)
		}
		log.Info("delivery catalog loaded", "path", path, "options", len(deliveryCatalog.All()))
	}

	// Discount rules: zero discount unless a rule pack is configured
	var discounter pricing.Discounter = pricing.ZeroDiscounter{}
	if path := cfg.Pricing.DiscountRulesPath; path != "" {
		pack, err := pricing.LoadRulePack(path)
		if err != nil {
			log.Error("failed to load discount rules", "path", path, "error", err)
			os.Exit(1)
		}
		discounter = pricing.NewRuleDiscounter(pack)
		log.Info("discount rules loaded", "path", path, "rules", len(pack.Rules))
	}

	installmentMin, err := models.NewMoney(cfg.Pricing.InstallmentMinTotal, unit)
	if err != nil {
		log.Error("invalid installment minimum total", "error", err)
		os.Exit(1)
	}

	pricingCfg := pricing.Config{
		InstallmentMinTotal: installmentMin,
		InstallmentMonths:   cfg.Pricing.InstallmentMonths,
		Currency:            unit,
	}

	// Initialize repositories and the per-session cart store
	productRepo := repository.NewInMemoryProductRepository(unit)
	cartStore := cart.NewStore(deliveryCatalog)

	// Initialize services
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartStore, productRepo, pricingCfg, discounter)
	checkoutService := service.NewCheckoutService(cartStore, pricingCfg, discounter)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryCatalog, log)
	cartHandler := handlers.NewCartHandler(cartService, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.HeaderSessionToken, middleware.HeaderAuthSubject, middleware.HeaderCCPValidated, middleware.HeaderIndependent},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/delivery-options", deliveryHandler.ListOptions)

		// Session-scoped cart and checkout endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session)
			r.Use(middleware.AuthSnapshot)

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{lineId}", cartHandler.UpdateQuantity)
			r.Delete("/cart/items/{lineId}", cartHandler.RemoveItem)
			r.Delete("/cart", cartHandler.ClearCart)
			r.Put("/cart/delivery-option", cartHandler.SetDeliveryOption)
			r.Put("/cart/payment-option", cartHandler.SetPaymentOption)

			r.Post("/checkout", checkoutHandler.Checkout)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
