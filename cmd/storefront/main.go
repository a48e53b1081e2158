package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/cartstore"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/catalog"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/config"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/httpapi"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Shared HTTP client towards the restaurant backend
	sharedHTTP := &http.Client{Timeout: cfg.BackendTimeout}
	base := backend.NewClient("restaurant-backend", cfg.BackendURL, sharedHTTP, logger)

	// Typed resource clients
	carts := backend.NewCartClient(base)
	products := backend.NewProductClient(base)
	orders := backend.NewOrderClient(base)
	payments := backend.NewPaymentClient(base)
	auth := backend.NewAuthClient(base)
	employees := backend.NewEmployeeClient(base)
	ingredients := backend.NewIngredientClient(base)
	stats := backend.NewStatsClient(base)

	// Redis: sessions + menu cache
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	sessions := session.NewStore(rdb, cfg.SessionTTL)
	menu := catalog.NewService(products, catalog.NewRedisCache(rdb), logger)
	cartManager := cartstore.NewManager(carts, payments, session.ContextProvider{}, logger)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   logger,
		Cfg:      cfg,
		Sessions: sessions,
		Auth:     httpapi.NewAuthHandler(auth, sessions, cartManager),
		Products: httpapi.NewProductHandler(menu),
		Cart:     httpapi.NewCartHandler(cartManager),
		Orders:   httpapi.NewOrderHandler(orders),
		Admin:    httpapi.NewAdminHandler(products, orders, employees, ingredients, stats, menu),
		Health:   &httpapi.HealthHandler{Backend: base, Redis: rdb},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
