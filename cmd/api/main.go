package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/clock"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/config"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/wiring"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := wiring.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := clock.NewRealTimeProvider()
	m := metrics.New()

	calculatorService, err := wiring.NewCalculator(cfg.Calculator, tp, appLogger, m)
	if err != nil {
		appLogger.Error("Failed to create calculator", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	calculatorHandler := handler.NewCalculatorHandler(calculatorService, tp, appLogger, handler.Defaults{
		Format:     cfg.Calculator.DefaultFormat,
		TargetUnit: cfg.Calculator.DefaultTargetUnit,
	})

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, m)
	routes.SetupRoutes(router, calculatorHandler, m)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address":          server.Addr,
			"env":              cfg.Environment,
			"slash_date_order": cfg.Calculator.SlashDateOrder,
			"parse_cache_size": cfg.Calculator.ParseCacheSize,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			_ = appLogger.Flush()
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
