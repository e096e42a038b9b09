package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"store-app/config"
	"store-app/internal/clock"
	"store-app/internal/server"
	"store-app/internal/service"
	"store-app/pkg/database"
	"store-app/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

// run owns every resource so its deferred cleanup happens on all exit paths.
func run() error {
	// 1. Load Configuration
	cfg, err := config.Load(config.Paths{})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// 2. Initialize Logger
	appLogger, err := logger.New(logger.Config{
		Development: !cfg.Server.IsProduction(),
		Level:       cfg.Logger.Level,
		Encoding:    cfg.Logger.Encoding,
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer appLogger.Sync()

	appLogger.Info("Configuration loaded",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("session_secret_default", cfg.Session.Secret == "secret123"),
	)
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Connect to Database
	db, err := database.Open(cfg.Database, logger.GormLevel(appLogger), appLogger)
	if err != nil {
		appLogger.Error("Could not connect to database", zap.Error(err))
		return err
	}
	defer database.Close(db)

	// 4. Migrate and seed
	if err := database.Migrate(db); err != nil {
		appLogger.Error("Migration failed", zap.Error(err))
		return err
	}
	clk := clock.System{}
	if _, err := database.SeedMonthlyExpenses(db, clk.Now(), appLogger); err != nil {
		appLogger.Error("Seeding failed", zap.Error(err))
		return err
	}

	// 5. Initialize Router
	svc := service.New(db, clk, appLogger)
	router, err := server.New(cfg, svc, appLogger)
	if err != nil {
		appLogger.Error("Could not build router", zap.Error(err))
		return err
	}

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	return serve(srv, quit, appLogger)
}

// serve runs srv until stop fires or the listener fails. A listen failure is
// returned to the caller instead of exiting, so deferred cleanup still runs.
func serve(srv *http.Server, stop <-chan os.Signal, appLogger *zap.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			appLogger.Error("Failed to run server", zap.Error(err))
			return err
		}
		return nil
	case <-stop:
	}

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
		return err
	}
	appLogger.Info("Server stopped")
	return nil
}
