package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"budgetapp/internal/config"
	"budgetapp/internal/database"
	"budgetapp/internal/logger"
	"budgetapp/internal/services"
	"budgetapp/internal/storage"
	"budgetapp/internal/validator"

	_ "budgetapp/internal/docs" // Import swagger docs
)

// @title           Budgetapp API
// @version         1.0
// @description     Budgetapp records income and expense transactions in a local ledger and reports totals, budgets and date-grouped history.

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Local tier
	localDB, err := database.OpenLocal(cfg.LocalDBPath)
	if err != nil {
		return err
	}
	store := storage.NewSerialStore(storage.NewLocalStore(storage.NewKeyValue(localDB)))
	defer store.Close()

	ledger := services.NewLedgerService(store, logger.Named("ledger"))
	if err := ledger.Initialize(ctx); err != nil {
		// The ledger records the failure and stays usable with an empty list.
		log.Warnw("starting with an empty ledger", "error", err)
	}

	// Remote tier
	remote := services.NewDisabledRemoteService()
	if cfg.Remote.Enabled {
		manager, err := database.NewManager(cfg.Remote)
		if err != nil {
			return err
		}
		defer func() {
			if err := manager.Close(); err != nil {
				log.Warnw("failed to close remote database", "error", err)
			}
		}()
		if err := manager.RunMigrations("file://migrations"); err != nil {
			return fmt.Errorf("failed to run remote migrations: %w", err)
		}
		remote = services.NewRemoteService(storage.NewRemoteStore(manager.DB()), logger.Named("remote"))
		log.Infow("remote backend enabled", "host", cfg.Remote.Host)
	}

	budgets := services.NewBudgetService(nil, logger.Named("budget"))

	router, err := newRouter(cfg, routerDeps{ledger: ledger, budgets: budgets, remote: remote})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting budgetapp server on port %s", cfg.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped gracefully")
	return nil
}
