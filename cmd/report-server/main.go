package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/logging"
	"github.com/workseed/workseed/pkg/report"
	"github.com/workseed/workseed/pkg/store"
	"github.com/workseed/workseed/pkg/store/postgres"
	"github.com/workseed/workseed/pkg/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := openStore(cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer db.Close()

	server := report.NewServer(db, cfg, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.ReadTimeout * 2,
	}

	go func() {
		logger.Info("starting report server", zap.Int("port", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down report server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return sqlite.NewStore(cfg.Storage.Path)
	case "postgres":
		return postgres.NewStore(&cfg.Database)
	default:
		return nil, fmt.Errorf("storage driver %q holds no persisted dataset to serve", cfg.Storage.Driver)
	}
}
