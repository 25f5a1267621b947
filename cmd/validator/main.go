package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/logging"
	"github.com/workseed/workseed/pkg/store"
	"github.com/workseed/workseed/pkg/store/postgres"
	"github.com/workseed/workseed/pkg/store/sqlite"
	"github.com/workseed/workseed/pkg/validate"
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

	snap, err := db.Snapshot(context.Background())
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}

	report := validate.Run(snap)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("failed to encode report", zap.Error(err))
	}
	fmt.Println(string(out))

	logger.Info("validation complete",
		zap.Int("errors", report.Errors()),
		zap.Int("warnings", report.Warnings()),
	)
	if !report.OK() {
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return sqlite.NewStore(cfg.Storage.Path)
	case "postgres":
		return postgres.NewStore(&cfg.Database)
	default:
		return nil, fmt.Errorf("storage driver %q holds no persisted dataset to validate", cfg.Storage.Driver)
	}
}
