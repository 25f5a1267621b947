package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/gen"
	"github.com/workseed/workseed/pkg/logging"
	"github.com/workseed/workseed/pkg/store"
	"github.com/workseed/workseed/pkg/store/memory"
	"github.com/workseed/workseed/pkg/store/postgres"
	"github.com/workseed/workseed/pkg/store/sqlite"
	"github.com/workseed/workseed/pkg/textgen"
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

	seed := cfg.Generation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("starting generation", zap.Int64("seed", seed))

	db, err := openStore(cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer db.Close()

	cache := newCache(cfg, logger)
	text := textgen.New(&cfg.LLM, cache, rng, logger)

	pipeline, err := gen.NewPipeline(cfg, db, text, rng, logger)
	if err != nil {
		logger.Fatal("invalid generation config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	counts, err := pipeline.Run(ctx)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	logger.Info("generation complete",
		zap.Int64("records", total),
		zap.Duration("elapsed", time.Since(started)),
		zap.Any("counts", counts),
	)

	if cfg.Storage.Driver == "memory" {
		logger.Warn("memory storage discards the dataset on exit")
	}
	os.Exit(0)
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return sqlite.NewStore(cfg.Storage.Path)
	case "postgres":
		return postgres.NewStore(&cfg.Database)
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newCache(cfg *config.Config, logger *zap.Logger) textgen.Cache {
	if len(cfg.Redis.Addresses) == 0 {
		return textgen.NewMemoryCache()
	}
	cache, err := textgen.NewRedisCache(&cfg.Redis)
	if err != nil {
		logger.Warn("redis cache unavailable, using in-memory cache", zap.Error(err))
		return textgen.NewMemoryCache()
	}
	return cache
}
