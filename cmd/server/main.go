package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core"
	"github.com/agenthands/shortlist/internal/dataset"
	"github.com/agenthands/shortlist/internal/driver"
	"github.com/agenthands/shortlist/internal/history"
	"github.com/agenthands/shortlist/internal/llm"
	"github.com/agenthands/shortlist/internal/logging"
	"github.com/agenthands/shortlist/internal/server"
)

func main() {
	envErr := godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, cfgErr := config.Load(cfgPath)
	if cfgErr != nil {
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	logger := logging.New(os.Stderr, cfg.Log)
	if envErr != nil {
		logger.Debug("no .env file found, using environment")
	}
	if cfgErr != nil {
		if !errors.Is(cfgErr, os.ErrNotExist) {
			logger.Fatal("failed to load configuration", "path", cfgPath, "err", cfgErr)
		}
		logger.Warn("config file not found, using defaults", "path", cfgPath)
	}

	ctx := context.Background()

	llmClient, err := llm.NewClient(ctx, cfg.LLM, logging.For(logger, "llm"))
	if err != nil {
		logger.Fatal("failed to initialize LLM client", "err", err)
	}
	if closer, ok := llmClient.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	source := dataset.NewSource(cfg.Dataset, logging.For(logger, "dataset"))
	if _, err := source.Names(); err != nil {
		logger.Warn("customer list not loaded yet", "err", err)
	}

	var runs core.HistoryStore
	if cfg.HistoryEnabled() {
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logging.For(logger, "memgraph"))
		if err != nil {
			logger.Fatal("failed to connect to Memgraph", "err", err)
		}
		defer func() { _ = d.Close(ctx) }()

		store := history.NewStore(d, logging.For(logger, "history"))
		if err := store.BuildIndices(ctx); err != nil {
			logger.Warn("failed to build indices", "err", err)
		}
		runs = store
	} else {
		logger.Info("MEMGRAPH_URI not set, run history disabled")
	}

	advisor := core.NewAdvisor(cfg, llmClient, source, runs, logging.For(logger, "advisor"))
	srv := server.NewServer(advisor, cfg.Server, logging.For(logger, "http"))
	r := srv.SetupRouter()

	logger.Info("starting server", "port", cfg.Server.Port, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
