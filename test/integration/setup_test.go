//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/driver"
)

// loadConfig reads the repository config and environment, skipping the test
// when no Memgraph endpoint is configured.
func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	_ = godotenv.Load("../../.env")

	cfg, err := config.Load("../../config/config.toml")
	if err != nil {
		t.Logf("Config not found, using default: %v", err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()
	cfg.Dataset.Path = "../../" + cfg.Dataset.Path
	if p := os.Getenv("DATASET_PATH"); p != "" {
		cfg.Dataset.Path = p
	}

	if !cfg.HistoryEnabled() {
		t.Skip("Skipping integration test: MEMGRAPH_URI not set")
	}
	return cfg
}

func connect(t *testing.T, cfg *config.Config) *driver.MemgraphDriver {
	t.Helper()
	ctx := context.Background()

	d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close(ctx) })

	require.NoError(t, d.BuildIndices(ctx))
	return d
}
