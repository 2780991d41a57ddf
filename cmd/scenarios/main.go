// Command scenarios runs canned recommendation pairs through the extractor
// and prints what was added and removed between them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core/extraction"
	"github.com/agenthands/shortlist/internal/dataset"
	"github.com/agenthands/shortlist/internal/logging"
)

var (
	configPath   string
	dataPath     string
	scenarioPath string
	plain        bool
)

var rootCmd = &cobra.Command{
	Use:           "scenarios",
	Short:         "Run delta scenarios against the customer list",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if dataPath != "" {
			cfg.Dataset.Path = dataPath
		}

		names, err := dataset.NewSource(cfg.Dataset, logging.Discard()).Names()
		if err != nil {
			return err
		}

		scenarios := builtinScenarios
		if scenarioPath != "" {
			if scenarios, err = LoadScenarios(scenarioPath); err != nil {
				return err
			}
		}

		e := extraction.NewExtractor(cfg.Extraction)
		p := newPrinter(cmd.OutOrStdout(), plain)
		for _, s := range scenarios {
			p.print(s, runScenario(e, s, names))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config/config.toml", "config file; defaults are used when it is missing")
	rootCmd.Flags().StringVarP(&dataPath, "data", "d", "", "customer list (.csv or .xlsx), overrides the config")
	rootCmd.Flags().StringVarP(&scenarioPath, "file", "f", "", "TOML file with [[scenario]] entries")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "disable styling")
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
