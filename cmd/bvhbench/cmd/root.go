package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/perf-analysis/bvhtraverse/pkg/config"
	"github.com/perf-analysis/bvhtraverse/pkg/utils"
)

var (
	verbose    bool
	configPath string

	logger utils.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bvhbench",
	Short: "Benchmark the BVH traversal core against synthetic fixtures",
	Long: `bvhbench drives internal/bvh's self- and ray-traversal entry points
against synthetically generated spheres, printing check/contact counts
and phase timings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logLevel := utils.ParseLogLevel(cfg.Log.Level)
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config file (defaults to ./config.yaml if present)")

	binName := BinName()
	rootCmd.Example = `  # Self-traversal over 10k random spheres
  ` + binName + ` run --leaves 10000

  # Ray traversal over the same leaves
  ` + binName + ` run --leaves 10000 --rays 64

  # Cap parallelism regardless of config
  ` + binName + ` run --leaves 10000 --parallelism 4`
}

// GetLogger returns the configured logger.
func GetLogger() utils.Logger {
	return logger
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
