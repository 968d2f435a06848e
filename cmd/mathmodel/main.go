package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/mathmodel/internal/config"
	"github.com/san-kum/mathmodel/internal/render"
	"github.com/san-kum/mathmodel/internal/storage"
)

var (
	configFile string
	logLevel   string
	dataDir    string

	cfg    *config.Config
	logger *log.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "mathmodel",
		Short:             "fractals, attractors and other mathematical modelling exercises",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "run data directory")

	rootCmd.AddCommand(
		fractalCmd(), animateCmd(), exploreCmd(),
		attractorCmd(),
		spatialCmd(),
		gisCmd(), cleanupCmd(),
		statsCmd(), clusterCmd(), gradientCmd(),
		runsCmd(), presetsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config file and builds the logger. Flags given on the
// command line win over the file.
func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	logger.Debug("config ready", "file", configFile, "data", cfg.DataDir)
	return nil
}

// unknown reports a name that matches nothing. It is not an error: the
// command prints the choices and exits cleanly.
func unknown(kind, name string, known []string) error {
	fmt.Printf("unknown %s %q (available: %s)\n", kind, name, strings.Join(known, ", "))
	return nil
}

func newRenderer(workers, rows int) *render.Renderer {
	return render.New(
		render.WithWorkers(workers),
		render.WithRowsPerTask(rows),
		render.WithLogger(logger.WithPrefix("render")),
	)
}

func openStore() (*storage.Store, error) {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}
