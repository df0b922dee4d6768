package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jansuvidha/config"
)

var (
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jansuvidha",
	Short: "JanSuvidha civic data dashboard API",
	Long: `jansuvidha serves the JanSuvidha transparency dashboard: civic dataset
tables, chart configurations, region and year comparisons, RTI submissions
and simulated document uploads.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, envErr := config.LoadEnv()

		path := configFile
		if path == "" {
			path = os.Getenv("CONFIG_FILE")
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		logger, err = cfg.NewLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		switch {
		case envErr == nil:
			logger.Info("Loaded environment file", zap.String("path", envFile))
		case !errors.Is(envErr, config.ErrNoEnvFile):
			logger.Warn("Error loading .env file", zap.Error(envErr))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default $CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd, chartCmd, compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
