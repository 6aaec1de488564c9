package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nikogura/archetype-match/pkg/config"
	"github.com/nikogura/archetype-match/pkg/logging"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var logLevel string

//nolint:gochecknoglobals // Loaded once in PersistentPreRunE
var loadedConfig config.Config

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "archetype-match",
	Short: "Match personality quiz answers to archetypes",
	Long: `archetype-match scores personality quiz answers into a six-dimension trait
vector (A, O, C, E, X, P) and assigns each user a primary and secondary archetype
from a fixed catalogue of twelve.

Answers are JSON answer sheets. Results are printed as JSON and can be rendered
as a markdown report.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (implies --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.archetype-match/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

// setup loads config and configures logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) (err error) {
	// init must work even when an existing config is broken
	if cmd.Name() == "init" {
		loadedConfig = config.Default()
	} else {
		loadedConfig, err = config.Load(getConfigFile())
		if err != nil {
			return err
		}
	}

	level := loadedConfig.LogLevel
	switch {
	case logLevel != "":
		level = logLevel
	case getVerbose():
		level = "debug"
	}

	logging.Init(logging.Config{
		Level:  level,
		Format: loadedConfig.LogFormat,
		Output: os.Stderr,
	})

	logging.Debug().
		Str("command", cmd.Name()).
		Str("strategy", loadedConfig.Strategy).
		Int("workers", loadedConfig.Workers).
		Msg("configuration loaded")

	return err
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// getConfig returns the configuration loaded for this invocation.
func getConfig() (result config.Config) {
	result = loadedConfig
	return result
}
