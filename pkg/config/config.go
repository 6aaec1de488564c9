package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/nikogura/archetype-match/pkg/logging"
	"github.com/nikogura/archetype-match/pkg/matcher"
	"github.com/nikogura/archetype-match/pkg/similarity"
)

const (
	// DefaultWorkers is the batch concurrency used when none is configured.
	DefaultWorkers = 4
	// DefaultOutputDir is where reports and batch results land by default.
	DefaultOutputDir = "./results"

	envStrategy  = "ARCHETYPE_MATCH_STRATEGY"
	envWorkers   = "ARCHETYPE_MATCH_WORKERS"
	envLogLevel  = "ARCHETYPE_MATCH_LOG_LEVEL"
	envLogFormat = "ARCHETYPE_MATCH_LOG_FORMAT"
)

// Config represents the application configuration.
type Config struct {
	Strategy    string   `json:"strategy"`
	HybridAlpha *float64 `json:"hybrid_alpha,omitempty"`
	Workers     int      `json:"workers"`
	LogLevel    string   `json:"log_level"`
	LogFormat   string   `json:"log_format"`
	OutputDir   string   `json:"output_dir"`
}

// Default returns a configuration with every default filled in.
func Default() (cfg Config) {
	alpha := similarity.DefaultAlpha
	cfg = Config{
		Strategy:    matcher.Hybrid.String(),
		HybridAlpha: &alpha,
		Workers:     DefaultWorkers,
		LogLevel:    "info",
		LogFormat:   "console",
		OutputDir:   DefaultOutputDir,
	}
	return cfg
}

// DefaultPath returns $HOME/.archetype-match/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".archetype-match", "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// With no explicit path a missing default file is not an error: defaults apply.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'archetype-match init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = cfg.applyEnv()
	if err != nil {
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() (err error) {
	if strategy := os.Getenv(envStrategy); strategy != "" {
		c.Strategy = strategy
	}

	if workers := os.Getenv(envWorkers); workers != "" {
		var n int
		n, err = strconv.Atoi(strings.TrimSpace(workers))
		if err != nil {
			err = errors.Wrapf(err, "invalid %s: %q", envWorkers, workers)
			return err
		}
		c.Workers = n
	}

	if level := os.Getenv(envLogLevel); level != "" {
		c.LogLevel = level
	}

	if format := os.Getenv(envLogFormat); format != "" {
		c.LogFormat = format
	}

	return err
}

// Validate checks the configuration and fills defaults for empty fields.
func (c *Config) Validate() (err error) {
	defaults := Default()

	if c.Strategy == "" {
		c.Strategy = defaults.Strategy
	}
	_, err = matcher.ParseStrategy(c.Strategy)
	if err != nil {
		err = errors.Wrap(err, "strategy")
		return err
	}

	if c.HybridAlpha == nil {
		c.HybridAlpha = defaults.HybridAlpha
	}
	if *c.HybridAlpha < 0 || *c.HybridAlpha > 1 {
		err = errors.Errorf("hybrid_alpha must be within [0, 1], got %v", *c.HybridAlpha)
		return err
	}

	if c.Workers == 0 {
		c.Workers = defaults.Workers
	}
	if c.Workers < 0 {
		err = errors.Errorf("workers must be positive, got %d", c.Workers)
		return err
	}

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if !logging.ValidLevel(c.LogLevel) {
		err = errors.Errorf("unknown log_level: %s", c.LogLevel)
		return err
	}

	if c.LogFormat == "" {
		c.LogFormat = defaults.LogFormat
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		err = errors.Errorf("log_format must be json or console, got %s", c.LogFormat)
		return err
	}

	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}

	return err
}

// MatchStrategy returns the parsed strategy. Call after Validate.
func (c *Config) MatchStrategy() (strategy matcher.Strategy) {
	var err error
	strategy, err = matcher.ParseStrategy(c.Strategy)
	if err != nil {
		strategy = matcher.Hybrid
	}
	return strategy
}

// Alpha returns the hybrid blend, falling back to similarity.DefaultAlpha when unset.
func (c *Config) Alpha() (alpha float64) {
	alpha = similarity.DefaultAlpha
	if c.HybridAlpha != nil {
		alpha = *c.HybridAlpha
	}
	return alpha
}

// InitConfig creates a default configuration file. It refuses to overwrite an existing one.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	var data []byte
	data, err = json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
