// Package logging holds the process-wide zerolog logger used by the CLI and batch runner.
//
// Call Init once flags and config are known. Until then a console logger at info level
// writes to stderr.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error or disabled.
	Level string
	// Format is json or console.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the configuration used before Init is called.
func DefaultConfig() (cfg Config) {
	cfg = Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
	return cfg
}

//nolint:gochecknoglobals // Process-wide logger, guarded by mu
var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // Logging must work before Init is called
func init() {
	build(DefaultConfig())
}

// Init reconfigures the global logger. Safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	build(cfg)
}

func build(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if strings.ToLower(cfg.Format) != "json" {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}

	log = zerolog.New(output).With().Timestamp().Logger()
}

// ParseLevel converts a level name to a zerolog.Level. Unknown names map to info.
func ParseLevel(level string) (l zerolog.Level) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		l = zerolog.TraceLevel
	case "debug":
		l = zerolog.DebugLevel
	case "warn", "warning":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	case "disabled", "off":
		l = zerolog.Disabled
	default:
		l = zerolog.InfoLevel
	}
	return l
}

// ValidLevel reports whether ParseLevel recognizes the name rather than falling back.
func ValidLevel(level string) (ok bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		ok = true
	}
	return ok
}

// WithComponent returns a child logger tagged with a component field.
func WithComponent(component string) (l zerolog.Logger) {
	mu.RLock()
	defer mu.RUnlock()
	l = log.With().Str("component", component).Logger()
	return l
}

// Debug starts a debug-level event on the global logger.
func Debug() (e *zerolog.Event) {
	mu.RLock()
	defer mu.RUnlock()
	e = log.Debug()
	return e
}

// Info starts an info-level event on the global logger.
func Info() (e *zerolog.Event) {
	mu.RLock()
	defer mu.RUnlock()
	e = log.Info()
	return e
}

// Warn starts a warn-level event on the global logger.
func Warn() (e *zerolog.Event) {
	mu.RLock()
	defer mu.RUnlock()
	e = log.Warn()
	return e
}
