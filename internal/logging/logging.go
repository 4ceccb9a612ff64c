// Package logging configures the zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel overrides the configured log level.
const EnvLevel = "TUIDLE_LOG_LEVEL"

// DefaultLevel is used when neither config nor environment set a level.
const DefaultLevel = "info"

// ResolveLevel picks the level from the environment, then cfgLevel, then the default.
func ResolveLevel(cfgLevel string) (zerolog.Level, error) {
	raw := strings.TrimSpace(os.Getenv(EnvLevel))
	if raw == "" {
		raw = strings.TrimSpace(cfgLevel)
	}
	if raw == "" {
		raw = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return lvl, nil
}

// New builds a timestamped logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Setup opens the log file at path, installs the logger as the global one and
// returns it with a close func. The terminal is left to the UI.
func Setup(path string, level zerolog.Level) (zerolog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	logger := New(file, level)
	log.Logger = logger
	return logger, file.Close, nil
}
