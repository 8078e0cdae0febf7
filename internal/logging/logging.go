package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidLevel is returned by Init for a level zerolog cannot parse
var ErrInvalidLevel = errors.New("invalid log level")

// DefaultPath returns ~/.chromatic/logs/chromatic.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".chromatic", "logs", "chromatic.log"), nil
}

// Init initializes the logging system, appending JSON lines to path.
// An empty path selects DefaultPath. The returned closer releases the log file.
func Init(level, path string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("%w %q: %v", ErrInvalidLevel, level, err)
	}

	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return zerolog.Nop(), nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file in append mode
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(file).Level(lvl).With().Timestamp().Logger(), file, nil
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
