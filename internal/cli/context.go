package cli

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/thenoetrevino/chromatic/internal/config"
	"github.com/thenoetrevino/chromatic/internal/config/colors"
)

// ErrNoCLI is returned when a command runs without an initialized CLI context
var ErrNoCLI = errors.New("cli not initialized")

// CLI represents the CLI application context
type CLI struct {
	Config *config.Config
	Logger zerolog.Logger
	Scheme colors.ColorScheme

	logCloser io.Closer
}

// NewCLI builds the CLI context around the default color scheme.
// logCloser may be nil; Close releases it.
func NewCLI(cfg *config.Config, logger zerolog.Logger, logCloser io.Closer) *CLI {
	return &CLI{
		Config:    cfg,
		Logger:    logger,
		Scheme:    config.DefaultColorScheme(),
		logCloser: logCloser,
	}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

type cliKey struct{}

// WithCLI returns a copy of ctx carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
