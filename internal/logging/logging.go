// Package logging builds the zerolog logger shared by every tabshelf component.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/its-jojoo/tabshelf/internal/config"
)

// New returns a timestamped logger writing to w (stderr when nil).
func New(cfg config.LoggingConfig, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), errors.Wrapf(err, "parse log level %q", cfg.Level)
		}
		level = l
	}

	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
