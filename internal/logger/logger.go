// Package logger builds the structured logger shared by the CLI.
package logger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "save-license"

// New returns a logger writing to w at the given level (debug, info, warn,
// error). An empty level means warn.
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = "warn"
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  lvl,
	}), nil
}
