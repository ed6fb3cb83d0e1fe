// Package controller provides the report sinks that present scan progress
// and results.
package controller

import (
	m "github.com/mouse-blink/savelicense/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSave StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithSaveMode sets the UI to save mode: progress, matches and a summary.
func WithSaveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSave
	}
}

// WithListMode sets the UI to list mode: progress and the license table.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to display a stored report.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSave}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI receives progress events and results of a run. Implementations only
// format and print; they never influence the scan.
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayStart(patterns []string, encoding string)
	DisplayProgress(path m.Path, done int, total int)
	DisplayMatch(match m.Match)
	DisplaySummary(summary m.Summary)
	DisplayLicenses(licenses []m.LicenseEntry) error
}
