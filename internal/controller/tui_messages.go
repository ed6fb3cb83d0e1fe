package controller

import (
	m "github.com/mouse-blink/savelicense/internal/model"
)

// Message types.
type startMsg struct {
	patterns []string
	encoding string
}

type progressMsg struct {
	path  string
	done  int
	total int
}

type matchMsg struct {
	match m.Match
}

type summaryMsg struct {
	summary m.Summary
}

type licensesMsg struct {
	licenses []m.LicenseEntry
}
