package model

import "time"

// Operation tells whether a license text was new to the set or already known.
type Operation string

const (
	// OperationAdd marks the first occurrence of a license text.
	OperationAdd Operation = "add"
	// OperationMerge marks a repeated license text.
	OperationMerge Operation = "merge"
)

// Match is emitted for every license-like comment group found in a file.
type Match struct {
	File      Path
	Position  Position
	Preview   string
	Text      LicenseText
	Operation Operation
}

// Summary describes a finished run.
type Summary struct {
	Out     Path
	Count   int
	Elapsed time.Duration
}

// LicenseEntry aggregates the occurrences of one unique license text.
type LicenseEntry struct {
	Text        LicenseText
	Preview     string
	Occurrences int
	Files       []Path
}

// Report is the machine readable record of a run.
type Report struct {
	Summary  Summary
	Matches  []Match
	Licenses []LicenseEntry
}
