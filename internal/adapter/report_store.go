package adapter

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/savelicense/internal/model"
)

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore stores reports as YAML documents on disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Out      string        `yaml:"out"`
	Count    int           `yaml:"count"`
	Elapsed  string        `yaml:"elapsed"`
	Licenses []licenseYAML `yaml:"licenses"`
	Matches  []matchYAML   `yaml:"matches"`
}

type licenseYAML struct {
	Preview     string   `yaml:"preview"`
	Occurrences int      `yaml:"occurrences"`
	Files       []string `yaml:"files"`
	Text        string   `yaml:"text"`
}

type matchYAML struct {
	File      string `yaml:"file"`
	Line      int    `yaml:"line"`
	Column    int    `yaml:"column"`
	Preview   string `yaml:"preview"`
	Operation string `yaml:"operation"`
}

// SaveReport writes report to path as a single YAML document.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.Report) error {
	data, err := yaml.Marshal(toReportYAML(report))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport. Only license
// entries carry the full text; loaded matches have an empty Text.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var decoded reportYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return m.Report{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return fromReportYAML(decoded)
}

func toReportYAML(report m.Report) reportYAML {
	out := reportYAML{
		Out:      string(report.Summary.Out),
		Count:    report.Summary.Count,
		Elapsed:  report.Summary.Elapsed.String(),
		Licenses: make([]licenseYAML, 0, len(report.Licenses)),
		Matches:  make([]matchYAML, 0, len(report.Matches)),
	}

	for _, license := range report.Licenses {
		files := make([]string, 0, len(license.Files))
		for _, file := range license.Files {
			files = append(files, string(file))
		}

		out.Licenses = append(out.Licenses, licenseYAML{
			Preview:     license.Preview,
			Occurrences: license.Occurrences,
			Files:       files,
			Text:        string(license.Text),
		})
	}

	for _, match := range report.Matches {
		out.Matches = append(out.Matches, matchYAML{
			File:      string(match.File),
			Line:      match.Position.Line,
			Column:    match.Position.Column,
			Preview:   match.Preview,
			Operation: string(match.Operation),
		})
	}

	return out
}

func fromReportYAML(in reportYAML) (m.Report, error) {
	elapsed := time.Duration(0)

	if in.Elapsed != "" {
		parsed, err := time.ParseDuration(in.Elapsed)
		if err != nil {
			return m.Report{}, fmt.Errorf("invalid elapsed %q: %w", in.Elapsed, err)
		}

		elapsed = parsed
	}

	report := m.Report{
		Summary: m.Summary{Out: m.Path(in.Out), Count: in.Count, Elapsed: elapsed},
	}

	for _, license := range in.Licenses {
		files := make([]m.Path, 0, len(license.Files))
		for _, file := range license.Files {
			files = append(files, m.Path(file))
		}

		report.Licenses = append(report.Licenses, m.LicenseEntry{
			Text:        m.LicenseText(license.Text),
			Preview:     license.Preview,
			Occurrences: license.Occurrences,
			Files:       files,
		})
	}

	for _, match := range in.Matches {
		report.Matches = append(report.Matches, m.Match{
			File:      m.Path(match.File),
			Position:  m.Position{Line: match.Line, Column: match.Column},
			Preview:   match.Preview,
			Operation: m.Operation(match.Operation),
		})
	}

	return report, nil
}
