package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/savelicense/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const maxFilesColumn = 3

// SimpleUI implements UI with plain text written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayStart prints the run header.
func (s *SimpleUI) DisplayStart(patterns []string, encoding string) {
	s.printf("# Start save-license\n")
	s.printf("  - Patterns: %s\n", strings.Join(patterns, ", "))
	s.printf("  - Encoding: %q\n", encoding)
	s.printf("\n# Read licenses\n")
}

// DisplayProgress is silent in plain text mode.
func (s *SimpleUI) DisplayProgress(_ m.Path, _ int, _ int) {
}

// DisplayMatch prints one line per license-like comment group.
func (s *SimpleUI) DisplayMatch(match m.Match) {
	s.printf("  - %s(%d, %d) %s [%s]\n",
		match.File, match.Position.Line, match.Position.Column, match.Preview, match.Operation)
}

// DisplaySummary prints the run footer.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	s.printf("\n# Finish\n")
	s.printf("  - Out: %s\n", summary.Out)
	s.printf("  - Count: %d\n", summary.Count)
	s.printf("  - Time: %.3fs\n", summary.Elapsed.Seconds())
}

// DisplayLicenses prints the unique licenses as a table.
func (s *SimpleUI) DisplayLicenses(licenses []m.LicenseEntry) error {
	if len(licenses) == 0 {
		s.printf("No licenses found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "License", "Occurrences", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	occurrences := 0

	for i, license := range licenses {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			license.Preview,
			fmt.Sprintf("%d", license.Occurrences),
			formatFiles(license.Files, maxFilesColumn),
		})

		occurrences += license.Occurrences
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Unique %d", len(licenses)),
		fmt.Sprintf("%d", occurrences),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// formatFiles joins at most limit paths and mentions how many were left out.
func formatFiles(files []m.Path, limit int) string {
	names := make([]string, 0, limit)
	for i, file := range files {
		if i == limit {
			break
		}

		names = append(names, string(file))
	}

	joined := strings.Join(names, ", ")
	if len(files) > limit {
		joined += fmt.Sprintf(" (+%d more)", len(files)-limit)
	}

	return joined
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
