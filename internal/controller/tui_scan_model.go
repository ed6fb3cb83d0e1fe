package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/savelicense/internal/model"
)

const (
	defaultWidth     = 80
	recentMatchLimit = 8
	progressWidth    = 40
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	fileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	mergeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1).
			Margin(0, 1, 1, 1)
)

// scanModel renders the progress of a scan and its results.
type scanModel struct {
	mode        StartMode
	width       int
	progressBar progress.Model
	patterns    []string
	encoding    string
	currentFile string
	done        int
	total       int
	added       int
	merged      int
	recent      []m.Match
	summary     *m.Summary
	licenses    []m.LicenseEntry
	finished    bool
}

func newScanModel(mode StartMode) scanModel {
	return scanModel{
		mode:  mode,
		width: defaultWidth,
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(progressWidth),
		),
	}
}

func (sm scanModel) withWidth(width int) scanModel {
	if width > 0 {
		sm.width = width
	}

	return sm
}

func (sm scanModel) Init() tea.Cmd {
	return nil
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return sm, tea.Quit
		}

	case startMsg:
		sm.patterns = msg.patterns
		sm.encoding = msg.encoding

	case progressMsg:
		sm.currentFile = msg.path
		sm.done = msg.done
		sm.total = msg.total

	case matchMsg:
		sm = sm.handleMatch(msg.match)

	case summaryMsg:
		summary := msg.summary
		sm.summary = &summary
		sm.finished = true

	case licensesMsg:
		sm.licenses = msg.licenses
		sm.finished = true
	}

	return sm, nil
}

func (sm scanModel) handleMatch(match m.Match) scanModel {
	if match.Operation == m.OperationAdd {
		sm.added++
	} else {
		sm.merged++
	}

	recent := append([]m.Match{}, sm.recent...)
	recent = append(recent, match)

	if len(recent) > recentMatchLimit {
		recent = recent[len(recent)-recentMatchLimit:]
	}

	sm.recent = recent

	return sm
}

func (sm scanModel) percent() float64 {
	if sm.total == 0 {
		return 0
	}

	return float64(sm.done) / float64(sm.total)
}

func (sm scanModel) View() string {
	if sm.finished && sm.mode != ModeSave {
		return sm.viewLicenses()
	}

	sections := []string{
		titleStyle.Render("save-license"),
		summaryStyle.Render(fmt.Sprintf(
			"Files: %s / %s  •  Added: %s  •  Merged: %s  •  Patterns: %s  •  Encoding: %s",
			accentStyle.Render(fmt.Sprintf("%d", sm.done)),
			accentStyle.Render(fmt.Sprintf("%d", sm.total)),
			addStyle.Render(fmt.Sprintf("%d", sm.added)),
			mergeStyle.Render(fmt.Sprintf("%d", sm.merged)),
			accentStyle.Render(fmt.Sprintf("%d", len(sm.patterns))),
			accentStyle.Render(sm.encoding),
		)),
		lipgloss.NewStyle().Padding(0, 2).Render(sm.progressBar.ViewAs(sm.percent())),
	}

	if sm.currentFile != "" && !sm.finished {
		sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(
			mutedStyle.Render("Reading ")+fileStyle.Render(truncateToWidth(sm.currentFile, sm.width-12)),
		))
	}

	if len(sm.recent) > 0 {
		sections = append(sections, sm.renderRecent())
	}

	if sm.summary != nil {
		sections = append(sections, summaryStyle.Render(fmt.Sprintf(
			"Out: %s  •  Count: %s  •  Time: %s",
			fileStyle.Render(string(sm.summary.Out)),
			accentStyle.Render(fmt.Sprintf("%d", sm.summary.Count)),
			accentStyle.Render(fmt.Sprintf("%.3fs", sm.summary.Elapsed.Seconds())),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (sm scanModel) renderRecent() string {
	lines := make([]string, 0, len(sm.recent))
	available := sm.width - 8

	for _, match := range sm.recent {
		opStyle := addStyle
		if match.Operation == m.OperationMerge {
			opStyle = mergeStyle
		}

		location := fmt.Sprintf("%s(%d, %d)", match.File, match.Position.Line, match.Position.Column)
		line := fmt.Sprintf("%s %s %s",
			opStyle.Render(fmt.Sprintf("%-5s", match.Operation)),
			fileStyle.Render(truncateToWidth(location, available/2)),
			match.Preview,
		)
		lines = append(lines, line)
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (sm scanModel) viewLicenses() string {
	if len(sm.licenses) == 0 {
		return summaryStyle.Render("No licenses found") + "\n"
	}

	occurrences := 0
	lines := make([]string, 0, len(sm.licenses))

	for i, license := range sm.licenses {
		occurrences += license.Occurrences
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			mutedStyle.Render(fmt.Sprintf("%3d", i+1)),
			accentStyle.Render(fmt.Sprintf("%4d", license.Occurrences)),
			license.Preview,
			fileStyle.Render(truncateToWidth(formatFiles(license.Files, maxFilesColumn), sm.width/2)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("save-license"),
		summaryStyle.Render(fmt.Sprintf("Unique: %s  •  Occurrences: %s",
			accentStyle.Render(fmt.Sprintf("%d", len(sm.licenses))),
			accentStyle.Render(fmt.Sprintf("%d", occurrences)),
		)),
		boxStyle.Render(strings.Join(lines, "\n")),
	) + "\n"
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
