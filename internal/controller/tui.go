package controller

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/savelicense/internal/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
	mu      sync.Mutex
	started bool
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	model := newScanModel(cfg.mode)

	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			model = model.withWidth(width)
		}
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("ui already started")
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.group = new(errgroup.Group)
	t.group.Go(func() error {
		_, err := t.program.Run()
		return err
	})
	t.started = true

	return nil
}

// Close stops the program and waits until its final frame is rendered.
func (t *TUI) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return
	}

	t.program.Quit()
	t.err = t.group.Wait()
	t.started = false
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayStart shows the effective patterns and encoding.
func (t *TUI) DisplayStart(patterns []string, encoding string) {
	t.send(startMsg{patterns: patterns, encoding: encoding})
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(path m.Path, done int, total int) {
	t.send(progressMsg{path: string(path), done: done, total: total})
}

// DisplayMatch adds a match to the recent matches panel.
func (t *TUI) DisplayMatch(match m.Match) {
	t.send(matchMsg{match: match})
}

// DisplaySummary shows the final counts.
func (t *TUI) DisplaySummary(summary m.Summary) {
	t.send(summaryMsg{summary: summary})
}

// DisplayLicenses shows the unique licenses. Without a running program the
// table is printed directly.
func (t *TUI) DisplayLicenses(licenses []m.LicenseEntry) error {
	if t.isStarted() {
		t.send(licensesMsg{licenses: licenses})
		return nil
	}

	model := newScanModel(ModeView)
	model.licenses = licenses
	model.finished = true

	_, err := fmt.Fprint(t.output, model.View())

	return err
}

func (t *TUI) isStarted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.started
}

// send forwards msg to the running program; it is a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	started := t.started
	t.mu.Unlock()

	if !started || program == nil {
		return
	}

	program.Send(msg)
}
