// Package domain contains the license scanning workflow and its core rules:
// comment grouping, license filtering and deduplication.
package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/savelicense/internal/adapter"
	"github.com/mouse-blink/savelicense/internal/controller"
	m "github.com/mouse-blink/savelicense/internal/model"
)

const outputPerm = 0o644

// ScanArgs holds the inputs shared by every workflow operation.
type ScanArgs struct {
	Paths      []m.Path
	Exclude    []string
	Extensions []string
	Patterns   []string
	Encoding   string
}

// SaveArgs holds the arguments of Save.
type SaveArgs struct {
	ScanArgs
	Out    m.Path
	Report m.Path // optional YAML report
}

// ListArgs holds the arguments of List.
type ListArgs struct {
	ScanArgs
}

// ViewArgs holds the arguments of View.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the license scanning operations.
type Workflow interface {
	// Save scans the inputs and writes the unique license texts to Out.
	Save(ctx context.Context, args SaveArgs) error
	// List scans the inputs and shows the unique licenses without writing.
	List(ctx context.Context, args ListArgs) error
	// View shows the licenses of a report written by a previous Save.
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter      adapter.SourceFSAdapter
	commentAdapter adapter.CommentAdapter
	reportStore    adapter.ReportStore
	ui             controller.UI
	logger         *log.Logger
	newCodec       func(label string) (adapter.TextCodec, error)
	now            func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	commentAdapter adapter.CommentAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	logger *log.Logger,
) Workflow {
	return &workflow{
		fsAdapter:      fsAdapter,
		commentAdapter: commentAdapter,
		reportStore:    reportStore,
		ui:             ui,
		logger:         logger,
		newCodec: func(label string) (adapter.TextCodec, error) {
			return adapter.NewTextCodec(label)
		},
		now: time.Now,
	}
}

// scan is a prepared run: the resolved files and the configured collaborators.
type scan struct {
	files   []m.Path
	matcher *RegexpMatcher
	codec   adapter.TextCodec
}

// Save implements Workflow.
func (w *workflow) Save(ctx context.Context, args SaveArgs) error {
	started := w.now()

	if args.Out == "" {
		return fmt.Errorf("%w: no output path", ErrSinkUnwritable)
	}

	s, err := w.prepare(args.ScanArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithSaveMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayStart(s.matcher.Patterns(), s.codec.Name())

	licenses := NewLicenseSet()

	matches, err := w.collect(ctx, s, licenses, w.ui.DisplayMatch)
	if err != nil {
		return err
	}

	content, err := s.codec.Encode(licenses.Join())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSinkUnwritable, args.Out, err)
	}

	if err := w.fsAdapter.WriteFile(args.Out, content, outputPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSinkUnwritable, args.Out, err)
	}

	summary := m.Summary{Out: args.Out, Count: licenses.Len(), Elapsed: w.now().Sub(started)}

	w.logger.Info("licenses saved", "out", args.Out, "count", summary.Count, "files", len(s.files))

	if args.Report != "" {
		report := m.Report{
			Summary:  summary,
			Matches:  matches,
			Licenses: BuildEntries(licenses, matches),
		}

		if err := w.reportStore.SaveReport(args.Report, report); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSinkUnwritable, args.Report, err)
		}
	}

	w.ui.DisplaySummary(summary)

	return nil
}

// List implements Workflow.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	s, err := w.prepare(args.ScanArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayStart(s.matcher.Patterns(), s.codec.Name())

	licenses := NewLicenseSet()

	matches, err := w.collect(ctx, s, licenses, func(m.Match) {})
	if err != nil {
		return err
	}

	return w.ui.DisplayLicenses(BuildEntries(licenses, matches))
}

// View implements Workflow.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	return w.ui.DisplayLicenses(report.Licenses)
}

// prepare validates the configuration and resolves the input files. Nothing
// is read yet.
func (w *workflow) prepare(args ScanArgs) (scan, error) {
	matcher, err := CompilePatterns(args.Patterns)
	if err != nil {
		return scan{}, err
	}

	codec, err := w.newCodec(args.Encoding)
	if err != nil {
		return scan{}, fmt.Errorf("%w: %w", ErrUnknownEncoding, err)
	}

	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return scan{}, err
	}

	resolved, err := w.fsAdapter.Get(args.Paths, args.Extensions)
	if err != nil {
		return scan{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	files := make([]m.Path, 0, len(resolved))

	for _, file := range resolved {
		if excluded(file, exclude) {
			w.logger.Debug("excluded", "path", file)
			continue
		}

		files = append(files, file)
	}

	w.logger.Debug("resolved inputs", "roots", len(args.Paths), "files", len(files))

	return scan{files: files, matcher: matcher, codec: codec}, nil
}

// collect processes the files one after another, in order, feeding every
// license-like group into licenses. The first failure aborts the run.
func (w *workflow) collect(ctx context.Context, s scan, licenses *LicenseSet, emit func(m.Match)) ([]m.Match, error) {
	var matches []m.Match

	for i, file := range s.files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan canceled: %w", err)
		}

		w.ui.DisplayProgress(file, i, len(s.files))

		groups, err := w.scanFile(ctx, file, s)
		if err != nil {
			return nil, err
		}

		for _, group := range groups {
			text := group.Text()
			match := m.Match{
				File:      file,
				Position:  group.Start(),
				Preview:   Preview(text),
				Text:      text,
				Operation: licenses.Add(text),
			}

			matches = append(matches, match)
			emit(match)
		}
	}

	w.ui.DisplayProgress("", len(s.files), len(s.files))

	return matches, nil
}

// scanFile returns the license-like comment groups of one file.
func (w *workflow) scanFile(ctx context.Context, path m.Path, s scan) ([]m.CommentGroup, error) {
	raw, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}

	text, err := s.codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}

	comments, err := w.commentAdapter.Extract(ctx, path, normalizeNewlines(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnparseable, path, err)
	}

	groups := GroupComments(comments)
	licenses := FilterLicenses(groups, s.matcher)

	w.logger.Debug("scanned file",
		"path", path,
		"comments", len(comments),
		"groups", len(groups),
		"licenses", len(licenses),
	)

	return licenses, nil
}

// BuildEntries aggregates matches per unique license text, in set order.
func BuildEntries(licenses *LicenseSet, matches []m.Match) []m.LicenseEntry {
	texts := licenses.Texts()
	index := make(map[m.LicenseText]int, len(texts))
	entries := make([]m.LicenseEntry, 0, len(texts))

	for i, text := range texts {
		index[text] = i
		entries = append(entries, m.LicenseEntry{Text: text, Preview: Preview(text)})
	}

	for _, match := range matches {
		i, ok := index[match.Text]
		if !ok {
			continue
		}

		entry := &entries[i]
		entry.Occurrences++
		entry.Files = appendUnique(entry.Files, match.File)
	}

	return entries
}

func appendUnique(files []m.Path, file m.Path) []m.Path {
	for _, existing := range files {
		if existing == file {
			return files
		}
	}

	return append(files, file)
}

// normalizeNewlines turns CRLF and lone CR line endings into LF.
func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}

	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

func compileExcludes(exprs []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))

	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: exclude %q: %w", ErrInvalidPattern, expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func excluded(path m.Path, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(string(path)) {
			return true
		}
	}

	return false
}
