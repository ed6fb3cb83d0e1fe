// Package adapter contains infrastructure adapters for the save-license CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/savelicense/internal/model"
)

// DefaultExtensions lists the file extensions collected from directories.
var DefaultExtensions = []string{".js", ".mjs", ".cjs", ".jsx"}

// recursiveSuffix marks a root that should be scanned recursively.
const recursiveSuffix = "/..."

// SourceFSAdapter abstracts the filesystem operations the domain layer needs
// to collect inputs and write the aggregated output.
type SourceFSAdapter interface {
	// Get expands roots into an ordered, duplicate free list of files.
	// Explicit file roots are kept whatever their extension; directories
	// contribute the files matching extensions. A "dir/..." root is walked
	// recursively.
	Get(roots []m.Path, extensions []string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file in one operation.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, extensions []string) ([]m.Path, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	seen := make(map[string]struct{})
	files := make([]m.Path, 0, len(roots))

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, exists := seen[abs]; exists {
			return nil
		}

		seen[abs] = struct{}{}
		files = append(files, m.Path(path))

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !hasExtension(path, extensions) {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || skippedDir(info.Name()) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Clean(rootStr), recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if strings.HasSuffix(rootStr, recursiveSuffix) {
		return strings.TrimSuffix(rootStr, recursiveSuffix), true
	}

	return rootStr, false
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}

	return false
}

func skippedDir(name string) bool {
	return name == ".git"
}
