package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/savelicense/internal/model"
)

func sampleReport() m.Report {
	return m.Report{
		Summary: m.Summary{Out: "LICENSES.txt", Count: 1, Elapsed: 1250 * time.Millisecond},
		Matches: []m.Match{
			{File: "a.js", Position: m.Position{Line: 2, Column: 1}, Preview: `!\n * @lice...`, Text: "!\n * @license  MIT\n ", Operation: m.OperationAdd},
			{File: "b.js", Position: m.Position{Line: 1, Column: 5}, Preview: `!\n * @lice...`, Text: "!\n * @license  MIT\n ", Operation: m.OperationMerge},
		},
		Licenses: []m.LicenseEntry{
			{Text: "!\n * @license  MIT\n ", Preview: `!\n * @lice...`, Occurrences: 2, Files: []m.Path{"a.js", "b.js"}},
		},
	}
}

func TestLocalReportStore_SaveReport_WritesYAML(t *testing.T) {
	store := NewReportStore()
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, store.SaveReport(m.Path(path), sampleReport()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	var decoded reportYAML
	require.NoError(t, yaml.Unmarshal(readFileBytes(t, path), &decoded))

	assert.Equal(t, "LICENSES.txt", decoded.Out)
	assert.Equal(t, 1, decoded.Count)
	assert.Equal(t, "1.25s", decoded.Elapsed)
	require.Len(t, decoded.Matches, 2)
	assert.Equal(t, "merge", decoded.Matches[1].Operation)
	assert.Equal(t, 5, decoded.Matches[1].Column)
	require.Len(t, decoded.Licenses, 1)
	assert.Equal(t, "!\n * @license  MIT\n ", decoded.Licenses[0].Text)
}

func TestLocalReportStore_LoadReport_RoundTrip(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "report.yaml"))
	want := sampleReport()

	require.NoError(t, store.SaveReport(path, want))

	got, err := store.LoadReport(path)
	require.NoError(t, err)

	assert.Equal(t, want.Summary, got.Summary)
	assert.Equal(t, want.Licenses, got.Licenses)
	require.Len(t, got.Matches, 2)
	for i := range want.Matches {
		expected := want.Matches[i]
		expected.Text = ""
		assert.Equal(t, expected, got.Matches[i])
	}
}

func TestLocalReportStore_LoadReport_Errors(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.LoadReport(m.Path(filepath.Join(dir, "missing.yaml")))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeTestFile(t, path, "licenses: [unclosed")

		_, err := store.LoadReport(m.Path(path))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal report")
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(dir, "elapsed.yaml")
		writeTestFile(t, path, "elapsed: soon\n")

		_, err := store.LoadReport(m.Path(path))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid elapsed")
	})
}
