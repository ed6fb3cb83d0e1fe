package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/savelicense/internal/config"
	"github.com/mouse-blink/savelicense/internal/domain"
	domainmocks "github.com/mouse-blink/savelicense/internal/domain/mocks"
	m "github.com/mouse-blink/savelicense/internal/model"
)

// useWorkflow makes every command built during the test run against wf.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflowFactory
	workflowFactory = func(*cobra.Command, *config.Config) (domain.Workflow, error) {
		return wf, nil
	}
	t.Cleanup(func() { workflowFactory = original })
}

func newTestRootCmd(out *bytes.Buffer) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newViewCmd(), newPatternsCmd())
	cmd.SetOut(out)
	cmd.SetErr(out)

	return cmd
}

func TestRootCmd_Save(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(&bytes.Buffer{})

	mockWorkflow.EXPECT().Save(mock.Anything, domain.SaveArgs{
		ScanArgs: domain.ScanArgs{
			Paths:      []m.Path{"dist/...", "vendor.js"},
			Exclude:    []string{"\\.min\\.js$"},
			Extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
			Patterns:   []string{"apache", "bsd"},
			Encoding:   "latin1",
		},
		Out:    "LICENSES.txt",
		Report: "report.yaml",
	}).Return(nil)

	cmd.SetArgs([]string{
		"-o", "LICENSES.txt",
		"--report", "report.yaml",
		"-p", "apache", "--pattern", "bsd",
		"-e", "latin1",
		"-x", "\\.min\\.js$",
		"dist/...", "vendor.js",
	})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_DefaultsAreFilledIn(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(&bytes.Buffer{})

	mockWorkflow.EXPECT().Save(mock.Anything, mock.MatchedBy(func(args domain.SaveArgs) bool {
		return args.Encoding == "utf8" &&
			len(args.Patterns) == 0 &&
			len(args.Exclude) == 0 &&
			args.Report == "" &&
			len(args.Paths) == 1 && args.Paths[0] == "index.js"
	})).Return(nil)

	cmd.SetArgs([]string{"--out", "out.txt", "index.js"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_RequiresOutput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"index.js"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, errNoOutput)
	mockWorkflow.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "save-license.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`out: from-config.txt
paths:
  - src/...
patterns:
  - copyright
extensions:
  - .js
`), 0o600))

	cmd := newTestRootCmd(&bytes.Buffer{})

	mockWorkflow.EXPECT().Save(mock.Anything, mock.MatchedBy(func(args domain.SaveArgs) bool {
		return args.Out == "from-config.txt" &&
			assert.ObjectsAreEqual([]m.Path{"src/..."}, args.Paths) &&
			assert.ObjectsAreEqual([]string{"copyright"}, args.Patterns) &&
			assert.ObjectsAreEqual([]string{".js"}, args.Extensions)
	})).Return(nil)

	cmd.SetArgs([]string{"--config", cfgPath})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlagsOverrideConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "save-license.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("out: from-config.txt\nencoding: latin1\n"), 0o600))

	cmd := newTestRootCmd(&bytes.Buffer{})

	mockWorkflow.EXPECT().Save(mock.Anything, mock.MatchedBy(func(args domain.SaveArgs) bool {
		return args.Out == "from-flag.txt" && args.Encoding == "latin1"
	})).Return(nil)

	cmd.SetArgs([]string{"--config", cfgPath, "-o", "from-flag.txt", "a.js"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "-o", "out.txt"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(&bytes.Buffer{})
	mockWorkflow.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrSourceUnparseable)

	cmd.SetArgs([]string{"-o", "out.txt", "broken.js"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrSourceUnparseable)
}

func TestNewWorkflow(t *testing.T) {
	t.Run("builds a workflow", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		cfg := config.DefaultConfig()

		wf, err := newWorkflow(cmd, &cfg)
		require.NoError(t, err)
		assert.NotNil(t, wf)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetErr(&bytes.Buffer{})

		cfg := config.DefaultConfig()
		cfg.LogLevel = "chatty"

		_, err := newWorkflow(cmd, &cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "chatty")
	})
}

func TestRootCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.js"), []byte("/*! lib-a | MIT */\nvar a = 1;\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "b.js"), []byte("// helper\n/*! lib-a | MIT */\n// Copyright (c) B\n"), 0o600))

	out := filepath.Join(dir, "LICENSES.txt")

	var buf bytes.Buffer
	cmd := newTestRootCmd(&buf)
	cmd.SetArgs([]string{"--no-tui", "-o", out, src})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "! lib-a | MIT \n\n Copyright (c) B", string(content))

	assert.Contains(t, buf.String(), "# Start save-license")
	assert.Contains(t, buf.String(), "a.js(1, 1) ! lib-a | ... [add]")
	assert.Contains(t, buf.String(), "b.js(2, 1) ! lib-a | ... [merge]")
	assert.Contains(t, buf.String(), "  - Count: 2")
}

func TestRootCmd_EndToEndSyntaxError(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "broken.js")
	require.NoError(t, os.WriteFile(file, []byte("// MIT\nvar = ;\n"), 0o600))

	out := filepath.Join(dir, "LICENSES.txt")

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--no-tui", "-o", out, file})

	err := cmd.Execute()

	require.ErrorIs(t, err, domain.ErrSourceUnparseable)
	assert.Equal(t, 1, strings.Count(err.Error(), "broken.js"), "path should appear once in %q", err.Error())
	assert.NoFileExists(t, out)
}

var errBoom = errors.New("boom")

func TestRootCmd_FactoryError(t *testing.T) {
	original := workflowFactory
	workflowFactory = func(*cobra.Command, *config.Config) (domain.Workflow, error) {
		return nil, errBoom
	}
	t.Cleanup(func() { workflowFactory = original })

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", "out.txt", "a.js"})

	assert.ErrorIs(t, cmd.Execute(), errBoom)
}
