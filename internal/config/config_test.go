package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("out", "o", "", "")
	flags.StringArrayP("pattern", "p", nil, "")
	flags.StringP("encoding", "e", "utf8", "")
	flags.StringArray("ext", nil, "")
	flags.StringArrayP("exclude", "x", nil, "")
	flags.String("report", "", "")
	flags.String("log-level", "warn", "")
	flags.Bool(NoTUIFlag, false, "")

	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ConfigFileName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, used, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, used)
	assertDefaults(t, cfg)
}

func assertDefaults(t *testing.T, cfg *Config) {
	t.Helper()

	defaults := DefaultConfig()

	assert.Empty(t, cfg.Paths)
	assert.Empty(t, cfg.Out)
	assert.Empty(t, cfg.Patterns)
	assert.Empty(t, cfg.Exclude)
	assert.Empty(t, cfg.Report)
	assert.Equal(t, defaults.Encoding, cfg.Encoding)
	assert.Equal(t, defaults.Extensions, cfg.Extensions)
	assert.Equal(t, defaults.LogLevel, cfg.LogLevel)
	assert.True(t, cfg.TUI)
}

func TestLoad_ConfigFileInDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `out: LICENSES.txt
paths: [dist/...]
patterns:
  - apache
exclude:
  - \.min\.js$
encoding: latin1
tui: false
log_level: debug
`)

	cfg, used, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "LICENSES.txt", cfg.Out)
	assert.Equal(t, []string{"dist/..."}, cfg.Paths)
	assert.Equal(t, []string{"apache"}, cfg.Patterns)
	assert.Equal(t, []string{`\.min\.js$`}, cfg.Exclude)
	assert.Equal(t, "latin1", cfg.Encoding)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.TUI)
	assert.Equal(t, DefaultConfig().Extensions, cfg.Extensions)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	t.Run("is used", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("out: custom.txt\n"), 0o600))

		cfg, used, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, path, used)
		assert.Equal(t, "custom.txt", cfg.Out)
	})

	t.Run("must exist", func(t *testing.T) {
		_, _, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("must be valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("out: [unclosed\n"), 0o600))

		_, _, err := Load(LoadOptions{ConfigFile: path})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})
}

func TestLoad_Environment(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "out: from-file.txt\nencoding: latin1\n")

	t.Setenv("SAVE_LICENSE_OUT", "from-env.txt")
	t.Setenv("SAVE_LICENSE_LOG_LEVEL", "error")

	cfg, _, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.Out)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "latin1", cfg.Encoding)
}

func TestLoad_Flags(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "out: from-file.txt\nencoding: latin1\npatterns: [apache]\n")
	t.Setenv("SAVE_LICENSE_REPORT", "env-report.yaml")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{
		"-o", "from-flag.txt",
		"-p", "bsd", "-p", "isc",
		"--ext", ".ts",
		"--report", "flag-report.yaml",
		"--no-tui",
	}))

	cfg, _, err := Load(LoadOptions{Dir: dir, Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, "from-flag.txt", cfg.Out)
	assert.Equal(t, []string{"bsd", "isc"}, cfg.Patterns)
	assert.Equal(t, []string{".ts"}, cfg.Extensions)
	assert.Equal(t, "flag-report.yaml", cfg.Report)
	assert.Equal(t, "latin1", cfg.Encoding, "unset flags keep the file value")
	assert.False(t, cfg.TUI)
}

func TestLoad_UnsetFlagsKeepDefaults(t *testing.T) {
	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, _, err := Load(LoadOptions{Dir: t.TempDir(), Flags: flags})
	require.NoError(t, err)

	assertDefaults(t, cfg)
}
