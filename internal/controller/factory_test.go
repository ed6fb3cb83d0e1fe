package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestNewUI_SimpleWritesToCommandOutput(t *testing.T) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	NewUI(cmd, false).DisplayStart([]string{"x"}, "utf8")

	assert.Contains(t, out.String(), "# Start save-license")
}

func TestIsTTY(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		assert.False(t, IsTTY(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		file, err := os.CreateTemp(t.TempDir(), "save-license-tty")
		require.NoError(t, err)
		defer file.Close()

		assert.False(t, IsTTY(file))
	})

	t.Run("closed file", func(t *testing.T) {
		file, err := os.CreateTemp(t.TempDir(), "save-license-tty")
		require.NoError(t, err)
		require.NoError(t, file.Close())

		assert.False(t, IsTTY(file))
	})

	t.Run("char device", func(t *testing.T) {
		file, err := os.Open(os.DevNull)
		if err != nil {
			t.Skip("null device not available")
		}
		defer file.Close()

		assert.True(t, IsTTY(file))
	})
}
