package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/savelicense/internal/domain"
)

func TestPatternsCmd(t *testing.T) {
	t.Run("prints the defaults", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newTestRootCmd(&out)
		cmd.SetArgs([]string{"patterns"})

		require.NoError(t, cmd.Execute())

		assert.Equal(t, domain.DefaultPattern+"\n", out.String())
	})

	t.Run("prints configured patterns with their flags", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newTestRootCmd(&out)
		cmd.SetArgs([]string{"patterns", "-p", "apache", "-p", "(?s)BSD"})

		require.NoError(t, cmd.Execute())

		assert.Equal(t, "(?mi)apache\n(?s)BSD\n", out.String())
	})

	t.Run("invalid pattern", func(t *testing.T) {
		cmd := newTestRootCmd(&bytes.Buffer{})
		cmd.SetArgs([]string{"patterns", "-p", "("})

		assert.ErrorIs(t, cmd.Execute(), domain.ErrInvalidPattern)
	})
}
