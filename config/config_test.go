package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	t.Run("zero limits get defaults", func(t *testing.T) {
		filled := Fill(Config{})
		defaults := Default()

		require.Equal(t, defaults.Message, filled.Message)
		require.Equal(t, defaults.Headers, filled.Headers)
		require.Equal(t, defaults.NET.ReadBufferSize, filled.NET.ReadBufferSize)
		// ReadTimeout stays zero: a zero timeout is meaningful and
		// disables the deadline
		require.Zero(t, filled.NET.ReadTimeout)
	})

	t.Run("custom values survive", func(t *testing.T) {
		custom := Config{}
		custom.Message.MaxLineLength = 1024

		filled := Fill(custom)
		require.Equal(t, 1024, filled.Message.MaxLineLength)
		require.Equal(t, Default().Message.MaxHeaders, filled.Message.MaxHeaders)
	})
}
