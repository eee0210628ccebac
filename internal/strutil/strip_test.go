package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLStripWS(t *testing.T) {
	require.Equal(t, "value", LStripWS("  \tvalue"))
	require.Equal(t, "value  ", LStripWS("value  "))
	require.Empty(t, LStripWS(" \t "))
	require.Empty(t, LStripWS(""))
}

func TestRStripWS(t *testing.T) {
	require.Equal(t, "value", RStripWS("value \t "))
	require.Equal(t, "  value", RStripWS("  value"))
	require.Empty(t, RStripWS(" \t "))
	require.Empty(t, RStripWS(""))
}

func TestStripWS(t *testing.T) {
	require.Equal(t, "spaced", StripWS("  spaced "))
	require.Equal(t, "a b", StripWS("\ta b\t"))
	require.Empty(t, StripWS(""))
}
