package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestASCIIString(t *testing.T) {
	generated := make(map[string]struct{})

	for i := 0; i < 5000; i++ {
		str := ASCIIString(5, 15)
		require.NotContains(t, generated, str)
		generated[str] = struct{}{}
	}
}

func TestASCIIStringShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		str := ASCIIString(3, 4)
		require.Len(t, str, 3)
		require.False(t, '0' <= str[0] && str[0] <= '9', "string must not start with a digit: %q", str)
	}
}
