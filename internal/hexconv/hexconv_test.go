package hexconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfbyte(t *testing.T) {
	const hexAlphabet = "0123456789abcdef"

	for value, char := range []byte(hexAlphabet) {
		require.EqualValues(t, value, Halfbyte[char])
		require.True(t, Is(char))
	}

	for _, char := range []byte("ABCDEF") {
		require.EqualValues(t, char-'A'+10, Halfbyte[char])
	}

	for _, char := range []byte{'g', 'z', ' ', 0, 0xFF, '-'} {
		require.EqualValues(t, 0xFF, Halfbyte[char])
		require.False(t, Is(char))
	}
}
