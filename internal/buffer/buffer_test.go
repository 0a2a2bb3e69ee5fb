package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("append and preview", func(t *testing.T) {
		b := New(16)
		require.True(t, b.Append([]byte("hello")))
		require.Equal(t, []byte("hello"), b.Preview())
		require.Equal(t, 5, b.Len())
	})

	t.Run("limit is enforced", func(t *testing.T) {
		b := New(4)
		require.True(t, b.Append([]byte("abcd")))
		require.False(t, b.Append([]byte("e")))
		// rejected data is fully discarded
		require.Equal(t, []byte("abcd"), b.Preview())
	})

	t.Run("consumed bytes don't count against the limit", func(t *testing.T) {
		b := New(4)
		require.True(t, b.Append([]byte("abcd")))
		b.Discard(3)
		require.Equal(t, 1, b.Len())
		require.True(t, b.Append([]byte("efg")))
		require.Equal(t, []byte("defg"), b.Preview())
	})

	t.Run("discard overrun is clamped", func(t *testing.T) {
		b := New(8)
		require.True(t, b.Append([]byte("ab")))
		b.Discard(10)
		require.Zero(t, b.Len())
	})

	t.Run("clear", func(t *testing.T) {
		b := New(8)
		require.True(t, b.Append([]byte("ab")))
		b.Clear()
		require.Zero(t, b.Len())
		require.True(t, b.Append([]byte("abcdefgh")))
	})
}
