package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	t.Run("lookup is case-insensitive", func(t *testing.T) {
		h := New().Add("Content-Type", "text/html")
		require.Equal(t, "text/html", h.Value("content-type"))
		require.Equal(t, "text/html", h.Value("CONTENT-TYPE"))
		require.True(t, h.Has("cOnTeNt-TyPe"))
		require.False(t, h.Has("content-length"))
	})

	t.Run("first match wins", func(t *testing.T) {
		h := New().Add("Accept", "text/html").Add("accept", "application/json")
		require.Equal(t, "text/html", h.Value("Accept"))
	})

	t.Run("values preserve order", func(t *testing.T) {
		h := New().Add("Set-Cookie", "a=1").Add("X", "y").Add("set-cookie", "b=2")
		require.Equal(t, []string{"a=1", "b=2"}, h.Values("set-cookie"))
		require.Nil(t, h.Values("missing"))
	})

	t.Run("value or fallback", func(t *testing.T) {
		h := New()
		require.Equal(t, "fallback", h.ValueOr("missing", "fallback"))
	})

	t.Run("keys are unique", func(t *testing.T) {
		h := New().Add("A", "1").Add("a", "2").Add("B", "3")
		require.Equal(t, []string{"A", "B"}, h.Keys())
	})

	t.Run("iteration preserves insertion order", func(t *testing.T) {
		h := New().Add("B", "2").Add("A", "1").Add("B", "3")

		var got []string
		for key, value := range h.Iter() {
			got = append(got, key+"="+value)
		}

		require.Equal(t, []string{"B=2", "A=1", "B=3"}, got)
	})

	t.Run("equality", func(t *testing.T) {
		a := New().Add("A", "1").Add("B", "2")
		require.True(t, a.Equal(New().Add("a", "1").Add("b", "2")))
		require.False(t, a.Equal(New().Add("B", "2").Add("A", "1")))
		require.False(t, a.Equal(New().Add("A", "1")))
	})

	t.Run("clone is deep", func(t *testing.T) {
		h := New().Add("A", "1")
		clone := h.Clone()
		h.Add("B", "2")

		require.Equal(t, 1, clone.Len())
	})

	t.Run("clear keeps capacity", func(t *testing.T) {
		h := NewPrealloc(4).Add("A", "1")
		require.Equal(t, 0, h.Clear().Len())
		require.True(t, h.Empty())
	})

	t.Run("from map", func(t *testing.T) {
		h := NewFromMap(map[string][]string{"A": {"1", "2"}})
		require.Equal(t, []string{"1", "2"}, h.Values("a"))
	})
}
