package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntityTag(t *testing.T) {
	t.Run("strong", func(t *testing.T) {
		tag, err := ParseEntityTag(`"xyzzy"`)
		require.NoError(t, err)
		require.Equal(t, EntityTag{Tag: "xyzzy"}, tag)
	})

	t.Run("weak", func(t *testing.T) {
		tag, err := ParseEntityTag(`W/"xyzzy"`)
		require.NoError(t, err)
		require.Equal(t, EntityTag{Weak: true, Tag: "xyzzy"}, tag)
	})

	t.Run("empty tag", func(t *testing.T) {
		tag, err := ParseEntityTag(`""`)
		require.NoError(t, err)
		require.Empty(t, tag.Tag)
	})

	t.Run("contents stay opaque", func(t *testing.T) {
		tag, err := ParseEntityTag(`"a%2Fb"`)
		require.NoError(t, err)
		require.Equal(t, "a%2Fb", tag.Tag)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", "xyzzy", `"unclosed`, `w/"lowercase"`, `"contains"quote"`} {
			_, err := ParseEntityTag(raw)
			require.Error(t, err, raw)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, canonical := range []string{`"xyzzy"`, `W/"weak"`, `""`} {
			tag, err := ParseEntityTag(canonical)
			require.NoError(t, err)
			require.Equal(t, canonical, tag.String())
		}
	})
}

func TestParseETagList(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		list, err := ParseETagList("*")
		require.NoError(t, err)
		require.True(t, list.Any)
		require.Empty(t, list.Tags)
		require.Equal(t, "*", list.String())
	})

	t.Run("list", func(t *testing.T) {
		list, err := ParseETagList(`"a", W/"b", "c"`)
		require.NoError(t, err)
		require.False(t, list.Any)
		require.Equal(t, []EntityTag{
			{Tag: "a"},
			{Weak: true, Tag: "b"},
			{Tag: "c"},
		}, list.Tags)
	})

	t.Run("round trip", func(t *testing.T) {
		canonical := `"a", W/"b"`
		list, err := ParseETagList(canonical)
		require.NoError(t, err)
		require.Equal(t, canonical, list.String())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", `"a", bare`, "**"} {
			_, err := ParseETagList(raw)
			require.Error(t, err, raw)
		}
	})
}
