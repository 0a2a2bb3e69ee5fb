package cookie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		cookies, err := Parse("sid=abc123")
		require.NoError(t, err)
		require.Equal(t, []Cookie{New("sid", "abc123")}, cookies)
	})

	t.Run("multiple pairs keep order", func(t *testing.T) {
		cookies, err := Parse("a=1; b=2; c=3")
		require.NoError(t, err)
		require.Equal(t, []Cookie{New("a", "1"), New("b", "2"), New("c", "3")}, cookies)
	})

	t.Run("quoted value", func(t *testing.T) {
		cookies, err := Parse(`token="opaque"`)
		require.NoError(t, err)
		require.Equal(t, "opaque", cookies[0].Value)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", "novalue", "=bare", "a=b c", "bad name=1"} {
			_, err := Parse(raw)
			require.Error(t, err, raw)
		}
	})
}

func TestSerialize(t *testing.T) {
	value := Serialize([]Cookie{New("a", "1"), New("b", "2")})
	require.Equal(t, "a=1; b=2", value)

	cookies, err := Parse(value)
	require.NoError(t, err)
	require.Equal(t, []Cookie{New("a", "1"), New("b", "2")}, cookies)
}

func TestParseSetCookie(t *testing.T) {
	t.Run("bare pair", func(t *testing.T) {
		c, err := ParseSetCookie("sid=31d4d96e407aad42")
		require.NoError(t, err)
		require.Equal(t, New("sid", "31d4d96e407aad42"), c)
	})

	t.Run("all attributes", func(t *testing.T) {
		c, err := ParseSetCookie(
			"sid=42; Domain=example.com; Path=/acc; " +
				"Expires=Sun, 06 Nov 1994 08:49:37 GMT; Max-Age=3600; " +
				"Secure; HttpOnly; SameSite=strict",
		)
		require.NoError(t, err)
		require.Equal(t, "sid", c.Name)
		require.Equal(t, "42", c.Value)
		require.Equal(t, "example.com", c.Domain)
		require.Equal(t, "/acc", c.Path)
		require.True(t, c.Expires.Equal(time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)))
		require.Equal(t, 3600, c.MaxAge)
		require.True(t, c.Secure)
		require.True(t, c.HttpOnly)
		require.Equal(t, SameSiteStrict, c.SameSite)
	})

	t.Run("unknown attributes are ignored", func(t *testing.T) {
		c, err := ParseSetCookie("a=1; Version=1")
		require.NoError(t, err)
		require.Equal(t, New("a", "1"), c)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseSetCookie("a=1; Max-Age=soon")
		require.Error(t, err)

		_, err = ParseSetCookie("a=1; Expires=tomorrow")
		require.Error(t, err)

		_, err = ParseSetCookie("a=1; SameSite=Sometimes")
		require.Error(t, err)
	})
}

func TestSerializeSetCookie(t *testing.T) {
	c := Build("sid", "42").
		Domain("example.com").
		Path("/").
		MaxAge(60).
		SameSite(SameSiteLax).
		Secure(true).
		HttpOnly(true).
		Cookie()

	value := SerializeSetCookie(c)
	require.Equal(t, "sid=42; Domain=example.com; Path=/; Max-Age=60; SameSite=Lax; Secure; HttpOnly", value)

	parsed, err := ParseSetCookie(value)
	require.NoError(t, err)
	require.Equal(t, c, parsed)
}
