package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseExpect(t *testing.T) {
	expect, err := ParseExpect("100-continue")
	require.NoError(t, err)
	require.True(t, expect.Continue)
	require.Equal(t, "100-continue", expect.String())

	expect, err = ParseExpect("100-Continue")
	require.NoError(t, err)
	require.True(t, expect.Continue)

	_, err = ParseExpect("200-maybe")
	require.Error(t, err)
}

func TestParseTrailer(t *testing.T) {
	trailer, err := ParseTrailer("Expires, X-Checksum")
	require.NoError(t, err)
	require.Equal(t, []string{"Expires", "X-Checksum"}, trailer.Fields)
	require.Equal(t, "Expires, X-Checksum", trailer.String())

	_, err = ParseTrailer("")
	require.Error(t, err)
}

func TestParseUpgrade(t *testing.T) {
	t.Run("protocols", func(t *testing.T) {
		upgrade, err := ParseUpgrade("websocket, HTTP/2.0")
		require.NoError(t, err)
		require.Equal(t, []UpgradeProtocol{
			{Name: "websocket"},
			{Name: "HTTP", Version: "2.0"},
		}, upgrade.Protocols)
	})

	t.Run("round trip", func(t *testing.T) {
		canonical := "websocket, HTTP/2.0"
		upgrade, err := ParseUpgrade(canonical)
		require.NoError(t, err)
		require.Equal(t, canonical, upgrade.String())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", "web socket", "proto//v"} {
			_, err := ParseUpgrade(raw)
			require.Error(t, err, raw)
		}
	})
}

func TestParseVary(t *testing.T) {
	vary, err := ParseVary("accept-encoding, accept-language")
	require.NoError(t, err)
	require.False(t, vary.Any)
	require.Equal(t, []string{"accept-encoding", "accept-language"}, vary.Fields)

	vary, err = ParseVary("*")
	require.NoError(t, err)
	require.True(t, vary.Any)
	require.Equal(t, "*", vary.String())
}

func TestParseExpires(t *testing.T) {
	stamp, err := ParseExpires("Sun, 06 Nov 1994 08:49:37 GMT")
	require.NoError(t, err)
	require.Equal(t, 1994, stamp.Year())

	_, err = ParseExpires("0")
	require.Error(t, err)
}

func TestParseLocation(t *testing.T) {
	uri, err := ParseLocation("https://example.com/next")
	require.NoError(t, err)
	require.Equal(t, "https", uri.Scheme)
	require.Equal(t, "/next", uri.Path)
}
