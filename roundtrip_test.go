package httpcodec

import (
	"strconv"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/status"
	"github.com/stretchr/testify/require"
)

func TestRequestRoundTrip(t *testing.T) {
	t.Run("handcrafted", func(t *testing.T) {
		request := http.NewRequest("PUT", "/things/42?force=1")
		require.NoError(t, request.Header("Host", "example.com"))
		require.NoError(t, request.Header("Accept", "application/json"))
		require.NoError(t, request.Header("Content-Length", "4"))
		request.Body = []byte("data")

		raw, err := EncodeRequest(request)
		require.NoError(t, err)

		d := NewRequestDecoder()
		require.NoError(t, d.Feed(raw))

		decoded, err := d.Decode()
		require.NoError(t, err)
		require.Equal(t, request.Method, decoded.Method)
		require.Equal(t, request.Target, decoded.Target)
		require.Equal(t, request.Proto, decoded.Proto)
		require.True(t, request.Headers.Equal(decoded.Headers))
		require.Equal(t, request.Body, decoded.Body)
		require.Empty(t, d.Remaining())
	})

	t.Run("randomized", func(t *testing.T) {
		d := NewRequestDecoder()

		for i := 0; i < 100; i++ {
			body := []byte(uniuri.NewLen(i))

			request := http.NewRequest("POST", "/"+uniuri.New())
			require.NoError(t, request.Header("Host", uniuri.New()))
			require.NoError(t, request.Header("X-"+uniuri.NewLen(8), uniuri.NewLen(24)))
			require.NoError(t, request.Header("Content-Length", strconv.Itoa(len(body))))
			request.Body = body

			raw, err := EncodeRequest(request)
			require.NoError(t, err)
			require.NoError(t, d.Feed(raw))

			decoded, err := d.Decode()
			require.NoError(t, err)
			require.Equal(t, request.Target, decoded.Target)
			require.True(t, request.Headers.Equal(decoded.Headers))
			require.Equal(t, body, decoded.Body)
			require.Empty(t, d.Remaining())

			d.Reset()
		}
	})
}

func TestResponseRoundTrip(t *testing.T) {
	response := http.NewResponse(status.Teapot)
	require.NoError(t, response.Header("Content-Length", "6"))
	require.NoError(t, response.Header("Cache-Control", "no-store"))
	response.Body = []byte("oolong")

	raw, err := EncodeResponse(response)
	require.NoError(t, err)

	d := NewResponseDecoder()
	require.NoError(t, d.Feed(raw))

	decoded, err := d.Decode()
	require.NoError(t, err)
	require.Equal(t, response.Code, decoded.Code)
	require.Equal(t, "I'm a teapot", decoded.Reason)
	require.True(t, response.Headers.Equal(decoded.Headers))
	require.Equal(t, response.Body, decoded.Body)
}

func TestChunkedRoundTrip(t *testing.T) {
	body := []byte(uniuri.NewLen(300))

	for _, split := range []int{1, 2, 3, 7, 100, 299, 300} {
		head := "POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n"
		raw := append([]byte(head), EncodeChunks(splitIntoParts(body, split))...)

		d := NewRequestDecoder()
		require.NoError(t, d.Feed(raw))

		decoded, err := d.Decode()
		require.NoError(t, err)
		require.Equalf(t, body, decoded.Body, "split size %d", split)
		require.Empty(t, d.Remaining())
	}
}

func TestValueNormalization(t *testing.T) {
	// OWS around the value dies on the way in, so a re-encoded message is
	// the normal form of the original
	d := NewRequestDecoder()
	require.NoError(t, d.Feed([]byte("GET / HTTP/1.1\r\nHost:\te.com \r\n\r\n")))

	decoded, err := d.Decode()
	require.NoError(t, err)

	raw, err := EncodeRequest(decoded)
	require.NoError(t, err)
	require.Equal(t, "GET / HTTP/1.1\r\nHost: e.com\r\n\r\n", string(raw))
}
