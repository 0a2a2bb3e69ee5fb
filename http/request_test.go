package http

import (
	"errors"
	"testing"

	"github.com/indigo-web/httpcodec/http/proto"
	"github.com/stretchr/testify/require"
)

func TestRequestHeader(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		request := NewRequest("GET", "/")
		require.NoError(t, request.Header("Host", "example.com"))
		require.NoError(t, request.Header("X-Custom", "with spaces\tand tabs"))
		require.Equal(t, "example.com", request.Headers.Value("host"))
	})

	t.Run("ows is stripped", func(t *testing.T) {
		request := NewRequest("GET", "/")
		require.NoError(t, request.Header("X", "  padded\t"))
		require.Equal(t, "padded", request.Headers.Value("x"))
	})

	t.Run("name must be a token", func(t *testing.T) {
		request := NewRequest("GET", "/")
		require.ErrorIs(t, request.Header("Bad Name", "x"), ErrInvalidData)
		require.ErrorIs(t, request.Header("", "x"), ErrInvalidData)
		require.ErrorIs(t, request.Header("Na:me", "x"), ErrInvalidData)
	})

	t.Run("no CR or LF in values", func(t *testing.T) {
		request := NewRequest("GET", "/")
		require.ErrorIs(t, request.Header("X", "a\rb"), ErrInvalidHeaderValue)
		require.ErrorIs(t, request.Header("X", "a\nb"), ErrInvalidHeaderValue)
		require.ErrorIs(t, request.Header("X", "a\x00b"), ErrInvalidHeaderValue)
	})

	t.Run("obs-text is allowed", func(t *testing.T) {
		request := NewRequest("GET", "/")
		require.NoError(t, request.Header("X", "caf\xc3\xa9"))
	})
}

func TestRequestFraming(t *testing.T) {
	t.Run("chunked looks at the last coding", func(t *testing.T) {
		request := NewRequest("POST", "/")
		require.NoError(t, request.Header("Transfer-Encoding", "gzip, chunked"))
		require.True(t, request.IsChunked())
	})

	t.Run("chunked not last", func(t *testing.T) {
		request := NewRequest("POST", "/")
		require.NoError(t, request.Header("Transfer-Encoding", "chunked, gzip"))
		require.False(t, request.IsChunked())
	})

	t.Run("chunked across repeated fields", func(t *testing.T) {
		request := NewRequest("POST", "/")
		require.NoError(t, request.Header("Transfer-Encoding", "gzip"))
		require.NoError(t, request.Header("Transfer-Encoding", "CHUNKED"))
		require.True(t, request.IsChunked())
	})

	t.Run("content length", func(t *testing.T) {
		request := NewRequest("POST", "/")
		require.NoError(t, request.Header("Content-Length", "42"))

		length, ok := request.ContentLength()
		require.True(t, ok)
		require.EqualValues(t, 42, length)
	})

	t.Run("absent content length", func(t *testing.T) {
		request := NewRequest("GET", "/")
		_, ok := request.ContentLength()
		require.False(t, ok)
	})

	t.Run("ambiguous content length", func(t *testing.T) {
		request := NewRequest("POST", "/")
		require.NoError(t, request.Header("Content-Length", "42"))
		require.NoError(t, request.Header("Content-Length", "43"))

		_, ok := request.ContentLength()
		require.False(t, ok)
	})

	t.Run("keep alive defaults", func(t *testing.T) {
		require.True(t, NewRequest("GET", "/").IsKeepAlive())
		require.False(t, NewRequestVersion("GET", "/", proto.HTTP10).IsKeepAlive())
	})

	t.Run("keep alive overrides", func(t *testing.T) {
		request := NewRequest("GET", "/")
		require.NoError(t, request.Header("Connection", "close"))
		require.False(t, request.IsKeepAlive())

		request = NewRequestVersion("GET", "/", proto.HTTP10)
		require.NoError(t, request.Header("Connection", "Keep-Alive"))
		require.True(t, request.IsKeepAlive())
	})
}

func TestResponseClassifiers(t *testing.T) {
	require.True(t, NewResponse(101).IsInformational())
	require.True(t, NewResponse(204).IsSuccess())
	require.True(t, NewResponse(308).IsRedirect())
	require.True(t, NewResponse(404).IsClientError())
	require.True(t, NewResponse(503).IsServerError())
	require.False(t, NewResponse(200).IsRedirect())
}

func TestErrorKinds(t *testing.T) {
	err := NewLimitError(KindBodyTooLarge, "body size limit exceeded", 100, 10)
	require.ErrorIs(t, err, ErrBodyTooLarge)
	require.NotErrorIs(t, err, ErrBufferOverflow)

	var httpErr *Error
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, 100, httpErr.Size)
	require.Equal(t, 10, httpErr.Limit)
	require.Contains(t, httpErr.Error(), "100")

	require.ErrorIs(t, NewError("anything"), ErrInvalidData)
}
