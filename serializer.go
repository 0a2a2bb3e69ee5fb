package httpcodec

import (
	"strconv"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/headers"
	"github.com/indigo-web/httpcodec/http/status"
	"github.com/indigo-web/httpcodec/internal/httpchars"
)

var chunkedFinalizer = []byte("0\r\n\r\n")

// EncodeRequest serializes the request into its wire form. No headers are
// injected on the way: Host, Content-Length and the rest are the caller's
// business. Syntactic rules are the same as enforced on input.
func EncodeRequest(request *http.Request) ([]byte, error) {
	return AppendRequest(nil, request)
}

// AppendRequest works as EncodeRequest, reusing the passed buffer.
func AppendRequest(buff []byte, request *http.Request) ([]byte, error) {
	if !httpchars.ValidToken(request.Method) {
		return nil, http.NewError("malformed method: " + request.Method)
	}

	if err := validateTarget(request.Target); err != nil {
		return nil, err
	}

	if request.Proto.String() == "" {
		return nil, http.NewError("unsupported protocol")
	}

	buff = append(buff, request.Method...)
	buff = sp(buff)
	buff = append(buff, request.Target...)
	buff = sp(buff)
	buff = append(buff, request.Proto.String()...)
	buff = crlf(buff)

	buff, err := appendHeaders(buff, request.Headers)
	if err != nil {
		return nil, err
	}

	buff = crlf(buff)
	return append(buff, request.Body...), nil
}

// EncodeResponse serializes the response. An empty reason phrase is
// substituted with the canonical one for well-known codes.
func EncodeResponse(response *http.Response) ([]byte, error) {
	return AppendResponse(nil, response)
}

// AppendResponse works as EncodeResponse, reusing the passed buffer.
func AppendResponse(buff []byte, response *http.Response) ([]byte, error) {
	if response.Code < 100 || response.Code > 599 {
		return nil, http.ErrInvalidStatusCode
	}

	if response.Proto.String() == "" {
		return nil, http.NewError("unsupported protocol")
	}

	reason := response.Reason
	if reason == "" {
		reason = status.Text(response.Code)
	}

	for i := 0; i < len(reason); i++ {
		if !httpchars.IsReasonChar(reason[i]) {
			return nil, http.NewError("malformed reason phrase")
		}
	}

	buff = append(buff, response.Proto.String()...)
	buff = sp(buff)
	buff = strconv.AppendInt(buff, int64(response.Code), 10)
	buff = sp(buff)
	buff = append(buff, reason...)
	buff = crlf(buff)

	buff, err := appendHeaders(buff, response.Headers)
	if err != nil {
		return nil, err
	}

	buff = crlf(buff)
	return append(buff, response.Body...), nil
}

// EncodeChunk frames a single chunk: hex length, CRLF, the data, CRLF.
// Note: an empty chunk encodes as the terminal zero-length chunk.
func EncodeChunk(chunk []byte) []byte {
	return AppendChunk(nil, chunk)
}

// AppendChunk works as EncodeChunk, reusing the passed buffer.
func AppendChunk(buff, chunk []byte) []byte {
	buff = strconv.AppendUint(buff, uint64(len(chunk)), 16)
	buff = crlf(buff)
	buff = append(buff, chunk...)
	return crlf(buff)
}

// EncodeChunks frames the sequence of chunks, terminated by the zero-length
// chunk. Empty chunks are skipped, as they would terminate the body
// prematurely.
func EncodeChunks(chunks [][]byte) []byte {
	var buff []byte

	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}

		buff = AppendChunk(buff, chunk)
	}

	return append(buff, chunkedFinalizer...)
}

// EncodeChunksTrailer works as EncodeChunks, placing trailer fields between
// the zero-length chunk and the final CRLF.
func EncodeChunksTrailer(chunks [][]byte, trailer *headers.Headers) ([]byte, error) {
	var buff []byte

	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}

		buff = AppendChunk(buff, chunk)
	}

	buff = append(buff, '0')
	buff = crlf(buff)

	buff, err := appendHeaders(buff, trailer)
	if err != nil {
		return nil, err
	}

	return crlf(buff), nil
}

func appendHeaders(buff []byte, h *headers.Headers) ([]byte, error) {
	if h == nil {
		return buff, nil
	}

	for key, value := range h.Iter() {
		if !httpchars.ValidToken(key) {
			return nil, http.NewError("malformed header name: " + key)
		}

		if !httpchars.ValidFieldValue(value) {
			return nil, http.ErrInvalidHeaderValue
		}

		buff = append(buff, key...)
		buff = append(buff, httpchars.COLONSP...)
		buff = append(buff, value...)
		buff = crlf(buff)
	}

	return buff, nil
}

func validateTarget(target string) error {
	if len(target) == 0 {
		return http.NewError("empty request target")
	}

	for i := 0; i < len(target); i++ {
		if target[i] <= 0x20 || target[i] >= 0x7f {
			return http.NewError("malformed request target: " + target)
		}
	}

	return nil
}

func sp(buff []byte) []byte {
	return append(buff, ' ')
}

func crlf(buff []byte) []byte {
	return append(buff, httpchars.CRLF...)
}
