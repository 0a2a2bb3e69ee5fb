package httpcodec

import (
	"bytes"

	"github.com/indigo-web/httpcodec/config"
	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/proto"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
	"github.com/indigo-web/httpcodec/internal/uintconv"
	"github.com/indigo-web/utils/uf"
	"github.com/scott-ainsworth/go-ascii"
)

// RequestDecoder incrementally assembles requests out of a byte stream. Push
// bytes in via Feed, pull messages out via Decode; the decoder performs no
// I/O of its own. A single instance serves a whole connection: Reset between
// messages preserves the bytes of pipelined successors.
type RequestDecoder struct {
	d       decoder
	request *http.Request
}

func NewRequestDecoder(opts ...Option) *RequestDecoder {
	return NewRequestDecoderLimits(config.Default(), opts...)
}

func NewRequestDecoderLimits(limits config.Limits, opts ...Option) *RequestDecoder {
	d := &RequestDecoder{}
	d.d = newDecoder(limits, opts)
	// empty lines in front of the request-line are tolerated (RFC 9112
	// section 2.2)
	d.d.skipEmptyLines = true
	d.d.parseStartLine = d.parseRequestLine
	d.d.decideFraming = d.framing

	return d
}

// Feed appends the bytes to the internal buffer. The bytes aren't inspected
// until Decode. Fails with BufferOverflow if pending bytes would exceed
// Limits.MaxBufferSize.
func (d *RequestDecoder) Feed(data []byte) error {
	return d.d.feed(data)
}

// FeedEOF signals the end of the stream. Legal only between messages;
// anywhere else the stream was truncated, which is UnexpectedEOF.
func (d *RequestDecoder) FeedEOF() error {
	return d.d.feedEOF()
}

// Decode advances as far as the buffered bytes allow. It returns a complete
// request, or nil when more bytes are needed. Errors are sticky: once failed,
// the decoder repeats the same error until Reset.
func (d *RequestDecoder) Decode() (*http.Request, error) {
	complete, err := d.d.run()
	if err != nil || !complete || d.request == nil {
		return nil, err
	}

	request := d.request
	request.Body = d.d.takeBody()
	d.request = nil

	return request, nil
}

// Reset prepares the decoder for the next message on the same stream. Bytes
// past the last completed message are preserved, which is what makes
// pipelining work.
func (d *RequestDecoder) Reset() {
	d.d.reset()
	d.request = nil
}

// Remaining exposes unconsumed buffered bytes. The view is read-only and
// valid until the next Feed.
func (d *RequestDecoder) Remaining() []byte {
	return d.d.remaining()
}

func (d *RequestDecoder) parseRequestLine(line []byte) error {
	sp := bytes.IndexByte(line, ' ')
	if sp == -1 {
		return http.NewError("malformed request line: " + string(line))
	}

	method := line[:sp]
	if !httpchars.ValidToken(uf.B2S(method)) {
		return http.NewError("malformed method: " + string(method))
	}

	rest := line[sp+1:]
	sp = bytes.IndexByte(rest, ' ')
	if sp == -1 {
		return http.NewError("malformed request line: " + string(line))
	}

	target := rest[:sp]
	if len(target) == 0 {
		return http.NewError("empty request target")
	}

	for i := 0; i < len(target); i++ {
		if !ascii.IsPrint(target[i]) {
			return http.NewError("malformed request target: " + string(target))
		}
	}

	protocol := proto.FromBytes(rest[sp+1:])
	if protocol == proto.Unknown {
		return http.NewError("unsupported protocol: " + string(rest[sp+1:]))
	}

	d.request = http.NewRequestVersion(string(method), string(target), protocol)
	d.d.headers = d.request.Headers

	return nil
}

func (d *RequestDecoder) framing() (bodyKind, int64, error) {
	h := d.request.Headers

	if h.Has("Transfer-Encoding") {
		if h.Has("Content-Length") {
			// potential request smuggling (RFC 9112 section 6.1)
			return 0, 0, http.NewError("both Content-Length and Transfer-Encoding are present")
		}

		if !d.request.IsChunked() {
			return 0, 0, http.NewError("the final Transfer-Encoding coding isn't chunked")
		}

		return bodyChunked, 0, nil
	}

	length, err := collapseContentLength(h.Values("Content-Length"))
	if err != nil {
		return 0, 0, err
	}

	if length == -1 {
		return bodyNone, 0, nil
	}

	return bodyFixed, length, nil
}

// collapseContentLength folds repeated identical Content-Length values into
// one, as intermediaries are known to duplicate the field. Differing values
// are a framing disagreement, hence fatal. Returns -1 for an absent field.
func collapseContentLength(values []string) (int64, error) {
	if len(values) == 0 {
		return -1, nil
	}

	first := strutil.StripWS(values[0])
	for _, value := range values[1:] {
		if strutil.StripWS(value) != first {
			return 0, http.NewError("conflicting Content-Length values")
		}
	}

	length, err := uintconv.Dec(first)
	if err != nil {
		return 0, http.NewError("malformed Content-Length: " + first)
	}

	return length, nil
}
