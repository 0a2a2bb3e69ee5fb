package httpcodec

import (
	"bytes"

	"github.com/indigo-web/httpcodec/config"
	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/proto"
	"github.com/indigo-web/httpcodec/http/status"
	"github.com/indigo-web/httpcodec/internal/httpchars"
)

// ResponseDecoder is the response-side counterpart of RequestDecoder. On top
// of the common machinery it understands bodyless statuses, until-close
// framing completed via FeedEOF, HEAD responses and 1xx interim responses.
type ResponseDecoder struct {
	d        decoder
	response *http.Response
	skipBody bool
}

func NewResponseDecoder(opts ...Option) *ResponseDecoder {
	return NewResponseDecoderLimits(config.Default(), opts...)
}

func NewResponseDecoderLimits(limits config.Limits, opts ...Option) *ResponseDecoder {
	d := &ResponseDecoder{}
	d.d = newDecoder(limits, opts)
	d.d.parseStartLine = d.parseStatusLine
	d.d.decideFraming = d.framing

	return d
}

// SkipBody tells the decoder that upcoming responses answer HEAD requests,
// so their framing headers describe a body that was never sent. The flag
// stays until changed, the caller knows best which requests it issued.
func (d *ResponseDecoder) SkipBody(skip bool) {
	d.skipBody = skip
}

func (d *ResponseDecoder) Feed(data []byte) error {
	return d.d.feed(data)
}

// FeedEOF signals the end of the stream. Legal between messages and inside
// an until-close body, which it completes; anywhere else the stream was
// truncated, which is UnexpectedEOF.
func (d *ResponseDecoder) FeedEOF() error {
	return d.d.feedEOF()
}

// Decode advances as far as the buffered bytes allow, returning a complete
// response or nil when more bytes are needed. Under WithInterimSkip interim
// responses are consumed silently, except 101: everything past Switching
// Protocols belongs to another protocol, so it is always delivered and the
// switched bytes stay observable via Remaining.
func (d *ResponseDecoder) Decode() (*http.Response, error) {
	for {
		complete, err := d.d.run()
		if err != nil || !complete || d.response == nil {
			return nil, err
		}

		response := d.response
		response.Body = d.d.takeBody()
		d.response = nil

		if d.d.opts.interimSkip && response.IsInformational() &&
			response.Code != status.SwitchingProtocols {
			d.d.reset()
			continue
		}

		return response, nil
	}
}

func (d *ResponseDecoder) Reset() {
	d.d.reset()
	d.response = nil
}

func (d *ResponseDecoder) Remaining() []byte {
	return d.d.remaining()
}

func (d *ResponseDecoder) parseStatusLine(line []byte) error {
	sp := bytes.IndexByte(line, ' ')
	if sp == -1 {
		return http.NewError("malformed status line: " + string(line))
	}

	protocol := proto.FromBytes(line[:sp])
	if protocol == proto.Unknown {
		return http.NewError("unsupported protocol: " + string(line[:sp]))
	}

	rest := line[sp+1:]
	codeRaw, reason := cutReason(rest)

	code, ok := parseStatusCode(codeRaw)
	if !ok {
		return http.ErrInvalidStatusCode
	}

	for i := 0; i < len(reason); i++ {
		if !httpchars.IsReasonChar(reason[i]) {
			return http.NewError("malformed reason phrase")
		}
	}

	d.response = http.NewResponseVersion(code, protocol)
	d.response.Reason = string(reason)
	d.d.headers = d.response.Headers

	return nil
}

// cutReason splits "3DIGIT SP reason" into the two parts. The reason,
// together with the space in front of it, may be absent altogether.
func cutReason(rest []byte) (code, reason []byte) {
	sp := bytes.IndexByte(rest, ' ')
	if sp == -1 {
		return rest, nil
	}

	return rest[:sp], rest[sp+1:]
}

func parseStatusCode(raw []byte) (code status.Code, ok bool) {
	if len(raw) != 3 {
		return 0, false
	}

	for _, char := range raw {
		if char < '0' || char > '9' {
			return 0, false
		}

		code = code*10 + status.Code(char-'0')
	}

	if code < 100 || code > 599 {
		return 0, false
	}

	return code, true
}

func (d *ResponseDecoder) framing() (bodyKind, int64, error) {
	h := d.response.Headers

	// responses to HEAD requests carry framing headers of a body that was
	// never sent, so the flag takes precedence over everything
	if d.skipBody {
		return bodyNone, 0, nil
	}

	if h.Has("Transfer-Encoding") {
		if h.Has("Content-Length") {
			// potential response smuggling (RFC 9112 section 6.1)
			return 0, 0, http.NewError("both Content-Length and Transfer-Encoding are present")
		}

		if d.response.IsChunked() {
			return bodyChunked, 0, nil
		}

		// codings without a final chunked can only be delimited by closing
		// the connection
		return bodyUntilClose, 0, nil
	}

	length, err := collapseContentLength(h.Values("Content-Length"))
	if err != nil {
		return 0, 0, err
	}

	if length >= 0 {
		return bodyFixed, length, nil
	}

	if d.response.IsInformational() ||
		d.response.Code == status.NoContent ||
		d.response.Code == status.NotModified {
		return bodyNone, 0, nil
	}

	return bodyUntilClose, 0, nil
}
