package http

import (
	"github.com/indigo-web/httpcodec/http/headers"
	"github.com/indigo-web/httpcodec/http/proto"
)

// Request is a single HTTP request message. The zero value isn't usable,
// construct via NewRequest.
type Request struct {
	// Method is any token. The codec doesn't restrict the set of methods.
	Method string
	// Target is the request-target exactly as it appears on the wire.
	// Use field.ParseURI for a structured view.
	Target string
	Proto  proto.Protocol
	// Headers preserve the order of insertion. Duplicate field names are
	// allowed.
	Headers *headers.Headers
	Body    []byte
}

// NewRequest constructs a request with empty headers and body, defaulting to
// HTTP/1.1.
func NewRequest(method, target string) *Request {
	return NewRequestVersion(method, target, proto.HTTP11)
}

func NewRequestVersion(method, target string, protocol proto.Protocol) *Request {
	return &Request{
		Method:  method,
		Target:  target,
		Proto:   protocol,
		Headers: headers.New(),
	}
}

// Header appends a header field, rejecting names that aren't tokens and
// values containing CR, LF or anything outside HTAB, SP, VCHAR and obs-text.
func (r *Request) Header(key, value string) error {
	return appendHeader(r.Headers, key, value)
}

// WithBody replaces the body and returns the request for chaining.
func (r *Request) WithBody(body []byte) *Request {
	r.Body = body
	return r
}

// IsChunked tells whether the message body uses the chunked transfer coding,
// which is the case when the last Transfer-Encoding token is "chunked".
func (r *Request) IsChunked() bool {
	return isChunked(r.Headers)
}

// ContentLength returns the value of a single numeric Content-Length field.
// It reports absence on missing, malformed or conflicting fields; the decoder
// treats the two latter cases as fatal on its own.
func (r *Request) ContentLength() (length int64, ok bool) {
	return contentLength(r.Headers)
}

// IsKeepAlive tells whether the connection stays open after the message:
// HTTP/1.1 defaults to true unless "Connection: close", HTTP/1.0 defaults to
// false unless "Connection: keep-alive".
func (r *Request) IsKeepAlive() bool {
	return isKeepAlive(r.Proto, r.Headers)
}
