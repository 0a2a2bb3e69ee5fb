package http

import (
	"github.com/indigo-web/httpcodec/http/headers"
	"github.com/indigo-web/httpcodec/http/proto"
	"github.com/indigo-web/httpcodec/http/status"
)

// Response is a single HTTP response message. The zero value isn't usable,
// construct via NewResponse.
type Response struct {
	Proto proto.Protocol
	Code  status.Code
	// Reason may be left empty, in which case the encoder substitutes the
	// canonical phrase for well-known codes.
	Reason  string
	Headers *headers.Headers
	Body    []byte
}

func NewResponse(code status.Code) *Response {
	return NewResponseVersion(code, proto.HTTP11)
}

func NewResponseVersion(code status.Code, protocol proto.Protocol) *Response {
	return &Response{
		Proto:   protocol,
		Code:    code,
		Headers: headers.New(),
	}
}

// Header appends a header field under the same syntactic rules as
// Request.Header.
func (r *Response) Header(key, value string) error {
	return appendHeader(r.Headers, key, value)
}

// WithBody replaces the body and returns the response for chaining.
func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	return r
}

func (r *Response) IsInformational() bool { return r.Code >= 100 && r.Code < 200 }
func (r *Response) IsSuccess() bool       { return r.Code >= 200 && r.Code < 300 }
func (r *Response) IsRedirect() bool      { return r.Code >= 300 && r.Code < 400 }
func (r *Response) IsClientError() bool   { return r.Code >= 400 && r.Code < 500 }
func (r *Response) IsServerError() bool   { return r.Code >= 500 && r.Code < 600 }

func (r *Response) IsChunked() bool {
	return isChunked(r.Headers)
}

func (r *Response) ContentLength() (length int64, ok bool) {
	return contentLength(r.Headers)
}

func (r *Response) IsKeepAlive() bool {
	return isKeepAlive(r.Proto, r.Headers)
}
