package http

import (
	"github.com/indigo-web/httpcodec/http/headers"
	"github.com/indigo-web/httpcodec/http/proto"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
	"github.com/indigo-web/httpcodec/internal/uintconv"
	"github.com/indigo-web/utils/strcomp"
)

func appendHeader(h *headers.Headers, key, value string) error {
	if !httpchars.ValidToken(key) {
		return NewError("malformed header name: " + key)
	}

	if !httpchars.ValidFieldValue(value) {
		return ErrInvalidHeaderValue
	}

	h.Add(key, strutil.StripWS(value))
	return nil
}

func isChunked(h *headers.Headers) bool {
	last := ""

	for _, value := range h.Values("Transfer-Encoding") {
		strutil.WalkTokens(value, func(token string) bool {
			last = token
			return true
		})
	}

	return strcomp.EqualFold(last, "chunked")
}

func contentLength(h *headers.Headers) (length int64, ok bool) {
	values := h.Values("Content-Length")
	if len(values) != 1 {
		return 0, false
	}

	length, err := uintconv.Dec(strutil.StripWS(values[0]))
	if err != nil {
		return 0, false
	}

	return length, true
}

func isKeepAlive(protocol proto.Protocol, h *headers.Headers) bool {
	switch protocol {
	case proto.HTTP10:
		// HTTP/1.0 connections die after the message unless asked otherwise
		return strcomp.EqualFold(h.Value("Connection"), "keep-alive")
	default:
		// in case of HTTP/1.1, keep-alive may be only disabled
		return !strcomp.EqualFold(h.Value("Connection"), "close")
	}
}
