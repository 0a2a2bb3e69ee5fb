package config

import "math"

// Limits holds the resource restrictions the decoder enforces at every growth
// point. The zero value is unusable; always start from Default() and modify
// what's needed.
type Limits struct {
	// MaxBufferSize limits the amount of not yet consumed bytes the decoder
	// agrees to hold. Body bytes already handed over to the message don't
	// count, those are limited by MaxBodySize instead.
	MaxBufferSize int
	// MaxHeadersNumber limits the number of header fields in a single
	// message, trailer fields included.
	MaxHeadersNumber int
	// MaxHeaderLineSize limits the length of a single line: the start-line,
	// a field line or a chunk-size line. The limit applies to incomplete
	// lines as well, so a line with no terminator in sight fails early.
	MaxHeaderLineSize int
	// MaxBodySize limits the total decoded body length, however it was
	// framed.
	MaxBodySize int
}

// Default returns well-balanced limits, following the common practice of
// mainstream web servers.
func Default() Limits {
	return Limits{
		MaxBufferSize:     64 * 1024,
		MaxHeadersNumber:  100,
		MaxHeaderLineSize: 8 * 1024,
		MaxBodySize:       10 * 1024 * 1024,
	}
}

// Unlimited lifts every restriction. Used in tests only, never expose it to
// untrusted input.
func Unlimited() Limits {
	return Limits{
		MaxBufferSize:     math.MaxInt,
		MaxHeadersNumber:  math.MaxInt,
		MaxHeaderLineSize: math.MaxInt,
		MaxBodySize:       math.MaxInt,
	}
}
