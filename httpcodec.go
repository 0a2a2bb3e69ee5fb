// Package httpcodec is a Sans-I/O HTTP/1.1 message codec: it turns Request
// and Response values into bytes and bytes back into messages, without ever
// touching a socket. The transport belongs to the caller, who pushes received
// bytes in via Feed and sends whatever the encoder produced.
//
// The decoders are incremental: bytes may arrive cut at arbitrary
// boundaries, messages come out as soon as they are complete, and anything
// past a message boundary is kept for the next one, so HTTP/1.1 pipelining
// comes for free. Every point of growth is guarded by config.Limits.
//
// Structured views over individual header values (Content-Type, Accept,
// Cache-Control, ETags, ranges, credentials and the rest of the family) live
// in the http/field package and operate on decoded messages independently of
// the codec itself.
package httpcodec
