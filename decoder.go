package httpcodec

import (
	"bytes"
	"strings"

	"github.com/indigo-web/httpcodec/config"
	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/headers"
	"github.com/indigo-web/httpcodec/internal/buffer"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
	"github.com/indigo-web/utils/uf"
)

type options struct {
	lenient     bool
	interimSkip bool
}

type Option func(*options)

// WithLenient makes the decoder accept a bare LF as a line terminator
// wherever CRLF is expected. Nothing else is relaxed: obs-fold and
// Content-Length/Transfer-Encoding conflicts stay fatal.
func WithLenient() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// WithInterimSkip makes the response decoder silently consume 1xx interim
// responses and deliver the final response only. 101 Switching Protocols is
// never skipped, as everything past it belongs to another protocol. Without
// the option each interim response is delivered as a message of its own.
func WithInterimSkip() Option {
	return func(o *options) {
		o.interimSkip = true
	}
}

// decoder is the machinery shared by the request and the response decoders:
// buffering, line scanning, header and trailer sections, and all the body
// framings. The owners parameterize it with a start-line parser and a framing
// decision instead of overriding anything.
type decoder struct {
	limits config.Limits
	opts   options
	buf    buffer.Buffer
	state  state
	err    error
	eof    bool

	// parseStartLine consumes the start-line, terminator excluded. The owner
	// is supposed to begin assembling a fresh message here and point headers
	// at it.
	parseStartLine func(line []byte) error
	// decideFraming inspects the owner's in-flight message headers once they
	// are complete.
	decideFraming func() (bodyKind, int64, error)
	// headers of the in-flight message, set by parseStartLine.
	headers *headers.Headers

	skipEmptyLines bool
	headersCount   int
	bodyLeft       int64
	body           []byte
	chunked        chunkedParser
}

func newDecoder(limits config.Limits, opts []Option) decoder {
	d := decoder{
		limits:  limits,
		buf:     buffer.New(limits.MaxBufferSize),
		state:   sIdle,
		chunked: newChunkedParser(limits.MaxHeaderLineSize),
	}

	for _, opt := range opts {
		opt(&d.opts)
	}

	return d
}

// feed appends the data to the internal buffer. Bytes already committed to
// the in-flight message's body don't count against the buffer limit, only
// pending ones do.
func (d *decoder) feed(data []byte) error {
	if d.err != nil {
		return d.err
	}

	if !d.buf.Append(data) {
		return d.fail(http.NewLimitError(
			http.KindBufferOverflow, "buffer size limit exceeded",
			d.buf.Len()+len(data), d.limits.MaxBufferSize,
		))
	}

	return nil
}

// feedEOF signals that no more bytes will ever arrive. It is legal while
// idle between messages and inside an until-close body, where it completes
// the message.
func (d *decoder) feedEOF() error {
	if d.err != nil {
		return d.err
	}

	switch {
	case d.state == sBodyUntilClose,
		d.state == sDone,
		d.state == sIdle && d.buf.Len() == 0:
		d.eof = true
		return nil
	default:
		return d.fail(http.ErrUnexpectedEOF)
	}
}

// reset brings the decoder back to the idle state, dropping the in-flight
// message yet preserving any bytes past the last completed one.
func (d *decoder) reset() {
	d.state = sIdle
	d.err = nil
	d.eof = false
	d.headers = nil
	d.headersCount = 0
	d.bodyLeft = 0
	d.body = nil
	d.chunked.reset()
}

// remaining exposes the unconsumed buffer contents: under pipelining these
// are the bytes of the next message, after an accepted Upgrade they belong
// to the switched protocol. The view is valid until the next feed.
func (d *decoder) remaining() []byte {
	return d.buf.Preview()
}

func (d *decoder) fail(err error) error {
	d.err = err
	d.state = sFailed
	return err
}

// run advances the state machine as far as the buffered bytes allow.
// complete=true means the in-flight message is fully assembled.
func (d *decoder) run() (complete bool, err error) {
	if d.err != nil {
		return false, d.err
	}

	complete, err = d.advance()
	if err != nil {
		return false, d.fail(err)
	}

	return complete, nil
}

func (d *decoder) advance() (complete bool, err error) {
	for {
		switch d.state {
		case sIdle:
			if d.skipEmptyLines && !d.discardEmptyLines() {
				return false, nil
			}

			if d.buf.Len() == 0 {
				return false, nil
			}

			d.state = sStartLine
		case sStartLine:
			line, pending, err := d.nextLine()
			if err != nil {
				return false, err
			}

			if pending {
				return false, nil
			}

			if err = d.parseStartLine(line); err != nil {
				return false, err
			}

			d.state = sHeaders
		case sHeaders, sTrailers:
			done, pending, err := d.fieldLines()
			if err != nil {
				return false, err
			}

			if pending {
				return false, nil
			}

			if !done {
				continue
			}

			if d.state == sTrailers {
				d.state = sDone
				continue
			}

			if err = d.enterBody(); err != nil {
				return false, err
			}
		case sBodyFixed:
			data := d.buf.Preview()
			n := min(d.bodyLeft, int64(len(data)))
			d.body = append(d.body, data[:n]...)
			d.buf.Discard(int(n))

			if d.bodyLeft -= n; d.bodyLeft > 0 {
				return false, nil
			}

			d.state = sDone
		case sBodyChunked:
			pending, err := d.chunkedBody()
			if err != nil {
				return false, err
			}

			if pending {
				return false, nil
			}

			d.state = sTrailers
		case sBodyUntilClose:
			data := d.buf.Preview()
			if len(d.body)+len(data) > d.limits.MaxBodySize {
				return false, http.NewLimitError(
					http.KindBodyTooLarge, "body size limit exceeded",
					len(d.body)+len(data), d.limits.MaxBodySize,
				)
			}

			d.body = append(d.body, data...)
			d.buf.Discard(len(data))

			if !d.eof {
				return false, nil
			}

			d.state = sDone
		case sDone:
			return true, nil
		default:
			panic("unreachable code")
		}
	}
}

// discardEmptyLines drops CRLFs in front of the start-line (RFC 9112 section
// 2.2). Returns false when the buffer was exhausted in the process.
func (d *decoder) discardEmptyLines() bool {
	for {
		data := d.buf.Preview()

		switch {
		case len(data) == 0:
			return false
		case data[0] == '\n' && d.opts.lenient:
			d.buf.Discard(1)
		case data[0] == '\r':
			if len(data) == 1 {
				return false
			}

			if data[1] != '\n' {
				return true
			}

			d.buf.Discard(2)
		default:
			return true
		}
	}
}

// nextLine cuts the next line off the buffer, terminator excluded. A line
// whose unterminated prefix already overgrows the limit fails without
// waiting for the terminator.
func (d *decoder) nextLine() (line []byte, pending bool, err error) {
	data := d.buf.Preview()

	lf := bytes.IndexByte(data, '\n')
	if lf == -1 {
		prefix := len(data)
		if prefix > 0 && data[prefix-1] == '\r' {
			prefix--
		}

		if prefix > d.limits.MaxHeaderLineSize {
			return nil, false, http.NewLimitError(
				http.KindHeaderLineTooLong, "line length limit exceeded",
				prefix, d.limits.MaxHeaderLineSize,
			)
		}

		return nil, true, nil
	}

	line = data[:lf]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	} else if !d.opts.lenient {
		return nil, false, http.NewError("bare LF line terminator")
	}

	if len(line) > d.limits.MaxHeaderLineSize {
		return nil, false, http.NewLimitError(
			http.KindHeaderLineTooLong, "line length limit exceeded",
			len(line), d.limits.MaxHeaderLineSize,
		)
	}

	d.buf.Discard(lf + 1)
	return line, false, nil
}

// fieldLines consumes a single header or trailer line per call. done=true
// once the empty line closing the section is met.
func (d *decoder) fieldLines() (done, pending bool, err error) {
	line, pending, err := d.nextLine()
	if err != nil || pending {
		return false, pending, err
	}

	if len(line) == 0 {
		return true, false, nil
	}

	if line[0] == ' ' || line[0] == '\t' {
		// obs-fold continuations are a smuggling vector (RFC 7230 section
		// 3.2.4), therefore rejected regardless of leniency
		return false, false, http.ErrInvalidHeaderValue
	}

	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return false, false, http.NewError("header line misses a colon: " + string(line))
	}

	key := line[:colon]
	if !httpchars.ValidToken(uf.B2S(key)) {
		return false, false, http.NewError("malformed header name: " + string(key))
	}

	value := strutil.StripWS(uf.B2S(line[colon+1:]))
	if !httpchars.ValidFieldValue(value) {
		return false, false, http.ErrInvalidHeaderValue
	}

	if d.headersCount++; d.headersCount > d.limits.MaxHeadersNumber {
		return false, false, http.NewLimitError(
			http.KindTooManyHeaders, "headers number limit exceeded",
			d.headersCount, d.limits.MaxHeadersNumber,
		)
	}

	// the line is a view into the buffer, copy both parts out
	d.headers.Add(string(key), strings.Clone(value))
	return false, false, nil
}

func (d *decoder) enterBody() (err error) {
	kind, length, err := d.decideFraming()
	if err != nil {
		return err
	}

	switch kind {
	case bodyNone:
		d.state = sDone
	case bodyFixed:
		if length > int64(d.limits.MaxBodySize) {
			return http.NewLimitError(
				http.KindBodyTooLarge, "body size limit exceeded",
				int(length), d.limits.MaxBodySize,
			)
		}

		d.bodyLeft = length
		d.body = make([]byte, 0, length)
		d.state = sBodyFixed

		if length == 0 {
			d.state = sDone
		}
	case bodyChunked:
		d.state = sBodyChunked
	case bodyUntilClose:
		d.state = sBodyUntilClose
	default:
		panic("unreachable code")
	}

	return nil
}

// chunkedBody drains as much of the chunked framing as the buffer holds.
// pending=false once the zero-length chunk is consumed.
func (d *decoder) chunkedBody() (pending bool, err error) {
	for d.buf.Len() > 0 {
		data := d.buf.Preview()

		chunk, rest, done, err := d.chunked.parse(data, d.opts.lenient)
		if err != nil {
			return false, err
		}

		if len(chunk) > 0 {
			if len(d.body)+len(chunk) > d.limits.MaxBodySize {
				return false, http.NewLimitError(
					http.KindBodyTooLarge, "body size limit exceeded",
					len(d.body)+len(chunk), d.limits.MaxBodySize,
				)
			}

			d.body = append(d.body, chunk...)
		}

		d.buf.Discard(len(data) - len(rest))

		if done {
			return false, nil
		}

		if len(chunk) == 0 && len(rest) == 0 {
			break
		}
	}

	return true, nil
}

// takeBody transfers the assembled body out of the decoder.
func (d *decoder) takeBody() []byte {
	body := d.body
	d.body = nil
	return body
}
