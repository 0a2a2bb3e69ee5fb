package httpcodec

import (
	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/hexconv"
)

type chunkedState uint8

const (
	cChunkLength chunkedState = iota + 1
	cChunkExt
	cChunkLengthCR
	cChunkBody
	cChunkBodyEnd
	cChunkBodyCR
)

// maxChunkLengthDigits caps a single chunk length at what fits into an int64.
const maxChunkLengthDigits = 15

// chunkedParser processes the chunk framing: size lines, chunk data and their
// terminators. It stops right past the zero-length chunk's size line, leaving
// the trailer section and the final CRLF to the owning decoder, which applies
// ordinary header rules there.
type chunkedParser struct {
	state        chunkedState
	lengthDigits uint8
	lineLength   int
	maxLineSize  int
	chunkLength  int64
}

func newChunkedParser(maxLineSize int) chunkedParser {
	return chunkedParser{state: cChunkLength, maxLineSize: maxLineSize}
}

func (c *chunkedParser) reset() {
	c.state = cChunkLength
	c.lengthDigits = 0
	c.lineLength = 0
	c.chunkLength = 0
}

// parse consumes data until a chunk piece is cut, the zero-length chunk is
// met (done=true), more data is needed (everything consumed, rest empty) or
// the framing is violated.
func (c *chunkedParser) parse(data []byte, lenient bool) (chunk, rest []byte, done bool, err error) {
	switch c.state {
	case cChunkLength:
		goto chunkLength
	case cChunkExt:
		goto chunkExt
	case cChunkLengthCR:
		goto chunkLengthCR
	case cChunkBody:
		goto chunkBody
	case cChunkBodyEnd:
		goto chunkBodyEnd
	case cChunkBodyCR:
		goto chunkBodyCR
	default:
		panic("unreachable code")
	}

chunkLength:
	for i := 0; i < len(data); i++ {
		switch char := data[i]; char {
		case '\r':
			if c.lengthDigits == 0 {
				return nil, nil, false, http.ErrInvalidChunkSize
			}

			data = data[i+1:]
			goto chunkLengthCR
		case '\n':
			if !lenient || c.lengthDigits == 0 {
				return nil, nil, false, http.ErrInvalidChunkSize
			}

			data = data[i+1:]
			goto chunkLengthEnd
		case ';':
			if c.lengthDigits == 0 {
				return nil, nil, false, http.ErrInvalidChunkSize
			}

			data = data[i+1:]
			goto chunkExt
		default:
			halfbyte := hexconv.Halfbyte[char]
			if halfbyte == 0xFF {
				return nil, nil, false, http.ErrInvalidChunkSize
			}

			if c.lengthDigits++; c.lengthDigits > maxChunkLengthDigits {
				return nil, nil, false, http.ErrInvalidChunkSize
			}

			c.chunkLength = c.chunkLength<<4 | int64(halfbyte)
		}
	}

	c.lineLength += len(data)
	if c.lineLength > c.maxLineSize {
		return nil, nil, false, http.NewLimitError(
			http.KindHeaderLineTooLong, "chunk size line length limit exceeded",
			c.lineLength, c.maxLineSize,
		)
	}

	c.state = cChunkLength
	return nil, nil, false, nil

chunkExt:
	// chunk extensions aren't supported, therefore completely ignored
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			if c.lineLength+i > c.maxLineSize {
				return nil, nil, false, http.NewLimitError(
					http.KindHeaderLineTooLong, "chunk size line length limit exceeded",
					c.lineLength+i, c.maxLineSize,
				)
			}

			data = data[i+1:]
			goto chunkLengthCR
		case '\n':
			if !lenient {
				return nil, nil, false, http.ErrInvalidChunkSize
			}

			data = data[i+1:]
			goto chunkLengthEnd
		}
	}

	c.lineLength += len(data)
	if c.lineLength > c.maxLineSize {
		return nil, nil, false, http.NewLimitError(
			http.KindHeaderLineTooLong, "chunk size line length limit exceeded",
			c.lineLength, c.maxLineSize,
		)
	}

	c.state = cChunkExt
	return nil, nil, false, nil

chunkLengthCR:
	if len(data) == 0 {
		c.state = cChunkLengthCR
		return nil, nil, false, nil
	}

	if data[0] != '\n' {
		return nil, nil, false, http.ErrInvalidChunkSize
	}

	data = data[1:]
	// fallthrough to chunkLengthEnd

chunkLengthEnd:
	c.lineLength = 0
	if c.chunkLength == 0 {
		// the trailer section follows, which isn't our business
		c.reset()
		return nil, data, true, nil
	}

	// fallthrough to chunkBody

chunkBody:
	{
		if len(data) == 0 {
			c.state = cChunkBody
			return nil, nil, false, nil
		}

		n := min(c.chunkLength, int64(len(data)))
		c.chunkLength -= n

		if c.chunkLength == 0 {
			c.state = cChunkBodyEnd
		} else {
			c.state = cChunkBody
		}

		return data[:n], data[n:], false, nil
	}

chunkBodyEnd:
	if len(data) == 0 {
		c.state = cChunkBodyEnd
		return nil, nil, false, nil
	}

	c.lengthDigits = 0
	switch data[0] {
	case '\r':
		data = data[1:]
		goto chunkBodyCR
	case '\n':
		if !lenient {
			return nil, nil, false, http.ErrInvalidChunkSize
		}

		data = data[1:]
		goto chunkLength
	default:
		return nil, nil, false, http.ErrInvalidChunkSize
	}

chunkBodyCR:
	if len(data) == 0 {
		c.state = cChunkBodyCR
		return nil, nil, false, nil
	}

	if data[0] != '\n' {
		return nil, nil, false, http.ErrInvalidChunkSize
	}

	data = data[1:]
	goto chunkLength
}
