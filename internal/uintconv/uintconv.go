package uintconv

import (
	"errors"
	"math"

	"github.com/indigo-web/httpcodec/internal/hexconv"
)

var ErrBadNumber = errors.New("malformed number")

// Dec is a tiny implementation of strconv.ParseUint in base 10, rejecting
// empty input and anything overflowing int64.
func Dec(raw string) (num int64, err error) {
	if len(raw) == 0 {
		return 0, ErrBadNumber
	}

	for i := 0; i < len(raw); i++ {
		char := raw[i] - '0'
		if char > 9 {
			return 0, ErrBadNumber
		}

		if num > (math.MaxInt64-int64(char))/10 {
			return 0, ErrBadNumber
		}

		num = num*10 + int64(char)
	}

	return num, nil
}

// Hex parses a base-16 number, rejecting empty input and overflows.
func Hex(raw string) (num int64, err error) {
	if len(raw) == 0 {
		return 0, ErrBadNumber
	}

	for i := 0; i < len(raw); i++ {
		halfbyte := hexconv.Halfbyte[raw[i]]
		if halfbyte == 0xFF {
			return 0, ErrBadNumber
		}

		if num > math.MaxInt64>>4 {
			return 0, ErrBadNumber
		}

		num = num<<4 | int64(halfbyte)
	}

	return num, nil
}
