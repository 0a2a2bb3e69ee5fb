package httpchars

import "strings"

var (
	CRLF    = []byte("\r\n")
	COLONSP = []byte(": ")
)

type octet byte

const (
	octetToken octet = 1 << iota
	octetSeparator
	octetFieldVChar
	octetReasonChar
)

// separators as per RFC 9110 section 5.6.2. Everything printable except them
// and whitespace forms the tchar set.
const separators = "()<>@,;:\\\"/[]?={} \t"

var octets = func() (lut [256]octet) {
	for c := 0x21; c <= 0x7e; c++ {
		if strings.IndexByte(separators, byte(c)) == -1 {
			lut[c] |= octetToken
		} else {
			lut[c] |= octetSeparator
		}
	}

	// field-value content: VCHAR, SP, HTAB and obs-text (0x80-0xFF)
	for c := 0x21; c <= 0x7e; c++ {
		lut[c] |= octetFieldVChar
	}
	for c := 0x80; c <= 0xff; c++ {
		lut[c] |= octetFieldVChar
	}
	lut[' '] |= octetFieldVChar | octetReasonChar
	lut['\t'] |= octetFieldVChar | octetReasonChar

	// reason-phrase is limited to VCHAR, SP and HTAB
	for c := 0x21; c <= 0x7e; c++ {
		lut[c] |= octetReasonChar
	}

	return lut
}()

// IsToken tells whether the char belongs to the tchar set.
func IsToken(char byte) bool {
	return octets[char]&octetToken != 0
}

// IsFieldChar tells whether the char may appear inside a header value,
// which is VCHAR, SP, HTAB or obs-text.
func IsFieldChar(char byte) bool {
	return octets[char]&octetFieldVChar != 0
}

// IsReasonChar tells whether the char may appear inside a reason-phrase.
func IsReasonChar(char byte) bool {
	return octets[char]&octetReasonChar != 0
}

// ValidToken tells whether the string is a non-empty sequence of tchars.
func ValidToken(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !IsToken(s[i]) {
			return false
		}
	}

	return true
}

// ValidFieldValue tells whether the string contains only characters allowed
// inside a header value. CR and LF in particular are not.
func ValidFieldValue(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsFieldChar(s[i]) {
			return false
		}
	}

	return true
}
