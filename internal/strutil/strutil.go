package strutil

import (
	"strings"

	"github.com/indigo-web/httpcodec/internal/hexconv"
)

func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// StripWS removes optional whitespace from both ends.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// CutHeader splits a header value into the value itself and its parameters,
// stripping the whitespace in front of the parameters.
func CutHeader(header string) (value, params string) {
	sep := strings.IndexByte(header, ';')
	if sep == -1 {
		return header, ""
	}

	return header[:sep], LStripWS(header[sep+1:])
}

// Unquote strips the surrounding dquotes, if any, and unescapes quoted-pairs.
func Unquote(str string) string {
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return str
	}

	str = str[1 : len(str)-1]
	if strings.IndexByte(str, '\\') == -1 {
		return str
	}

	b := make([]byte, 0, len(str))
	for i := 0; i < len(str); i++ {
		if str[i] == '\\' && i+1 < len(str) {
			i++
		}

		b = append(b, str[i])
	}

	return string(b)
}

// Quote wraps the string into dquotes, escaping dquotes and backslashes inside.
func Quote(str string) string {
	var b strings.Builder
	b.Grow(len(str) + 2)
	b.WriteByte('"')

	for i := 0; i < len(str); i++ {
		if str[i] == '"' || str[i] == '\\' {
			b.WriteByte('\\')
		}

		b.WriteByte(str[i])
	}

	b.WriteByte('"')
	return b.String()
}

// PercentDecode decodes %HH escapes, case-insensitively. Malformed escapes
// render the input invalid.
func PercentDecode(str string) (string, bool) {
	if strings.IndexByte(str, '%') == -1 {
		return str, true
	}

	b := make([]byte, 0, len(str))
	for i := 0; i < len(str); i++ {
		if str[i] != '%' {
			b = append(b, str[i])
			continue
		}

		if i+2 >= len(str) || !hexconv.Is(str[i+1]) || !hexconv.Is(str[i+2]) {
			return "", false
		}

		b = append(b, hexconv.Halfbyte[str[i+1]]<<4|hexconv.Halfbyte[str[i+2]])
		i += 2
	}

	return string(b), true
}

// WalkTokens calls yield for every comma-separated element of the list,
// whitespace-stripped. Empty elements are skipped.
func WalkTokens(value string, yield func(token string) bool) {
	for len(value) > 0 {
		var token string

		if comma := strings.IndexByte(value, ','); comma == -1 {
			token, value = value, ""
		} else {
			token, value = value[:comma], value[comma+1:]
		}

		if token = StripWS(token); len(token) == 0 {
			continue
		}

		if !yield(token) {
			return
		}
	}
}
