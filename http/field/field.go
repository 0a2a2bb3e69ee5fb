// Package field provides structured views over individual header values.
// Every parser here takes the value of an already decoded header, returns a
// typed representation or an error, and never mutates its input. Each type
// serializes back via String, and for canonical inputs parse(String(parse(v)))
// is parse(v).
package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// Param is a single name=value parameter of a header value. Names are
// compared ASCII case-insensitively, the order of parameters is preserved.
type Param struct {
	Key, Value string
}

// splitList cuts the value at every separator standing outside of a quoted
// string, stripping whitespace around elements and skipping empty ones.
func splitList(value string, sep byte) (elements []string) {
	var (
		quoted  bool
		escaped bool
		begin   int
	)

	for i := 0; i < len(value); i++ {
		switch {
		case escaped:
			escaped = false
		case value[i] == '\\' && quoted:
			escaped = true
		case value[i] == '"':
			quoted = !quoted
		case value[i] == sep && !quoted:
			if element := strutil.StripWS(value[begin:i]); len(element) > 0 {
				elements = append(elements, element)
			}

			begin = i + 1
		}
	}

	if element := strutil.StripWS(value[begin:]); len(element) > 0 {
		elements = append(elements, element)
	}

	return elements
}

// parseParams parses a ";"-separated parameter list. Parameter names must be
// tokens, values are unquoted on the way.
func parseParams(raw string) (params []Param, err error) {
	for _, element := range splitList(raw, ';') {
		key, value, found := strings.Cut(element, "=")
		key = strutil.StripWS(key)

		if !httpchars.ValidToken(key) {
			return nil, http.NewError("malformed parameter name: " + key)
		}

		if found {
			value = strutil.Unquote(strutil.StripWS(value))
		}

		params = append(params, Param{Key: strings.ToLower(key), Value: value})
	}

	return params, nil
}

func appendParams(b *strings.Builder, params []Param) {
	for _, param := range params {
		b.WriteString("; ")
		b.WriteString(param.Key)
		b.WriteByte('=')
		b.WriteString(quoteIfNeeded(param.Value))
	}
}

func quoteIfNeeded(value string) string {
	if httpchars.ValidToken(value) {
		return value
	}

	return strutil.Quote(value)
}

func lookupParam(params []Param, key string) (value string, found bool) {
	for _, param := range params {
		if strings.EqualFold(param.Key, key) {
			return param.Value, true
		}
	}

	return "", false
}

// Qualities are stored in thousandths to dodge float comparisons: q=0.73
// becomes 730, an omitted quality defaults to 1000.
const DefaultQuality = 1000

func parseQuality(raw string) (q int, ok bool) {
	if len(raw) == 0 || raw[0] != '0' && raw[0] != '1' {
		return 0, false
	}

	q = int(raw[0]-'0') * 1000
	if len(raw) == 1 {
		return q, true
	}

	if raw[1] != '.' || len(raw) > 5 {
		return 0, false
	}

	scale := 100
	for i := 2; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}

		q += int(raw[i]-'0') * scale
		scale /= 10
	}

	if q > 1000 {
		return 0, false
	}

	return q, true
}

func appendQuality(b *strings.Builder, q int) {
	if q == DefaultQuality {
		return
	}

	b.WriteString(";q=")
	b.WriteString(formatQuality(q))
}

func formatQuality(q int) string {
	switch {
	case q <= 0:
		return "0"
	case q >= 1000:
		return "1"
	}

	digits := []byte{'0', '.', byte('0' + q/100), byte('0' + q/10%10), byte('0' + q%10)}
	end := len(digits)
	for end > 3 && digits[end-1] == '0' {
		end--
	}

	return string(digits[:end])
}

// cutQuality extracts the q parameter out of a parsed parameter list,
// returning the rest untouched.
func cutQuality(params []Param) (rest []Param, q int, err error) {
	q = DefaultQuality

	for _, param := range params {
		if param.Key == "q" {
			quality, ok := parseQuality(param.Value)
			if !ok {
				return nil, 0, http.NewError("malformed quality value: " + param.Value)
			}

			q = quality
			continue
		}

		rest = append(rest, param)
	}

	return rest, q, nil
}
