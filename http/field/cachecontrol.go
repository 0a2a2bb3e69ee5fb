package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
	"github.com/indigo-web/httpcodec/internal/uintconv"
)

// Directive is a single Cache-Control directive. HasValue distinguishes
// "max-age=0" from a bare flag like "no-store".
type Directive struct {
	Name     string
	Value    string
	HasValue bool
}

// CacheControl is the ordered directive list. Request and response
// directives are not told apart: the header's owner knows which side it is.
type CacheControl struct {
	Directives []Directive
}

func ParseCacheControl(raw string) (CacheControl, error) {
	var cc CacheControl

	for _, element := range splitList(raw, ',') {
		name, value, found := strings.Cut(element, "=")
		name = strutil.StripWS(name)

		if !httpchars.ValidToken(name) {
			return CacheControl{}, http.NewError("malformed directive name: " + name)
		}

		directive := Directive{Name: strings.ToLower(name)}

		if found {
			directive.Value = strutil.Unquote(strutil.StripWS(value))
			directive.HasValue = true
		}

		cc.Directives = append(cc.Directives, directive)
	}

	if len(cc.Directives) == 0 {
		return CacheControl{}, http.NewError("empty Cache-Control header")
	}

	return cc, nil
}

// Get returns the value of the named directive. A present valueless
// directive yields found=true with an empty value.
func (c CacheControl) Get(name string) (value string, found bool) {
	for _, directive := range c.Directives {
		if strings.EqualFold(directive.Name, name) {
			return directive.Value, true
		}
	}

	return "", false
}

// MaxAge returns the max-age directive in seconds, -1 when absent or
// malformed.
func (c CacheControl) MaxAge() int64 {
	value, found := c.Get("max-age")
	if !found {
		return -1
	}

	seconds, err := uintconv.Dec(value)
	if err != nil {
		return -1
	}

	return seconds
}

func (c CacheControl) String() string {
	var b strings.Builder

	for i, directive := range c.Directives {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(directive.Name)

		if directive.HasValue {
			b.WriteByte('=')
			b.WriteString(quoteIfNeeded(directive.Value))
		}
	}

	return b.String()
}

// ParseAge parses the Age header: non-negative seconds.
func ParseAge(raw string) (seconds int64, err error) {
	seconds, convErr := uintconv.Dec(strutil.StripWS(raw))
	if convErr != nil {
		return 0, http.NewError("malformed Age: " + raw)
	}

	return seconds, nil
}

// FormatAge is the serializing counterpart of ParseAge.
func FormatAge(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	var digits [20]byte
	i := len(digits)

	for {
		i--
		digits[i] = byte('0' + seconds%10)
		if seconds /= 10; seconds == 0 {
			break
		}
	}

	return string(digits[i:])
}
