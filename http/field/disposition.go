package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// ContentDisposition is the RFC 6266 view: a disposition type ("inline",
// "attachment", "form-data") with parameters. Filename resolves the
// filename*/filename pair the way the RFC tells to.
type ContentDisposition struct {
	Type   string
	Params []Param
}

func ParseContentDisposition(raw string) (ContentDisposition, error) {
	value, params := strutil.CutHeader(raw)
	value = strutil.StripWS(value)

	if !httpchars.ValidToken(value) {
		return ContentDisposition{}, http.NewError("malformed disposition type: " + value)
	}

	parsed, err := parseParams(params)
	if err != nil {
		return ContentDisposition{}, err
	}

	return ContentDisposition{
		Type:   strings.ToLower(value),
		Params: parsed,
	}, nil
}

// Filename returns the advertised file name. The extended filename*
// parameter wins over the plain one (RFC 6266 section 4.3); its RFC 8187
// encoding is decoded on the way, UTF-8 charset only.
func (c ContentDisposition) Filename() (filename string, found bool) {
	if extended, ok := lookupParam(c.Params, "filename*"); ok {
		if decoded, ok := decodeExtValue(extended); ok {
			return decoded, true
		}
	}

	return lookupParam(c.Params, "filename")
}

func (c ContentDisposition) String() string {
	var b strings.Builder
	b.WriteString(c.Type)
	appendParams(&b, c.Params)

	return b.String()
}

// decodeExtValue decodes the "charset'lang'percent-encoded" form of RFC
// 8187. Only UTF-8 is supported, as the RFC requires of producers anyway.
func decodeExtValue(value string) (string, bool) {
	charset, rest, found := strings.Cut(value, "'")
	if !found || !strings.EqualFold(charset, "UTF-8") {
		return "", false
	}

	_, encoded, found := strings.Cut(rest, "'")
	if !found {
		return "", false
	}

	return strutil.PercentDecode(encoded)
}
