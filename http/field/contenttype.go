package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/mime"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// ContentType is a parsed media type: "text/html; charset=utf-8" becomes
// {Type: "text", Subtype: "html", Params: [charset=utf-8]}. Type, subtype
// and parameter names are lowercased, parameter order is preserved.
type ContentType struct {
	Type    string
	Subtype string
	Params  []Param
}

func ParseContentType(raw string) (ContentType, error) {
	value, params := strutil.CutHeader(raw)
	value = strutil.StripWS(value)

	mediaType, subtype, found := strings.Cut(value, "/")
	if !found || !httpchars.ValidToken(mediaType) || !httpchars.ValidToken(subtype) {
		return ContentType{}, http.NewError("malformed media type: " + value)
	}

	parsed, err := parseParams(params)
	if err != nil {
		return ContentType{}, err
	}

	return ContentType{
		Type:    strings.ToLower(mediaType),
		Subtype: strings.ToLower(subtype),
		Params:  parsed,
	}, nil
}

// MIME renders the bare type/subtype pair, parameters stripped.
func (c ContentType) MIME() mime.MIME {
	return c.Type + "/" + c.Subtype
}

// IsJSON reports application/json itself as well as any +json-suffixed
// subtype, application/problem+json for one.
func (c ContentType) IsJSON() bool {
	return c.MIME() == mime.JSON || strings.HasSuffix(c.Subtype, "+json")
}

// Charset returns the charset parameter, lowercased, or the fallback.
func (c ContentType) Charset(or string) string {
	if charset, found := lookupParam(c.Params, "charset"); found {
		return strings.ToLower(charset)
	}

	return or
}

func (c ContentType) String() string {
	var b strings.Builder
	b.WriteString(c.MIME())
	appendParams(&b, c.Params)

	return b.String()
}
