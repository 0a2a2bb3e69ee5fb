package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// MediaRange is a single element of an Accept header: a possibly wildcarded
// media type, its parameters and the quality. Qualities are thousandths, see
// DefaultQuality.
type MediaRange struct {
	Type    string
	Subtype string
	Params  []Param
	Quality int
}

// Accept preserves the wire order of ranges; whoever negotiates content is
// free to sort by quality themselves.
type Accept struct {
	Ranges []MediaRange
}

func ParseAccept(raw string) (Accept, error) {
	var accept Accept

	for _, element := range splitList(raw, ',') {
		value, params := strutil.CutHeader(element)
		value = strutil.StripWS(value)

		mediaType, subtype, found := strings.Cut(value, "/")
		if !found {
			return Accept{}, http.NewError("malformed media range: " + value)
		}

		if !validRangeToken(mediaType) || !validRangeToken(subtype) {
			return Accept{}, http.NewError("malformed media range: " + value)
		}

		if mediaType == "*" && subtype != "*" {
			return Accept{}, http.NewError("malformed media range: " + value)
		}

		parsed, err := parseParams(params)
		if err != nil {
			return Accept{}, err
		}

		parsed, quality, err := cutQuality(parsed)
		if err != nil {
			return Accept{}, err
		}

		accept.Ranges = append(accept.Ranges, MediaRange{
			Type:    strings.ToLower(mediaType),
			Subtype: strings.ToLower(subtype),
			Params:  parsed,
			Quality: quality,
		})
	}

	if len(accept.Ranges) == 0 {
		return Accept{}, http.NewError("empty Accept header")
	}

	return accept, nil
}

func (a Accept) String() string {
	var b strings.Builder

	for i, r := range a.Ranges {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(r.Type)
		b.WriteByte('/')
		b.WriteString(r.Subtype)
		appendParams(&b, r.Params)
		appendQuality(&b, r.Quality)
	}

	return b.String()
}

// QualityItem is an element of Accept-Charset and Accept-Encoding: a token
// or "*", with a quality attached.
type QualityItem struct {
	Value   string
	Quality int
}

type AcceptCharset struct {
	Items []QualityItem
}

func ParseAcceptCharset(raw string) (AcceptCharset, error) {
	items, err := parseQualityList(raw)
	if err != nil {
		return AcceptCharset{}, err
	}

	return AcceptCharset{Items: items}, nil
}

func (a AcceptCharset) String() string {
	return formatQualityList(a.Items)
}

type AcceptEncoding struct {
	Items []QualityItem
}

func ParseAcceptEncoding(raw string) (AcceptEncoding, error) {
	items, err := parseQualityList(raw)
	if err != nil {
		return AcceptEncoding{}, err
	}

	return AcceptEncoding{Items: items}, nil
}

func (a AcceptEncoding) String() string {
	return formatQualityList(a.Items)
}

func parseQualityList(raw string) (items []QualityItem, err error) {
	for _, element := range splitList(raw, ',') {
		value, params := strutil.CutHeader(element)
		value = strutil.StripWS(value)

		if value != "*" && !httpchars.ValidToken(value) {
			return nil, http.NewError("malformed list element: " + value)
		}

		parsed, err := parseParams(params)
		if err != nil {
			return nil, err
		}

		rest, quality, err := cutQuality(parsed)
		if err != nil {
			return nil, err
		}

		if len(rest) > 0 {
			return nil, http.NewError("unexpected parameter: " + rest[0].Key)
		}

		items = append(items, QualityItem{
			Value:   strings.ToLower(value),
			Quality: quality,
		})
	}

	if len(items) == 0 {
		return nil, http.NewError("empty list")
	}

	return items, nil
}

func formatQualityList(items []QualityItem) string {
	var b strings.Builder

	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(item.Value)
		appendQuality(&b, item.Quality)
	}

	return b.String()
}

func validRangeToken(s string) bool {
	return s == "*" || httpchars.ValidToken(s)
}
