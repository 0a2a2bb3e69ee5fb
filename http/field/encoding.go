package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/httpchars"
)

// ContentEncoding is the ordered list of codings the body was transformed
// with, outermost last. The codec only parses the field, transforming bodies
// is up to the caller.
type ContentEncoding struct {
	Codings []string
}

func ParseContentEncoding(raw string) (ContentEncoding, error) {
	codings, err := parseTokenList(raw)
	if err != nil {
		return ContentEncoding{}, err
	}

	for i, coding := range codings {
		codings[i] = strings.ToLower(coding)
	}

	return ContentEncoding{Codings: codings}, nil
}

func (c ContentEncoding) String() string {
	return strings.Join(c.Codings, ", ")
}

// parseTokenList parses a "#token" list, rejecting empty lists and non-token
// elements.
func parseTokenList(raw string) (tokens []string, err error) {
	for _, element := range splitList(raw, ',') {
		if !httpchars.ValidToken(element) {
			return nil, http.NewError("malformed list element: " + element)
		}

		tokens = append(tokens, element)
	}

	if len(tokens) == 0 {
		return nil, http.NewError("empty list")
	}

	return tokens, nil
}
