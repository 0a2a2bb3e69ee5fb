package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
)

// ContentLanguage is the list of language tags of the intended audience.
type ContentLanguage struct {
	Tags []string
}

func ParseContentLanguage(raw string) (ContentLanguage, error) {
	var languages ContentLanguage

	for _, element := range splitList(raw, ',') {
		if !validLanguageTag(element) {
			return ContentLanguage{}, http.NewError("malformed language tag: " + element)
		}

		languages.Tags = append(languages.Tags, element)
	}

	if len(languages.Tags) == 0 {
		return ContentLanguage{}, http.NewError("empty Content-Language header")
	}

	return languages, nil
}

func (c ContentLanguage) String() string {
	return strings.Join(c.Tags, ", ")
}

// LanguageTag is an element of Accept-Language: a language range with a
// quality attached.
type LanguageTag struct {
	Tag     string
	Quality int
}

type AcceptLanguage struct {
	Tags []LanguageTag
}

func ParseAcceptLanguage(raw string) (AcceptLanguage, error) {
	var accept AcceptLanguage

	for _, element := range splitList(raw, ',') {
		tag, quality := element, DefaultQuality

		if semicolon := strings.IndexByte(element, ';'); semicolon != -1 {
			params, err := parseParams(element[semicolon+1:])
			if err != nil {
				return AcceptLanguage{}, err
			}

			rest, q, err := cutQuality(params)
			if err != nil {
				return AcceptLanguage{}, err
			}

			if len(rest) > 0 {
				return AcceptLanguage{}, http.NewError("unexpected parameter: " + rest[0].Key)
			}

			tag, quality = strings.TrimRight(element[:semicolon], " \t"), q
		}

		if tag != "*" && !validLanguageTag(tag) {
			return AcceptLanguage{}, http.NewError("malformed language range: " + tag)
		}

		accept.Tags = append(accept.Tags, LanguageTag{Tag: tag, Quality: quality})
	}

	if len(accept.Tags) == 0 {
		return AcceptLanguage{}, http.NewError("empty Accept-Language header")
	}

	return accept, nil
}

func (a AcceptLanguage) String() string {
	var b strings.Builder

	for i, tag := range a.Tags {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(tag.Tag)
		appendQuality(&b, tag.Quality)
	}

	return b.String()
}

// language-tag per RFC 5646, loosely: alphanumeric subtags joined by
// hyphens, the first one alphabetic.
func validLanguageTag(tag string) bool {
	if len(tag) == 0 || tag[0] == '-' || tag[len(tag)-1] == '-' {
		return false
	}

	first := true
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case isAlpha(c):
		case '0' <= c && c <= '9' && !first:
		case c == '-' && tag[i-1] != '-':
			first = false
		default:
			return false
		}
	}

	return true
}
