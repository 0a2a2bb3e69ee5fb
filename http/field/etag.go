package field

import (
	"strings"

	"github.com/indigo-web/httpcodec/http"
)

// EntityTag is a single ETag value. Tag holds the opaque-tag contents
// without the surrounding dquotes and without unescaping: the RFC treats the
// contents as opaque, so does the codec.
type EntityTag struct {
	Weak bool
	Tag  string
}

func ParseEntityTag(raw string) (EntityTag, error) {
	var tag EntityTag

	if strings.HasPrefix(raw, "W/") {
		tag.Weak = true
		raw = raw[2:]
	}

	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return EntityTag{}, http.NewError("entity tag isn't quoted: " + raw)
	}

	contents := raw[1 : len(raw)-1]
	for i := 0; i < len(contents); i++ {
		// etagc: 0x21, 0x23-0x7E and obs-text
		if c := contents[i]; c < 0x21 || c == '"' || c == 0x7f {
			return EntityTag{}, http.NewError("malformed entity tag contents")
		}
	}

	tag.Tag = contents
	return tag, nil
}

func (e EntityTag) String() string {
	if e.Weak {
		return `W/"` + e.Tag + `"`
	}

	return `"` + e.Tag + `"`
}

// ETagList is the value of If-Match and If-None-Match: either the literal
// "*" or a list of entity tags.
type ETagList struct {
	Any  bool
	Tags []EntityTag
}

func ParseETagList(raw string) (ETagList, error) {
	if strings.TrimSpace(raw) == "*" {
		return ETagList{Any: true}, nil
	}

	var list ETagList

	for _, element := range splitList(raw, ',') {
		tag, err := ParseEntityTag(element)
		if err != nil {
			return ETagList{}, err
		}

		list.Tags = append(list.Tags, tag)
	}

	if len(list.Tags) == 0 {
		return ETagList{}, http.NewError("empty entity tag list")
	}

	return list, nil
}

func (e ETagList) String() string {
	if e.Any {
		return "*"
	}

	var b strings.Builder

	for i, tag := range e.Tags {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(tag.String())
	}

	return b.String()
}
