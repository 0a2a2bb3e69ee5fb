package field

import (
	"strconv"
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
	"github.com/indigo-web/httpcodec/internal/uintconv"
)

// RangeSpec is one requested range. Either an int-range "first-last"
// (Last=-1 when the end is left open) or, with Suffix set, the
// suffix-range "-n" asking for the last First bytes.
type RangeSpec struct {
	First, Last int64
	Suffix      bool
}

// Range is the parsed Range header: a unit, almost always "bytes", and at
// least one range spec.
type Range struct {
	Unit  string
	Specs []RangeSpec
}

func ParseRange(raw string) (Range, error) {
	unit, set, found := strings.Cut(raw, "=")
	if !found || !httpchars.ValidToken(unit) {
		return Range{}, http.NewError("malformed Range header: " + raw)
	}

	r := Range{Unit: strings.ToLower(unit)}

	for _, element := range splitList(set, ',') {
		spec, err := parseRangeSpec(element)
		if err != nil {
			return Range{}, err
		}

		r.Specs = append(r.Specs, spec)
	}

	if len(r.Specs) == 0 {
		return Range{}, http.NewError("empty range set")
	}

	return r, nil
}

func parseRangeSpec(element string) (RangeSpec, error) {
	first, last, found := strings.Cut(element, "-")
	if !found {
		return RangeSpec{}, http.NewError("malformed range spec: " + element)
	}

	if len(first) == 0 {
		// suffix-range: the last n bytes
		n, err := uintconv.Dec(last)
		if err != nil {
			return RangeSpec{}, http.NewError("malformed suffix range: " + element)
		}

		return RangeSpec{First: n, Last: -1, Suffix: true}, nil
	}

	spec := RangeSpec{Last: -1}

	begin, err := uintconv.Dec(first)
	if err != nil {
		return RangeSpec{}, http.NewError("malformed range spec: " + element)
	}

	spec.First = begin

	if len(last) > 0 {
		end, err := uintconv.Dec(last)
		if err != nil || end < begin {
			return RangeSpec{}, http.NewError("malformed range spec: " + element)
		}

		spec.Last = end
	}

	return spec, nil
}

func (r Range) String() string {
	var b strings.Builder
	b.WriteString(r.Unit)
	b.WriteByte('=')

	for i, spec := range r.Specs {
		if i > 0 {
			b.WriteString(", ")
		}

		if spec.Suffix {
			b.WriteByte('-')
			b.WriteString(strconv.FormatInt(spec.First, 10))
			continue
		}

		b.WriteString(strconv.FormatInt(spec.First, 10))
		b.WriteByte('-')

		if spec.Last >= 0 {
			b.WriteString(strconv.FormatInt(spec.Last, 10))
		}
	}

	return b.String()
}

// ContentRange is the parsed Content-Range header. Complete=-1 stands for an
// unknown complete length ("0-499/*"); Unsatisfied covers the "*/1000" form
// of a 416 response.
type ContentRange struct {
	Unit        string
	First, Last int64
	Complete    int64
	Unsatisfied bool
}

func ParseContentRange(raw string) (ContentRange, error) {
	unit, rest, found := strings.Cut(strutil.StripWS(raw), " ")
	if !found || !httpchars.ValidToken(unit) {
		return ContentRange{}, http.NewError("malformed Content-Range header: " + raw)
	}

	cr := ContentRange{Unit: strings.ToLower(unit), Complete: -1}

	rangePart, completePart, found := strings.Cut(rest, "/")
	if !found {
		return ContentRange{}, http.NewError("malformed Content-Range header: " + raw)
	}

	if completePart != "*" {
		complete, err := uintconv.Dec(completePart)
		if err != nil {
			return ContentRange{}, http.NewError("malformed complete length: " + completePart)
		}

		cr.Complete = complete
	}

	if rangePart == "*" {
		if cr.Complete < 0 {
			// */* carries no information whatsoever
			return ContentRange{}, http.NewError("malformed Content-Range header: " + raw)
		}

		cr.Unsatisfied = true
		return cr, nil
	}

	first, last, found := strings.Cut(rangePart, "-")
	if !found {
		return ContentRange{}, http.NewError("malformed Content-Range header: " + raw)
	}

	begin, err := uintconv.Dec(first)
	if err != nil {
		return ContentRange{}, http.NewError("malformed Content-Range header: " + raw)
	}

	end, err := uintconv.Dec(last)
	if err != nil || end < begin {
		return ContentRange{}, http.NewError("malformed Content-Range header: " + raw)
	}

	cr.First, cr.Last = begin, end
	return cr, nil
}

func (c ContentRange) String() string {
	var b strings.Builder
	b.WriteString(c.Unit)
	b.WriteByte(' ')

	if c.Unsatisfied {
		b.WriteByte('*')
	} else {
		b.WriteString(strconv.FormatInt(c.First, 10))
		b.WriteByte('-')
		b.WriteString(strconv.FormatInt(c.Last, 10))
	}

	b.WriteByte('/')

	if c.Complete < 0 {
		b.WriteByte('*')
	} else {
		b.WriteString(strconv.FormatInt(c.Complete, 10))
	}

	return b.String()
}

// AcceptRanges is the list of range units the server supports, commonly just
// "bytes" or "none".
type AcceptRanges struct {
	Units []string
}

func ParseAcceptRanges(raw string) (AcceptRanges, error) {
	units, err := parseTokenList(raw)
	if err != nil {
		return AcceptRanges{}, err
	}

	for i, unit := range units {
		units[i] = strings.ToLower(unit)
	}

	return AcceptRanges{Units: units}, nil
}

func (a AcceptRanges) String() string {
	return strings.Join(a.Units, ", ")
}
