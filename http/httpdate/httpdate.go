// Package httpdate implements the HTTP-date grammar of RFC 9110 section
// 5.6.7: the parser accepts all three historical formats, the serializer
// emits IMF-fixdate only.
package httpdate

import (
	"time"

	"github.com/indigo-web/httpcodec/http"
)

const (
	// IMFFixdate is the only format produced on output.
	IMFFixdate = "Mon, 02 Jan 2006 15:04:05 GMT"
	rfc850     = "Monday, 02-Jan-06 15:04:05 GMT"
	asctime    = "Mon Jan _2 15:04:05 2006"
)

var layouts = [...]string{IMFFixdate, rfc850, asctime}

// Parse accepts IMF-fixdate, the obsolete RFC 850 format and ANSI C's
// asctime. The timestamp is always interpreted as UTC.
func Parse(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, http.NewError("malformed HTTP date: " + value)
}

// Format serializes the timestamp as an IMF-fixdate.
func Format(t time.Time) string {
	return t.UTC().Format(IMFFixdate)
}
