package field

import (
	"strconv"
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// URI is a structured view over a request-target or any RFC 3986 reference.
// Components are kept in their wire form, percent-escapes included; Decode
// helpers are available where it matters. Port 0 means no port.
type URI struct {
	Scheme   string
	Userinfo string
	Host     string
	Port     int
	Path     string
	Query    string
	Fragment string
}

// ParseURI understands the absolute form ("http://host:8080/p?q"), the
// origin form ("/p?q") and the authority-less forms in between.
func ParseURI(raw string) (URI, error) {
	var uri URI

	if len(raw) == 0 {
		return uri, http.NewError("empty URI")
	}

	if fragment := strings.IndexByte(raw, '#'); fragment != -1 {
		uri.Fragment = raw[fragment+1:]
		raw = raw[:fragment]
	}

	if query := strings.IndexByte(raw, '?'); query != -1 {
		uri.Query = raw[query+1:]
		raw = raw[:query]
	}

	if len(raw) == 0 || raw[0] != '/' {
		colon := strings.IndexByte(raw, ':')
		if colon == -1 {
			return uri, http.NewError("URI is neither absolute nor origin-form: " + raw)
		}

		scheme := raw[:colon]
		if !validScheme(scheme) {
			return uri, http.NewError("malformed URI scheme: " + scheme)
		}

		uri.Scheme = strings.ToLower(scheme)
		raw = raw[colon+1:]

		if strings.HasPrefix(raw, "//") {
			raw = raw[2:]

			authority := raw
			if slash := strings.IndexByte(raw, '/'); slash != -1 {
				authority, raw = raw[:slash], raw[slash:]
			} else {
				raw = ""
			}

			if err := parseAuthority(authority, &uri); err != nil {
				return URI{}, err
			}
		}
	}

	uri.Path = raw
	return uri, nil
}

func parseAuthority(authority string, uri *URI) error {
	if at := strings.LastIndexByte(authority, '@'); at != -1 {
		uri.Userinfo = authority[:at]
		authority = authority[at+1:]
	}

	host, err := ParseHost(authority)
	if err != nil {
		return err
	}

	uri.Host = host.Host
	uri.Port = host.Port
	return nil
}

// OriginForm renders the path with the query attached, the way the target
// appears in an ordinary request line.
func (u URI) OriginForm() string {
	path := u.Path
	if len(path) == 0 {
		path = "/"
	}

	if len(u.Query) > 0 {
		return path + "?" + u.Query
	}

	return path
}

// DecodedPath resolves percent-escapes in the path.
func (u URI) DecodedPath() (string, error) {
	path, ok := strutil.PercentDecode(u.Path)
	if !ok {
		return "", http.NewError("malformed percent-encoding in path: " + u.Path)
	}

	return path, nil
}

func (u URI) String() string {
	var b strings.Builder

	if len(u.Scheme) > 0 {
		b.WriteString(u.Scheme)
		b.WriteByte(':')
	}

	if len(u.Host) > 0 {
		b.WriteString("//")

		if len(u.Userinfo) > 0 {
			b.WriteString(u.Userinfo)
			b.WriteByte('@')
		}

		b.WriteString(formatHost(u.Host))

		if u.Port > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.Port))
		}
	}

	b.WriteString(u.Path)

	if len(u.Query) > 0 {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}

	if len(u.Fragment) > 0 {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	return b.String()
}

func validScheme(scheme string) bool {
	if len(scheme) == 0 || !isAlpha(scheme[0]) {
		return false
	}

	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isAlpha(c) && (c < '0' || c > '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}

	return true
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
