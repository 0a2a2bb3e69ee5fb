package cookie

import (
	"strconv"
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/httpdate"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// Parse parses the value of a request Cookie header: an ordered "; "-joined
// list of name=value pairs, attributes not allowed there (RFC 6265 section
// 5.4).
func Parse(value string) (cookies []Cookie, err error) {
	for len(value) > 0 {
		var pair string

		if semicolon := strings.IndexByte(value, ';'); semicolon == -1 {
			pair, value = value, ""
		} else {
			pair, value = value[:semicolon], value[semicolon+1:]
		}

		name, val, err := splitPair(pair)
		if err != nil {
			return nil, err
		}

		cookies = append(cookies, New(name, val))
	}

	if len(cookies) == 0 {
		return nil, http.NewError("empty Cookie header")
	}

	return cookies, nil
}

// Serialize renders the cookies back into a request Cookie header value.
func Serialize(cookies []Cookie) string {
	var b strings.Builder

	for i, c := range cookies {
		if i > 0 {
			b.WriteString("; ")
		}

		b.WriteString(c.Name)
		b.WriteByte('=')
		b.WriteString(c.Value)
	}

	return b.String()
}

// ParseSetCookie parses the value of a Set-Cookie header: the name=value
// pair followed by optional attributes (RFC 6265 section 5.2). Unknown
// attributes are ignored, as the RFC prescribes.
func ParseSetCookie(value string) (Cookie, error) {
	pair, rest, _ := strings.Cut(value, ";")

	name, val, err := splitPair(pair)
	if err != nil {
		return Cookie{}, err
	}

	c := New(name, val)

	for len(rest) > 0 {
		var attribute string

		if semicolon := strings.IndexByte(rest, ';'); semicolon == -1 {
			attribute, rest = rest, ""
		} else {
			attribute, rest = rest[:semicolon], rest[semicolon+1:]
		}

		key, attrValue, _ := strings.Cut(attribute, "=")
		key = strutil.StripWS(key)
		attrValue = strutil.StripWS(attrValue)

		switch {
		case strings.EqualFold(key, "Path"):
			c.Path = attrValue
		case strings.EqualFold(key, "Domain"):
			c.Domain = attrValue
		case strings.EqualFold(key, "Expires"):
			expires, err := httpdate.Parse(attrValue)
			if err != nil {
				return Cookie{}, err
			}

			c.Expires = expires
		case strings.EqualFold(key, "Max-Age"):
			maxAge, err := strconv.Atoi(attrValue)
			if err != nil {
				return Cookie{}, http.NewError("malformed Max-Age: " + attrValue)
			}

			c.MaxAge = maxAge
		case strings.EqualFold(key, "Secure"):
			c.Secure = true
		case strings.EqualFold(key, "HttpOnly"):
			c.HttpOnly = true
		case strings.EqualFold(key, "SameSite"):
			switch {
			case strings.EqualFold(attrValue, SameSiteLax):
				c.SameSite = SameSiteLax
			case strings.EqualFold(attrValue, SameSiteStrict):
				c.SameSite = SameSiteStrict
			case strings.EqualFold(attrValue, SameSiteNone):
				c.SameSite = SameSiteNone
			default:
				return Cookie{}, http.NewError("malformed SameSite: " + attrValue)
			}
		}
	}

	return c, nil
}

// SerializeSetCookie renders the cookie into a Set-Cookie header value.
func SerializeSetCookie(c Cookie) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)

	if len(c.Domain) > 0 {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}

	if len(c.Path) > 0 {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}

	if !c.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(httpdate.Format(c.Expires))
	}

	if c.MaxAge != 0 {
		maxAge := c.MaxAge
		if maxAge < 0 {
			maxAge = 0
		}

		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(maxAge))
	}

	if len(c.SameSite) > 0 {
		b.WriteString("; SameSite=")
		b.WriteString(c.SameSite)
	}

	if c.Secure {
		b.WriteString("; Secure")
	}

	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}

	return b.String()
}

func splitPair(pair string) (name, value string, err error) {
	name, value, found := strings.Cut(pair, "=")
	if !found {
		return "", "", http.NewError("malformed cookie pair: " + pair)
	}

	name = strutil.StripWS(name)
	if !httpchars.ValidToken(name) {
		return "", "", http.NewError("malformed cookie name: " + name)
	}

	value = strutil.StripWS(value)
	if len(value) > 1 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}

	for i := 0; i < len(value); i++ {
		if !isCookieOctet(value[i]) {
			return "", "", http.NewError("malformed cookie value")
		}
	}

	return name, value, nil
}

// cookie-octet per RFC 6265 section 4.1.1: printable US-ASCII except
// whitespace, dquote, comma, semicolon and backslash.
func isCookieOctet(c byte) bool {
	switch c {
	case '"', ',', ';', '\\':
		return false
	}

	return c >= 0x21 && c <= 0x7e
}
