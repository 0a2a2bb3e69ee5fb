package field

import (
	"encoding/base64"
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// BasicAuth is the credentials pair of the Basic scheme (RFC 7617). The
// user-id must not contain a colon, the encoding leaves no way to tell where
// it ends otherwise.
type BasicAuth struct {
	Username string
	Password string
}

// ParseBasicAuth takes a whole Authorization value, "Basic " prefix
// included, scheme matched case-insensitively.
func ParseBasicAuth(raw string) (BasicAuth, error) {
	encoded, ok := cutScheme(raw, "Basic")
	if !ok {
		return BasicAuth{}, http.NewError("not a Basic authorization: " + raw)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return BasicAuth{}, http.NewError("malformed base64 in credentials")
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return BasicAuth{}, http.NewError("credentials miss a colon")
	}

	return BasicAuth{Username: username, Password: password}, nil
}

func (b BasicAuth) String() string {
	return "Basic " + base64.StdEncoding.EncodeToString(
		[]byte(b.Username+":"+b.Password),
	)
}

// BearerToken is the token68 of the Bearer scheme (RFC 6750).
type BearerToken struct {
	Token string
}

func ParseBearerToken(raw string) (BearerToken, error) {
	token, ok := cutScheme(raw, "Bearer")
	if !ok {
		return BearerToken{}, http.NewError("not a Bearer authorization: " + raw)
	}

	if !validToken68(token) {
		return BearerToken{}, http.NewError("malformed bearer token")
	}

	return BearerToken{Token: token}, nil
}

func (b BearerToken) String() string {
	return "Bearer " + b.Token
}

// DigestAuth is either a Digest challenge or Digest credentials (RFC 7616):
// a parameter map with no order significance. The insertion order is still
// preserved so serialization stays stable.
type DigestAuth struct {
	Params []Param
}

func ParseDigestAuth(raw string) (DigestAuth, error) {
	rest, ok := cutScheme(raw, "Digest")
	if !ok {
		return DigestAuth{}, http.NewError("not a Digest authorization: " + raw)
	}

	var auth DigestAuth

	for _, element := range splitList(rest, ',') {
		key, value, found := strings.Cut(element, "=")
		if !found {
			return DigestAuth{}, http.NewError("malformed digest parameter: " + element)
		}

		auth.Params = append(auth.Params, Param{
			Key:   strings.ToLower(strutil.StripWS(key)),
			Value: strutil.Unquote(strutil.StripWS(value)),
		})
	}

	if len(auth.Params) == 0 {
		return DigestAuth{}, http.NewError("empty digest parameters")
	}

	return auth, nil
}

// Get returns the named parameter, name matched case-insensitively.
func (d DigestAuth) Get(name string) (value string, found bool) {
	return lookupParam(d.Params, name)
}

func (d DigestAuth) String() string {
	var b strings.Builder
	b.WriteString("Digest ")

	for i, param := range d.Params {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(param.Key)
		b.WriteByte('=')
		b.WriteString(quoteIfNeeded(param.Value))
	}

	return b.String()
}

func cutScheme(raw, scheme string) (rest string, ok bool) {
	if len(raw) <= len(scheme) || raw[len(scheme)] != ' ' ||
		!strings.EqualFold(raw[:len(scheme)], scheme) {
		return "", false
	}

	return strutil.LStripWS(raw[len(scheme)+1:]), true
}

// token68 per RFC 9110 section 11.2.
func validToken68(s string) bool {
	if len(s) == 0 {
		return false
	}

	end := len(s)
	for end > 0 && s[end-1] == '=' {
		end--
	}

	if end == 0 {
		return false
	}

	for i := 0; i < end; i++ {
		c := s[i]

		switch {
		case isAlpha(c) || '0' <= c && c <= '9':
		case strings.IndexByte("-._~+/", c) != -1:
		default:
			return false
		}
	}

	return true
}
