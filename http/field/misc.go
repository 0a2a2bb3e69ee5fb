package field

import (
	"strings"
	"time"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/http/httpdate"
	"github.com/indigo-web/httpcodec/internal/httpchars"
)

// ParseLocation parses Location and Content-Location, which are plain URI
// references.
func ParseLocation(raw string) (URI, error) {
	return ParseURI(raw)
}

// ParseExpires parses Expires and the If-Modified-Since conditional family:
// a single HTTP-date in any of its three formats.
func ParseExpires(raw string) (time.Time, error) {
	return httpdate.Parse(raw)
}

// Expect is the parsed Expect header. The only expectation RFC 9110 has left
// is 100-continue, everything else is unknown.
type Expect struct {
	Continue bool
}

func ParseExpect(raw string) (Expect, error) {
	if !strings.EqualFold(strings.TrimSpace(raw), "100-continue") {
		return Expect{}, http.NewError("unknown expectation: " + raw)
	}

	return Expect{Continue: true}, nil
}

func (e Expect) String() string {
	return "100-continue"
}

// Trailer lists the field names the sender promises to put into the chunked
// trailer section.
type Trailer struct {
	Fields []string
}

func ParseTrailer(raw string) (Trailer, error) {
	fields, err := parseTokenList(raw)
	if err != nil {
		return Trailer{}, err
	}

	return Trailer{Fields: fields}, nil
}

func (t Trailer) String() string {
	return strings.Join(t.Fields, ", ")
}

// UpgradeProtocol is one offered protocol, "websocket" or "HTTP/2.0" alike.
// Version is empty unless the slash form was used.
type UpgradeProtocol struct {
	Name    string
	Version string
}

// Upgrade is the ordered list of protocols the sender is willing to switch
// to. The codec surfaces the offer and nothing else: switching is the
// transport's business, the switched bytes show up in Remaining.
type Upgrade struct {
	Protocols []UpgradeProtocol
}

func ParseUpgrade(raw string) (Upgrade, error) {
	var upgrade Upgrade

	for _, element := range splitList(raw, ',') {
		name, version, _ := strings.Cut(element, "/")

		if !httpchars.ValidToken(name) || len(version) > 0 && !httpchars.ValidToken(version) {
			return Upgrade{}, http.NewError("malformed protocol: " + element)
		}

		upgrade.Protocols = append(upgrade.Protocols, UpgradeProtocol{
			Name:    name,
			Version: version,
		})
	}

	if len(upgrade.Protocols) == 0 {
		return Upgrade{}, http.NewError("empty Upgrade header")
	}

	return upgrade, nil
}

func (u Upgrade) String() string {
	var b strings.Builder

	for i, protocol := range u.Protocols {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(protocol.Name)

		if len(protocol.Version) > 0 {
			b.WriteByte('/')
			b.WriteString(protocol.Version)
		}
	}

	return b.String()
}

// Vary is either the literal "*" or the list of request field names the
// response varies on.
type Vary struct {
	Any    bool
	Fields []string
}

func ParseVary(raw string) (Vary, error) {
	if strings.TrimSpace(raw) == "*" {
		return Vary{Any: true}, nil
	}

	fields, err := parseTokenList(raw)
	if err != nil {
		return Vary{}, err
	}

	return Vary{Fields: fields}, nil
}

func (v Vary) String() string {
	if v.Any {
		return "*"
	}

	return strings.Join(v.Fields, ", ")
}
