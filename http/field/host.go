package field

import (
	"strconv"
	"strings"

	"github.com/indigo-web/httpcodec/http"
)

// Host is the parsed Host header: a reg-name, IPv4 or bracketed IP-literal,
// plus an optional port. Port 0 means no port. IP-literals are stored
// without the brackets.
type Host struct {
	Host string
	Port int
}

func ParseHost(raw string) (Host, error) {
	if len(raw) == 0 {
		return Host{}, http.NewError("empty host")
	}

	var host Host

	if raw[0] == '[' {
		closing := strings.IndexByte(raw, ']')
		if closing == -1 {
			return Host{}, http.NewError("unterminated IP-literal: " + raw)
		}

		host.Host = raw[1:closing]
		raw = raw[closing+1:]

		if len(raw) > 0 && raw[0] != ':' {
			return Host{}, http.NewError("garbage past the IP-literal: " + raw)
		}
	} else {
		colon := strings.IndexByte(raw, ':')
		if colon == -1 {
			host.Host, raw = raw, ""
		} else {
			host.Host, raw = raw[:colon], raw[colon:]
		}

		if !validRegName(host.Host) {
			return Host{}, http.NewError("malformed host: " + host.Host)
		}
	}

	if len(raw) > 0 {
		port, err := strconv.Atoi(raw[1:])
		if err != nil || port < 0 || port > 65535 {
			return Host{}, http.NewError("malformed port: " + raw[1:])
		}

		host.Port = port
	}

	return host, nil
}

func (h Host) String() string {
	host := formatHost(h.Host)
	if h.Port == 0 {
		return host
	}

	return host + ":" + strconv.Itoa(h.Port)
}

func formatHost(host string) string {
	if strings.IndexByte(host, ':') != -1 {
		// must be an IPv6 literal, bring the brackets back
		return "[" + host + "]"
	}

	return host
}

// reg-name: unreserved, percent-encoded and sub-delims characters.
func validRegName(host string) bool {
	for i := 0; i < len(host); i++ {
		c := host[i]

		switch {
		case isAlpha(c) || '0' <= c && c <= '9':
		case strings.IndexByte("-._~%!$&'()*+,;=", c) != -1:
		default:
			return false
		}
	}

	return true
}
