package field

import (
	"encoding/base64"
	"strings"

	"github.com/indigo-web/httpcodec/http"
	"github.com/indigo-web/httpcodec/internal/httpchars"
	"github.com/indigo-web/httpcodec/internal/strutil"
)

// DigestEntry is a single algorithm=digest member of the Content-Digest and
// Repr-Digest fields (RFC 9530). Digest holds the raw hash bytes.
type DigestEntry struct {
	Algorithm string
	Digest    []byte
}

// Digests is the parsed field: a dictionary of digests keyed by algorithm,
// wire order preserved.
type Digests struct {
	Entries []DigestEntry
}

// ParseDigests parses the "sha-256=:BASE64:, sha-512=:BASE64:" structured
// dictionary. Byte-sequence members only, anything else is malformed.
func ParseDigests(raw string) (Digests, error) {
	var digests Digests

	for _, element := range splitList(raw, ',') {
		key, value, found := strings.Cut(element, "=")
		key = strutil.StripWS(key)

		if !found || !httpchars.ValidToken(key) {
			return Digests{}, http.NewError("malformed digest member: " + element)
		}

		value = strutil.StripWS(value)
		if len(value) < 2 || value[0] != ':' || value[len(value)-1] != ':' {
			return Digests{}, http.NewError("digest isn't a byte sequence: " + value)
		}

		digest, err := base64.StdEncoding.DecodeString(value[1 : len(value)-1])
		if err != nil {
			return Digests{}, http.NewError("malformed base64 in digest")
		}

		digests.Entries = append(digests.Entries, DigestEntry{
			Algorithm: strings.ToLower(key),
			Digest:    digest,
		})
	}

	if len(digests.Entries) == 0 {
		return Digests{}, http.NewError("empty digest field")
	}

	return digests, nil
}

// Get returns the digest of the named algorithm.
func (d Digests) Get(algorithm string) (digest []byte, found bool) {
	for _, entry := range d.Entries {
		if strings.EqualFold(entry.Algorithm, algorithm) {
			return entry.Digest, true
		}
	}

	return nil, false
}

func (d Digests) String() string {
	var b strings.Builder

	for i, entry := range d.Entries {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(entry.Algorithm)
		b.WriteString("=:")
		b.WriteString(base64.StdEncoding.EncodeToString(entry.Digest))
		b.WriteByte(':')
	}

	return b.String()
}
