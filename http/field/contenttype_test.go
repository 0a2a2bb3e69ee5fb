package field

import (
	"testing"

	"github.com/indigo-web/httpcodec/http/mime"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	t.Run("bare media type", func(t *testing.T) {
		ct, err := ParseContentType("text/html")
		require.NoError(t, err)
		require.Equal(t, "text", ct.Type)
		require.Equal(t, "html", ct.Subtype)
		require.Empty(t, ct.Params)
		require.Equal(t, mime.HTML, ct.MIME())
	})

	t.Run("parameters", func(t *testing.T) {
		ct, err := ParseContentType("text/html; charset=utf-8; boundary=xyz")
		require.NoError(t, err)
		require.Equal(t, []Param{{"charset", "utf-8"}, {"boundary", "xyz"}}, ct.Params)
		require.Equal(t, "utf-8", ct.Charset("latin1"))
	})

	t.Run("case folding", func(t *testing.T) {
		ct, err := ParseContentType("Text/HTML; Charset=UTF-8")
		require.NoError(t, err)
		require.Equal(t, "text/html", ct.MIME())
		require.Equal(t, "utf-8", ct.Charset(""))
	})

	t.Run("quoted parameter", func(t *testing.T) {
		ct, err := ParseContentType(`multipart/form-data; boundary="quoted; boundary"`)
		require.NoError(t, err)
		require.Equal(t, "quoted; boundary", ct.Params[0].Value)
	})

	t.Run("is json", func(t *testing.T) {
		for raw, want := range map[string]bool{
			"application/json":              true,
			"application/problem+json":      true,
			"application/json; charset=u-8": true,
			"text/html":                     false,
			"application/jsonp":             false,
		} {
			ct, err := ParseContentType(raw)
			require.NoError(t, err)
			require.Equal(t, want, ct.IsJSON(), raw)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", "texthtml", "text/", "/html", "te xt/html"} {
			_, err := ParseContentType(raw)
			require.Error(t, err, raw)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, canonical := range []string{
			"text/html",
			"text/html; charset=utf-8",
			"multipart/form-data; boundary=something",
		} {
			ct, err := ParseContentType(canonical)
			require.NoError(t, err)
			require.Equal(t, canonical, ct.String())
		}
	})
}

func TestParseContentDisposition(t *testing.T) {
	t.Run("attachment with filename", func(t *testing.T) {
		cd, err := ParseContentDisposition(`attachment; filename="report.pdf"`)
		require.NoError(t, err)
		require.Equal(t, "attachment", cd.Type)

		filename, found := cd.Filename()
		require.True(t, found)
		require.Equal(t, "report.pdf", filename)
	})

	t.Run("extended filename wins", func(t *testing.T) {
		cd, err := ParseContentDisposition(
			`attachment; filename="fallback.txt"; filename*=UTF-8''na%C3%AFve%20file.txt`,
		)
		require.NoError(t, err)

		filename, found := cd.Filename()
		require.True(t, found)
		require.Equal(t, "naïve file.txt", filename)
	})

	t.Run("broken extended falls back", func(t *testing.T) {
		cd, err := ParseContentDisposition(
			`attachment; filename="fallback.txt"; filename*=KOI8-R''%D0%B0`,
		)
		require.NoError(t, err)

		filename, found := cd.Filename()
		require.True(t, found)
		require.Equal(t, "fallback.txt", filename)
	})

	t.Run("no filename", func(t *testing.T) {
		cd, err := ParseContentDisposition("inline")
		require.NoError(t, err)

		_, found := cd.Filename()
		require.False(t, found)
	})

	t.Run("form-data", func(t *testing.T) {
		cd, err := ParseContentDisposition(`form-data; name=avatar`)
		require.NoError(t, err)
		require.Equal(t, "form-data", cd.Type)

		name, found := lookupParam(cd.Params, "name")
		require.True(t, found)
		require.Equal(t, "avatar", name)
	})
}

func TestParseContentEncoding(t *testing.T) {
	t.Run("single coding", func(t *testing.T) {
		ce, err := ParseContentEncoding("gzip")
		require.NoError(t, err)
		require.Equal(t, []string{"gzip"}, ce.Codings)
	})

	t.Run("ordered list", func(t *testing.T) {
		ce, err := ParseContentEncoding("deflate, GZIP, br")
		require.NoError(t, err)
		require.Equal(t, []string{"deflate", "gzip", "br"}, ce.Codings)
		require.Equal(t, "deflate, gzip, br", ce.String())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", ", ,", "gz ip"} {
			_, err := ParseContentEncoding(raw)
			require.Error(t, err, raw)
		}
	})
}

func TestParseContentLanguage(t *testing.T) {
	cl, err := ParseContentLanguage("en-US, sv")
	require.NoError(t, err)
	require.Equal(t, []string{"en-US", "sv"}, cl.Tags)
	require.Equal(t, "en-US, sv", cl.String())

	_, err = ParseContentLanguage("not a tag!")
	require.Error(t, err)
}

func TestParseAcceptLanguage(t *testing.T) {
	t.Run("qualities", func(t *testing.T) {
		al, err := ParseAcceptLanguage("da, en-gb;q=0.8, en;q=0.7, *;q=0.1")
		require.NoError(t, err)
		require.Equal(t, []LanguageTag{
			{"da", 1000},
			{"en-gb", 800},
			{"en", 700},
			{"*", 100},
		}, al.Tags)
	})

	t.Run("round trip", func(t *testing.T) {
		canonical := "da, en-gb;q=0.8, *;q=0.1"
		al, err := ParseAcceptLanguage(canonical)
		require.NoError(t, err)
		require.Equal(t, canonical, al.String())
	})

	t.Run("malformed quality", func(t *testing.T) {
		_, err := ParseAcceptLanguage("en;q=high")
		require.Error(t, err)
	})
}
