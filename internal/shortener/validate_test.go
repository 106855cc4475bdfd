package shortener_test

import (
	"errors"
	"testing"

	"github.com/serroba/urlregistry/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidate(t *testing.T) {
	t.Run("accepts http and https urls", func(t *testing.T) {
		for _, raw := range []string{
			"https://www.freecodecamp.org",
			"http://example.com/path?q=1#frag",
			"HTTPS://Example.com",
			"http://127.0.0.1:8080",
			"http://[::1]/",
			"http://example.com:65535",
			"  https://example.com\t",
		} {
			u, err := shortener.ParseCandidate(raw)

			require.NoError(t, err, raw)
			assert.NotEmpty(t, u.Hostname(), raw)
		}
	})

	tests := []struct {
		name   string
		raw    string
		reason shortener.Reason
	}{
		{name: "plain text", raw: "not a url", reason: shortener.ReasonMalformed},
		{name: "empty string", raw: "", reason: shortener.ReasonMalformed},
		{name: "relative path", raw: "/api/shorturl", reason: shortener.ReasonMalformed},
		{name: "missing authority", raw: "http:example.com", reason: shortener.ReasonMalformed},
		{name: "bad host", raw: "http://exa mple.com", reason: shortener.ReasonMalformed},
		{name: "port without host", raw: "http://:80", reason: shortener.ReasonMalformed},
		{name: "port out of range", raw: "http://example.com:65536", reason: shortener.ReasonMalformed},
		{name: "ftp scheme", raw: "ftp://example.com", reason: shortener.ReasonScheme},
		{name: "javascript scheme", raw: "javascript:alert(1)", reason: shortener.ReasonScheme},
		{name: "mailto scheme", raw: "mailto:someone@example.com", reason: shortener.ReasonScheme},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			u, err := shortener.ParseCandidate(tt.raw)

			assert.Nil(t, u)
			require.ErrorIs(t, err, shortener.ErrInvalidURL)

			var invalidErr *shortener.InvalidURLError
			require.True(t, errors.As(err, &invalidErr))
			assert.Equal(t, tt.reason, invalidErr.Reason)
		})
	}
}

func TestParseCandidate_NormalizesHost(t *testing.T) {
	t.Run("converts internationalized hostnames to ASCII", func(t *testing.T) {
		u, err := shortener.ParseCandidate("https://Bücher.de/katalog")

		require.NoError(t, err)
		assert.Equal(t, "xn--bcher-kva.de", u.Hostname())
		assert.Equal(t, "/katalog", u.Path)
	})

	t.Run("keeps the port", func(t *testing.T) {
		u, err := shortener.ParseCandidate("http://bücher.de:8080")

		require.NoError(t, err)
		assert.Equal(t, "xn--bcher-kva.de:8080", u.Host)
	})

	t.Run("allows underscores in hostnames", func(t *testing.T) {
		u, err := shortener.ParseCandidate("http://my_host.example.com")

		require.NoError(t, err)
		assert.Equal(t, "my_host.example.com", u.Hostname())
	})

	t.Run("strips surrounding spaces and inner newlines", func(t *testing.T) {
		u, err := shortener.ParseCandidate(" \x00https://exa\nmple.com/a ")

		require.NoError(t, err)
		assert.Equal(t, "example.com", u.Hostname())
		assert.Equal(t, "/a", u.Path)
	})
}

func TestParseShortID(t *testing.T) {
	t.Run("parses base 10 integers", func(t *testing.T) {
		id, err := shortener.ParseShortID("42")

		require.NoError(t, err)
		assert.Equal(t, shortener.ShortID(42), id)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		for _, raw := range []string{"abc", "", "1.5", "12abc", " 1"} {
			_, err := shortener.ParseShortID(raw)

			assert.ErrorIs(t, err, shortener.ErrNotAnInteger, raw)
		}
	})

	t.Run("reports out of range integers as not found", func(t *testing.T) {
		_, err := shortener.ParseShortID("99999999999999999999999")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
		assert.NotErrorIs(t, err, shortener.ErrNotAnInteger)
	})
}
