// cookie/cookiejar.go
package cookie

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/deploymenttheory/go-api-http-params/params"
)

// FromHeader parses every Cookie request header in header and merges them in order.
// A name repeated across headers keeps the value from the last header.
func FromHeader(header http.Header) *params.Map {
	result := params.New()
	for _, line := range header.Values("Cookie") {
		Parse(line).Range(func(name, value string) bool {
			result.Set(name, value)
			return true
		})
	}
	return result
}

// FromSetCookie collects the name and value of each Set-Cookie response header.
// Attributes after the first ';' are ignored.
func FromSetCookie(header http.Header) *params.Map {
	result := params.New()
	for _, line := range header.Values("Set-Cookie") {
		first, _, _ := strings.Cut(line, ";")
		name, value, found := strings.Cut(strings.TrimSpace(first), "=")
		if !found || name == "" {
			continue
		}
		result.Set(name, unquote(value))
	}
	return result
}

// ToHTTPCookies converts a parsed map into *http.Cookie values in insertion order.
func ToHTTPCookies(m *params.Map) []*http.Cookie {
	cookies := make([]*http.Cookie, 0, m.Len())
	m.Range(func(name, value string) bool {
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
		return true
	})
	return cookies
}

// NewJar returns a cookie jar pre-loaded with the cookies in m for rawURL.
func NewJar(rawURL string, m *params.Map) (http.CookieJar, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cookie URL %q: %w", rawURL, err)
	}

	jar, err := cookiejar.New(nil) // nil options use default options
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	jar.SetCookies(u, ToHTTPCookies(m))
	return jar, nil
}
