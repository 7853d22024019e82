// internal/search/domain.go
package search

import (
	"net/url"
	"strings"
)

// ExtractDomain returns the lowercase host of an absolute URL with a
// leading "www." label removed. Any input that does not parse to a URL
// with a host yields the sentinel "unknown"; it never fails.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}
