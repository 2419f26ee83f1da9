package cdx

import "strings"

// NormalizeDomain canonicalizes a user-supplied domain string by stripping
// surrounding whitespace, an http:// or https:// scheme prefix, and any
// trailing slashes. It accepts any string.
func NormalizeDomain(raw string) string {
	domain := strings.TrimSpace(raw)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimRight(domain, "/")
	return domain
}
