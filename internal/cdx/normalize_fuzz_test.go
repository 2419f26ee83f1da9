package cdx

import (
	"strings"
	"testing"
)

// FuzzNormalizeDomain fuzzes the NormalizeDomain function with random inputs.
func FuzzNormalizeDomain(f *testing.F) {
	seeds := []string{
		"example.com",
		"https://example.com/",
		"http://blog.example.com",
		"  https://example.com// ",
		"https://http://example.com",
		"",
		"///",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		got := NormalizeDomain(raw)
		if strings.HasSuffix(got, "/") {
			t.Errorf("trailing slash survived: %q -> %q", raw, got)
		}
	})
}
