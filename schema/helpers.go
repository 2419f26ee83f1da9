package schema

import (
	"sort"
	"strconv"
)

// FormatCount renders an integer with comma separators for display,
// e.g. 1234567 becomes "1,234,567".
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// SortedYears returns the keys of a yearly count map in ascending order.
func SortedYears(yearly map[string]int) []string {
	years := make([]string, 0, len(yearly))
	for y := range yearly {
		years = append(years, y)
	}
	// Years are fixed-width digit strings, so lexicographic order is
	// chronological order.
	sort.Strings(years)
	return years
}
