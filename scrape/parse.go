package scrape

import (
	"strconv"
	"strings"
	"unicode"
)

// LeadingInt parses the run of decimal digits at the start of s, ignoring
// leading whitespace (including non-breaking spaces). It returns 0 when s
// does not start with a digit or the number does not fit in an int.
//
//	LeadingInt("123 points") // 123
//	LeadingInt("5\u00a0comments") // 5
//	LeadingInt("discuss") // 0
func LeadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
