package usecase

import (
	"strconv"
	"strings"
	"unicode"
)

// parseLeadingInt reads a base-10 integer from the start of s the way API
// callers have always been served: leading whitespace is skipped, an optional
// sign is accepted, and anything after the first run of digits is ignored.
// "42abc" yields 42; "abc", "" and "-" yield ok == false.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseMovieID returns the movie id, treating absent, unparsable and zero
// values as missing.
func parseMovieID(raw string) (int, bool) {
	n, ok := parseLeadingInt(raw)
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

// parseMinAwards returns the optional threshold. Absent and malformed values
// both mean no threshold was requested.
func parseMinAwards(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	return parseLeadingInt(raw)
}
