package token

import (
	"regexp"
	"strings"
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*`)

// ScanName matches a variable name at the start of s and returns it with
// the trimmed remainder of s.
func ScanName(s string) (name, rest string, ok bool) {
	loc := nameRegexp.FindStringIndex(s)
	if loc == nil {
		return "", s, false
	}
	return s[:loc[1]], strings.TrimSpace(s[loc[1]:]), true
}

// IsName reports whether s is exactly one variable name.
func IsName(s string) bool {
	loc := nameRegexp.FindStringIndex(s)
	return loc != nil && loc[1] == len(s)
}
