package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a node name for fuzzy comparison:
//  1. lower-case
//  2. drop a trailing duplicate counter (".001", " (1)") left by editors
//  3. drop separators (_, -, ., space)
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripCounter(s)

	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// stripCounter removes ".NNN" and " (N)" suffixes.
func stripCounter(s string) string {
	if i := strings.LastIndexByte(s, '.'); i > 0 && allDigits(s[i+1:]) {
		return s[:i]
	}

	if strings.HasSuffix(s, ")") {
		if i := strings.LastIndex(s, " ("); i > 0 && allDigits(s[i+2:len(s)-1]) {
			return s[:i]
		}
	}

	return s
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}
