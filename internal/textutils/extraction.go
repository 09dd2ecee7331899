// Package textutils provides text matching and normalization helpers.
package textutils

import (
	"regexp"
	"strings"
)

var digits = regexp.MustCompile(`\d+`)

// ContainsAny reports whether text contains any of the keywords, ignoring case.
// Matching is plain substring containment.
func ContainsAny(text string, keywords []string) bool {
	return MatchKeyword(text, keywords) != ""
}

// MatchKeyword returns the first keyword contained in text, ignoring case, or "".
func MatchKeyword(text string, keywords []string) string {
	upper := strings.ToUpper(text)
	for _, k := range keywords {
		if strings.Contains(upper, strings.ToUpper(k)) {
			return k
		}
	}
	return ""
}

// NormalizePayer builds the grouping key for a counterparty: digits stripped,
// trimmed and upper-cased, so "INV 1023 ACME" and "INV 2048 ACME" both become "INV  ACME".
func NormalizePayer(description string) string {
	return strings.ToUpper(strings.TrimSpace(digits.ReplaceAllString(description, "")))
}

// SplitTableRow splits a pipe-delimited row into trimmed cells, dropping the
// empty cells produced by the leading and trailing delimiter.
func SplitTableRow(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// IsTableRow reports whether a trimmed line both starts and ends with a pipe.
func IsTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}
