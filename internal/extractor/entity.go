package extractor

import (
	"strings"
	"unicode/utf8"
)

const entityScanLines = 20

var entityMarkers = []string{"sdn bhd", "berhad", "enterprise"}

// ExtractEntityName guesses the account holder from the top of a statement.
// It returns "" when nothing looks like a company or account name.
func ExtractEntityName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > entityScanLines {
		lines = lines[:entityScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if n := utf8.RuneCountInString(line); n <= 3 || n >= 100 {
			continue
		}
		lower := strings.ToLower(line)
		for _, marker := range entityMarkers {
			if strings.Contains(lower, marker) {
				return line
			}
		}
		if strings.Contains(lower, "account name") {
			parts := strings.Split(line, ":")
			return strings.TrimSpace(parts[len(parts)-1])
		}
	}
	return ""
}
