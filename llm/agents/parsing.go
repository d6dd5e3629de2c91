package agents

import (
	"regexp"
	"strconv"
	"strings"
)

// LinesMatching scans response text line by line and returns trimmed
// lines containing any of the given keywords (case-insensitive). This is
// how agents lift structured fields out of free-form model output.
func LinesMatching(text string, keywords ...string) []string {
	var matches []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				matches = append(matches, trimmed)
				break
			}
		}
	}
	return matches
}

// ExtractScore finds a numeric score following a label, e.g.
// "Overall score: 8" or "SEO Score - 72". Returns false when the label
// is absent or not followed by a number.
func ExtractScore(text, label string) (int, bool) {
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[:\s\-]*(\d+)`)
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	score, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return score, true
}

// QuotedLines returns trimmed lines containing quoted text
func QuotedLines(text string) []string {
	var quotes []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, `"`) || strings.Contains(trimmed, "'") {
			quotes = append(quotes, trimmed)
		}
	}
	return quotes
}

// SectionAfter returns the lines following the first line whose lowered
// form contains the marker, up to the next blank-line separated heading
// ending in a colon. Used to pull rewritten content out of analysis text.
func SectionAfter(text, marker string) string {
	lines := strings.Split(text, "\n")
	var section []string
	in := false

	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if !in {
			if strings.Contains(lower, strings.ToLower(marker)) {
				in = true
			}
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && strings.HasSuffix(trimmed, ":") && len(section) > 0 {
			break
		}
		if trimmed != "" {
			section = append(section, line)
		}
	}

	return strings.TrimSpace(strings.Join(section, "\n"))
}

// WordCount counts whitespace-separated words
func WordCount(text string) int {
	return len(strings.Fields(text))
}
