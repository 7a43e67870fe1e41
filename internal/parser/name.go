package parser

import (
	"regexp"
	"strings"
)

var (
	leadingNameMarkers  = regexp.MustCompile(`^[#*_\s]+`)
	trailingNameMarkers = regexp.MustCompile(`[*_\s]+$`)
)

var contactTokens = []string{"github", "linkedin", "email", "phone"}

// GuessName returns the first line of header when it looks like a person's
// name, otherwise retries with the first line of fallback. Pass "" for no
// fallback. A nil result is a normal outcome.
func GuessName(header, fallback string) *string {
	if name := nameCandidate(header); name != "" {
		return &name
	}
	if fallback == "" {
		return nil
	}
	if name := nameCandidate(fallback); name != "" {
		return &name
	}
	return nil
}

func nameCandidate(text string) string {
	first := leadingNameMarkers.ReplaceAllString(firstLine(text), "")
	first = strings.TrimSpace(trailingNameMarkers.ReplaceAllString(first, ""))
	if first == "" {
		return ""
	}

	if strings.Contains(first, "@") || strings.Contains(first, "http") {
		return ""
	}
	low := strings.ToLower(first)
	for _, tok := range contactTokens {
		if strings.Contains(low, tok) {
			return ""
		}
	}

	if words := len(strings.Fields(first)); words < 2 || words > 5 {
		return ""
	}
	return first
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}
