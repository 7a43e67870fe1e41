package parser

import (
	"regexp"
	"strings"
)

var (
	bulletMarker   = regexp.MustCompile(`^(?:-|\*|•)\s+`)
	sentenceBreaks = regexp.MustCompile(`\.\s+`)
)

// minSentenceLen is the shortest fallback segment kept as a bullet.
const minSentenceLen = 5

// ToList returns the text of every bulleted line in block. When the block
// has no bullets it falls back to period-space sentence splitting.
func ToList(block string) []string {
	items := []string{}
	for _, line := range strings.Split(block, "\n") {
		s := strings.TrimSpace(line)
		if !bulletMarker.MatchString(s) {
			continue
		}
		if s = strings.TrimSpace(bulletMarker.ReplaceAllString(s, "")); s != "" {
			items = append(items, s)
		}
	}
	if len(items) > 0 {
		return items
	}

	for _, chunk := range sentenceBreaks.Split(strings.TrimSpace(block), -1) {
		s := strings.TrimRight(strings.TrimSpace(chunk), ".")
		if len(s) > minSentenceLen {
			items = append(items, s)
		}
	}
	return items
}
