package parser

import (
	"regexp"
	"strings"
)

var (
	blankLine        = regexp.MustCompile(`\n\s*\n`)
	emphasisMarkers  = regexp.MustCompile("[*_`]+")
	headingHashes    = regexp.MustCompile(`^#+\s*`)
	headerDelimiters = regexp.MustCompile(`\||·|-`)
)

// splitBlocks splits a section into blank-line separated blocks.
func splitBlocks(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return blankLine.Split(text, -1)
}

// blockHeader returns the first non-empty line of block with emphasis and
// heading markers removed.
func blockHeader(block string) string {
	header := emphasisMarkers.ReplaceAllString(firstLine(block), "")
	return strings.TrimSpace(headingHashes.ReplaceAllString(header, ""))
}

// headerFields splits a header on "|", "·" and "-" and drops empty fields.
// Hyphenated names are split too.
func headerFields(header string) []string {
	var fields []string
	for _, p := range headerDelimiters.Split(header, -1) {
		if s := strings.TrimSpace(p); s != "" {
			fields = append(fields, s)
		}
	}
	return fields
}
