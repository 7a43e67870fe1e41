package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	excessNewlines  = regexp.MustCompile(`\n{3,}`)

	lineEndings  = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	bulletGlyphs = strings.NewReplacer(
		"_•_", "-",
		"•", "-",
		"●", "-",
		"▪", "-",
		"◦", "-",
		"‣", "-",
		"∙", "-",
	)
)

// Clean normalizes raw text to NFKC, collapses whitespace and rewrites
// bullet glyphs to "-". Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	text := norm.NFKC.String(raw)
	text = lineEndings.Replace(text)
	text = strings.ReplaceAll(text, "\ufffd", " ")
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = bulletGlyphs.Replace(text)
	return strings.TrimSpace(text)
}
