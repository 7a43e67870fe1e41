package parser

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-extractor/internal/models"
)

const (
	languageLabels  = `Languages?`
	frameworkLabels = `Frontend Development|Frameworks?`
	toolLabels      = `Backend Development|Tools?|DevOps|Cloud|Databases?`
)

var (
	languagesLabel  = skillLabel(languageLabels)
	frameworksLabel = skillLabel(frameworkLabels)
	toolsLabel      = skillLabel(toolLabels)

	// nextKnownLabel ends a value where another recognized label starts.
	nextKnownLabel = regexp.MustCompile(
		`(?i)\s(?:` + languageLabels + `|` + frameworkLabels + `|` + toolLabels + `)\s*(?::|-\s)`,
	)
	// nextTitledLabel ends a value at an unknown "Title Case:" heading that
	// opens a line or follows a list separator.
	nextTitledLabel = regexp.MustCompile(
		`(?m)(?:^|[,|/;][ \t]*)((?:[A-Z][A-Za-z+#.&]*[ \t]+){0,2}[A-Z][A-Za-z+#.&]*)[ \t]*:`,
	)
	skillSeparators = regexp.MustCompile(`[,|/]`)
)

func skillLabel(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + alternatives + `)\s*[:\-]\s*`)
}

// ParseSkills reads the "Label: a, b, c" runs for languages, frameworks
// and tools. A value runs until the next label or the end of the section.
func ParseSkills(text string) models.Skills {
	buf := strings.Join(nonEmptyLines(text), "\n")
	return models.Skills{
		Languages:  grabSkills(buf, languagesLabel),
		Frameworks: grabSkills(buf, frameworksLabel),
		Tools:      grabSkills(buf, toolsLabel),
	}
}

func grabSkills(buf string, label *regexp.Regexp) []string {
	skills := []string{}

	loc := label.FindStringIndex(buf)
	if loc == nil {
		return skills
	}
	rest := buf[loc[1]:]

	if m := nextKnownLabel.FindStringIndex(rest); m != nil {
		rest = rest[:m[0]]
	}
	for _, m := range nextTitledLabel.FindAllStringSubmatchIndex(rest, -1) {
		if m[2] > 0 {
			rest = rest[:m[2]]
			break
		}
	}

	for _, part := range skillSeparators.Split(rest, -1) {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
