package parser

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	SectionHeader         = "header"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionAchievements   = "achievements"
	SectionCertifications = "certifications"
	SectionSummary        = "summary"
	SectionProfile        = "profile"
	SectionCoCurricular   = "cocurricular"
)

// maxHeadingLen bounds the Title-Case/ALL-CAPS heading rule.
const maxHeadingLen = 60

var headingMarkers = regexp.MustCompile("[*_#:`]+")

// exactHeadings match on the lowercased line regardless of case style.
var exactHeadings = map[string]string{
	"education":        SectionEducation,
	"experience":       SectionExperience,
	"projects":         SectionProjects,
	"technical skills": SectionSkills,
	"skills":           SectionSkills,
	"achievements":     SectionAchievements,
	"certifications":   SectionCertifications,
	"summary":          SectionSummary,
	"profile":          SectionProfile,
}

// styledHeadings only count when the line is short and Title-Case or ALL-CAPS.
var styledHeadings = map[string]string{
	"work experience":             SectionExperience,
	"professional experience":     SectionExperience,
	"co-curricular":               SectionCoCurricular,
	"co-curricular activities":    SectionCoCurricular,
	"extracurricular activities":  SectionCoCurricular,
	"extra-curricular activities": SectionCoCurricular,
	"activities":                  SectionCoCurricular,
}

// SplitSections walks the text line by line and buckets every non-heading
// line under the most recent heading. Text before any heading lands in
// "header". Empty sections are omitted.
func SplitSections(text string) map[string]string {
	buffers := make(map[string][]string)
	current := SectionHeader

	for _, line := range strings.Split(text, "\n") {
		if name, ok := detectHeading(line); ok {
			current = name
			continue
		}
		buffers[current] = append(buffers[current], line)
	}

	sections := make(map[string]string, len(buffers))
	for name, lines := range buffers {
		body := strings.TrimSpace(strings.Join(lines, "\n"))
		if body != "" {
			sections[name] = body
		}
	}
	return sections
}

func detectHeading(line string) (string, bool) {
	raw := strings.TrimSpace(headingMarkers.ReplaceAllString(line, ""))
	if raw == "" {
		return "", false
	}
	low := strings.ToLower(raw)

	if name, ok := exactHeadings[low]; ok {
		return name, true
	}

	if len([]rune(raw)) > maxHeadingLen {
		return "", false
	}
	if !isTitleCase(raw) && !(isUpperCase(raw) && len(raw) >= 3) {
		return "", false
	}
	if name, ok := styledHeadings[low]; ok {
		return name, true
	}
	return "", false
}

// isTitleCase reports whether every word starts upper case and continues
// lower case, with at least one cased letter.
func isTitleCase(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased = true
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
