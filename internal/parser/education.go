package parser

import (
	"fmt"
	"regexp"
	"strings"

	"alfredoptarigan/resume-extractor/internal/models"
)

var (
	gpaPattern      = regexp.MustCompile(`(?i)(?:GPA|CGPA)\s*[:\-]?\s*([0-9.\/]+)`)
	yearsPattern    = regexp.MustCompile(`\b(\d{4})\s*[-–]\s*(\d{4}\b|Present|present)`)
	degreePattern   = regexp.MustCompile(`(?i)\b(?:B\.?E\.?|B\.?Tech|B\.?Sc?\.?|Bachelors?|M\.?S\.?|M\.?Sc\.?|M\.?Tech|Masters?|Ph\.?D\.?)\b.*`)
	dateOnlyPattern = regexp.MustCompile(`^(?:\d{4}|Present|present)(?:\s*[-–]\s*(?:\d{4}|Present|present))?$`)
)

// minCollegeLen is the length a line must exceed to be preferred as the
// institution name.
const minCollegeLen = 10

// ParseEducation emits at most one entry per section. The institution is
// the first line longer than minCollegeLen that is neither a GPA line nor
// a bare date; short names such as "MIT" are used when nothing longer
// qualifies.
func ParseEducation(text string) []models.EducationItem {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return []models.EducationItem{}
	}
	buf := strings.Join(lines, " ")

	item := models.EducationItem{}
	if m := gpaPattern.FindStringSubmatch(buf); m != nil {
		item.GPA = models.StringPtr(strings.TrimSpace(m[1]))
	}
	if m := yearsPattern.FindStringSubmatch(buf); m != nil {
		item.Years = models.StringPtr(fmt.Sprintf("%s - %s", m[1], m[2]))
	}
	for _, line := range lines {
		if m := degreePattern.FindString(line); m != "" {
			item.Degree = models.StringPtr(strings.TrimSpace(m))
			break
		}
	}

	item.College = pickCollege(lines)
	if item.College == "" {
		return []models.EducationItem{}
	}
	return []models.EducationItem{item}
}

func pickCollege(lines []string) string {
	fallback := ""
	for _, line := range lines {
		low := strings.ToLower(line)
		if strings.HasPrefix(low, "gpa") || strings.HasPrefix(low, "cgpa") || dateOnlyPattern.MatchString(line) {
			continue
		}
		if len(line) > minCollegeLen {
			return line
		}
		if fallback == "" {
			fallback = line
		}
	}
	return fallback
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}
