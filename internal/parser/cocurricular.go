package parser

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-extractor/internal/models"
)

var (
	orgWithPeriod = regexp.MustCompile(`(.+?)\s+(?:at|-|\x{2013}|\x{2014})\s+(.+?)\s*\(([^)]+)\)`)
	colonSplit    = regexp.MustCompile(`^(.+?)\s*:\s*(.+)`)
	orgOnly       = regexp.MustCompile(`(.+?)\s+(?:at|-|\x{2013}|\x{2014})\s+(.+)`)
	dashSplit     = regexp.MustCompile(`^(.+?)\s*-\s*(.+)`)

	// descriptionVerbs mark the text after a separator as a description of
	// what was done rather than an organization name.
	descriptionVerbs = regexp.MustCompile(`(?i)\b(?:won|achieved|led|organized|participated|volunteered)\b`)
)

// ParseCoCurricular turns each bullet into an activity. Patterns are tried
// in order and the first match wins:
//
//	Title at Org (Period)
//	Title: Description
//	Title at Org
//	Title - Description
func ParseCoCurricular(text string) []models.CoCurricularItem {
	items := []models.CoCurricularItem{}
	if strings.TrimSpace(text) == "" {
		return items
	}

	for _, bullet := range ToList(text) {
		items = append(items, parseActivity(bullet))
	}
	return items
}

func parseActivity(bullet string) models.CoCurricularItem {
	item := models.CoCurricularItem{Title: bullet}

	if m := orgWithPeriod.FindStringSubmatch(bullet); m != nil {
		item.Title = strings.TrimSpace(m[1])
		item.Organization = models.StringPtr(strings.TrimSpace(m[2]))
		item.Period = models.StringPtr(strings.TrimSpace(m[3]))
		return item
	}

	if m := colonSplit.FindStringSubmatch(bullet); m != nil {
		item.Title = strings.TrimSpace(m[1])
		item.Description = models.StringPtr(strings.TrimSpace(m[2]))
		return item
	}

	if m := orgOnly.FindStringSubmatch(bullet); m != nil && !descriptionVerbs.MatchString(m[2]) {
		item.Title = strings.TrimSpace(m[1])
		item.Organization = models.StringPtr(strings.TrimSpace(m[2]))
		return item
	}

	if m := dashSplit.FindStringSubmatch(bullet); m != nil {
		item.Title = strings.TrimSpace(m[1])
		item.Description = models.StringPtr(strings.TrimSpace(m[2]))
	}
	return item
}
