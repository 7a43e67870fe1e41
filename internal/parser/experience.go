package parser

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-extractor/internal/models"
)

const monthName = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`

var periodPattern = regexp.MustCompile(
	`\b` + monthName + `\s*\d{4}\b.*?(?:\b` + monthName + `\s*\d{4}\b|Present|present)`,
)

// defaultRole is used when a position has a company but no role.
const defaultRole = "Role"

// ParseExperience treats every blank-line separated block as one position.
// The header line gives role and company, the first month-year span in the
// block gives the period and the bullets give the details. Blocks without
// a role or company are skipped.
func ParseExperience(text string) []models.ExperienceItem {
	items := []models.ExperienceItem{}
	for _, block := range splitBlocks(text) {
		var role, company string
		if fields := headerFields(blockHeader(block)); len(fields) > 0 {
			role = fields[0]
			if len(fields) >= 2 {
				company = fields[1]
			}
		}
		if role == "" && company == "" {
			continue
		}
		if role == "" {
			role = defaultRole
		}

		item := models.ExperienceItem{
			Role:    role,
			Company: models.StringPtr(company),
			Details: ToList(block),
		}
		if m := periodPattern.FindString(block); m != "" {
			item.Period = models.StringPtr(strings.TrimSpace(m))
		}
		items = append(items, item)
	}
	return items
}
