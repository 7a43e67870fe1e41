package parser

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-extractor/internal/models"
)

// A dash only separates title from description when preceded by
// whitespace, so hyphenated words stay whole.
var titleDescription = regexp.MustCompile(`^\*{0,2}(.+?)\*{0,2}\s*(?::|\s-)\s*(.+)$`)

// ParseAchievements turns each bullet into an achievement, splitting
// "Title: description" when present.
func ParseAchievements(text string) []models.AchievementItem {
	items := []models.AchievementItem{}
	if strings.TrimSpace(text) == "" {
		return items
	}

	for _, bullet := range ToList(text) {
		item := models.AchievementItem{Title: bullet}
		// A split that leaves no title keeps the whole bullet instead.
		if m := titleDescription.FindStringSubmatch(bullet); m != nil {
			if title := strings.TrimSpace(strings.Trim(strings.TrimSpace(m[1]), "*")); title != "" {
				item.Title = title
				item.Description = models.StringPtr(strings.TrimSpace(m[2]))
			}
		}
		items = append(items, item)
	}
	return items
}
