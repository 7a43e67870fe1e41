package parser

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-extractor/internal/models"
)

var techStackSuffix = regexp.MustCompile(`\|\s*(.+)$`)

const defaultProjectName = "Project"

// ParseProjects treats every blank-line separated block as one project.
// A trailing "| ..." on the header is the tech stack.
func ParseProjects(text string) []models.ProjectItem {
	items := []models.ProjectItem{}
	for _, block := range splitBlocks(text) {
		header := blockHeader(block)

		item := models.ProjectItem{Details: ToList(block)}
		if m := techStackSuffix.FindStringSubmatchIndex(header); m != nil {
			item.TechStack = models.StringPtr(strings.TrimSpace(header[m[2]:m[3]]))
			header = header[:m[0]]
		}

		item.Name = strings.TrimSpace(header)
		if item.Name == "" {
			item.Name = defaultProjectName
		}
		items = append(items, item)
	}
	return items
}
