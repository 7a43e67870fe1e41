package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections(t *testing.T) {
	text := strings.Join([]string{
		"Jane Public",
		"jane@x.com",
		"",
		"## Education",
		"MIT",
		"GPA: 3.9",
		"",
		"**EXPERIENCE**",
		"Engineer | Acme",
		"",
		"Technical Skills:",
		"Languages: Go",
		"Co-Curricular Activities",
		"- Chess club",
		"Profile",
		"Curious engineer",
	}, "\n")

	sections := SplitSections(text)

	assert.Equal(t, "Jane Public\njane@x.com", sections[SectionHeader])
	assert.Equal(t, "MIT\nGPA: 3.9", sections[SectionEducation])
	assert.Equal(t, "Engineer | Acme", sections[SectionExperience])
	assert.Equal(t, "Languages: Go", sections[SectionSkills])
	assert.Equal(t, "- Chess club", sections[SectionCoCurricular])
	assert.Equal(t, "Curious engineer", sections[SectionProfile])
	assert.Len(t, sections, 6)
}

func TestSplitSections_NoHeadings(t *testing.T) {
	text := "Jane Public\nSome text about education and skills"

	sections := SplitSections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, text, sections[SectionHeader])
}

func TestSplitSections_EmptySectionsOmitted(t *testing.T) {
	sections := SplitSections("Education\n\nSkills\nGo")

	_, hasEducation := sections[SectionEducation]
	_, hasHeader := sections[SectionHeader]
	assert.False(t, hasEducation)
	assert.False(t, hasHeader)
	assert.Equal(t, "Go", sections[SectionSkills])
}

func TestSplitSections_StyledAliases(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
		isHead  bool
	}{
		{name: "title case alias", heading: "Work Experience", want: SectionExperience, isHead: true},
		{name: "upper case alias", heading: "PROFESSIONAL EXPERIENCE", want: SectionExperience, isHead: true},
		{name: "lower case alias is body text", heading: "work experience", isHead: false},
		{name: "exact title in any case", heading: "eDuCaTiOn", want: SectionEducation, isHead: true},
		{name: "sentence is body text", heading: "Education is important to me", isHead: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := SplitSections(tt.heading + "\nbody")
			if tt.isHead {
				assert.Equal(t, "body", sections[tt.want])
				return
			}
			assert.Equal(t, tt.heading+"\nbody", sections[SectionHeader])
		})
	}
}

func TestSplitSections_KeepsEveryNonHeadingLine(t *testing.T) {
	bodies := [][]string{
		{"Jane Public", "jane@x.com"},
		{"MIT", "GPA: 3.9"},
		{"Engineer | Acme", "- Built APIs"},
		{"Languages: Go, Python"},
	}
	headings := []string{"", "Education", "EXPERIENCE", "## Skills"}
	order := []string{SectionHeader, SectionEducation, SectionExperience, SectionSkills}

	var lines, want []string
	for i, body := range bodies {
		if headings[i] != "" {
			lines = append(lines, headings[i])
		}
		lines = append(lines, body...)
		want = append(want, body...)
	}

	sections := SplitSections(strings.Join(lines, "\n"))

	var got []string
	for _, name := range order {
		got = append(got, sections[name])
	}
	assert.Equal(t, strings.Join(want, "\n"), strings.Join(got, "\n"))
}
