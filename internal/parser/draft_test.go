package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-extractor/internal/models"
)

const sampleResume = `# Jane Q. Public
jane@x.com | +1 (555) 123-4567 | https://github.com/jane | https://linkedin.com/in/jane



## Summary
Backend engineer focused on data pipelines.

## Education
Massachusetts Institute of Technology
B.S. in Computer Science
GPA: 3.9
2018 - 2022

## Experience
**Software Engineer** | Acme Corp
Jan 2022 - Present
• Built ingestion APIs
• Cut latency by 40%

## Projects
**Resume Parser** | Go, Fiber
- Parses resumes

## Technical Skills
Languages: Go, Python
Frameworks: Fiber
Tools: Docker, Git

## Certifications
- AWS Solutions Architect

## Achievements
- Hackathon Winner: first place`

func TestBuildDraft(t *testing.T) {
	draft, err := BuildDraft(Clean(sampleResume), "jane.md")
	require.NoError(t, err)

	assert.Equal(t, models.SchemaVersion, draft.SchemaVersion)
	assert.Equal(t, "jane.md", *draft.SourceFile)
	assert.Equal(t, "Jane Q. Public", *draft.Name)
	assert.Equal(t, "jane@x.com", *draft.Email)
	assert.Equal(t, "+1 (555) 123-4567", *draft.Phone)
	assert.Nil(t, draft.Location)
	assert.Equal(t, "https://github.com/jane", *draft.Socials.Github)
	assert.Equal(t, "https://linkedin.com/in/jane", *draft.Socials.Linkedin)
	assert.Nil(t, draft.Socials.Website)
	assert.Equal(t, "Backend engineer focused on data pipelines.", *draft.Summary)

	require.Len(t, draft.Education, 1)
	assert.Equal(t, "Massachusetts Institute of Technology", draft.Education[0].College)
	assert.Equal(t, "B.S. in Computer Science", *draft.Education[0].Degree)
	assert.Equal(t, "2018 - 2022", *draft.Education[0].Years)

	require.Len(t, draft.Experience, 1)
	assert.Equal(t, "Software Engineer", draft.Experience[0].Role)
	assert.Equal(t, "Jan 2022 - Present", *draft.Experience[0].Period)
	assert.Equal(t, []string{"Built ingestion APIs", "Cut latency by 40%"}, draft.Experience[0].Details)

	require.Len(t, draft.Projects, 1)
	assert.Equal(t, "Go, Fiber", *draft.Projects[0].TechStack)

	assert.Equal(t, []string{"Go", "Python"}, draft.Skills.Languages)
	assert.Equal(t, []string{"Fiber"}, draft.Skills.Frameworks)
	assert.Equal(t, []string{"Docker", "Git"}, draft.Skills.Tools)
	assert.Equal(t, []string{"AWS Solutions Architect"}, draft.Certifications)
	assert.Equal(t, []models.AchievementItem{{Title: "Hackathon Winner", Description: models.StringPtr("first place")}}, draft.Achievements)
	assert.Equal(t, []models.CoCurricularItem{}, draft.CoCurricular)
}

func TestBuildDraft_RoundTrip(t *testing.T) {
	draft, err := BuildDraft(Clean(sampleResume), "jane.md")
	require.NoError(t, err)

	data, err := json.Marshal(draft)
	require.NoError(t, err)

	decoded, err := models.ParseResumeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, draft, decoded)
}

func TestBuildDraft_EmptyText(t *testing.T) {
	draft, err := BuildDraft("", "")
	require.NoError(t, err)

	assert.Nil(t, draft.Name)
	assert.Nil(t, draft.SourceFile)
	assert.Nil(t, draft.Summary)
	assert.Equal(t, []models.EducationItem{}, draft.Education)
	assert.Equal(t, []string{}, draft.Certifications)
	assert.Equal(t, []string{}, draft.Skills.Languages)
}

func TestBuildDraft_MalformedAchievementStaysLocal(t *testing.T) {
	draft, err := BuildDraft("Jane Public\nAchievements\n- ** : Winner of hackathon", "x.md")
	require.NoError(t, err)

	require.Len(t, draft.Achievements, 1)
	assert.NotEmpty(t, draft.Achievements[0].Title)
	assert.NoError(t, draft.Validate())
}

func TestBuildDraft_ProfileUsedAsSummary(t *testing.T) {
	draft, err := BuildDraft(Clean("Jane Public\n\nPROFILE\nCurious engineer."), "")
	require.NoError(t, err)

	require.NotNil(t, draft.Summary)
	assert.Equal(t, "Curious engineer.", *draft.Summary)
	assert.Equal(t, "Jane Public", *draft.Name)
}
