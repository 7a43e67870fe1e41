package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-extractor/internal/models"
)

func TestParseEducation(t *testing.T) {
	got := ParseEducation("MIT\nGPA: 3.9\n2018 - 2022")

	require.Len(t, got, 1)
	assert.Equal(t, models.EducationItem{
		College: "MIT",
		GPA:     models.StringPtr("3.9"),
		Years:   models.StringPtr("2018 - 2022"),
	}, got[0])
}

func TestParseEducation_FullEntry(t *testing.T) {
	text := "Indian Institute of Technology, Delhi\nB.Tech in Computer Science\nCGPA: 8.7/10\n2016 – 2020"

	got := ParseEducation(text)

	require.Len(t, got, 1)
	assert.Equal(t, "Indian Institute of Technology, Delhi", got[0].College)
	assert.Equal(t, "B.Tech in Computer Science", *got[0].Degree)
	assert.Equal(t, "8.7/10", *got[0].GPA)
	assert.Equal(t, "2016 - 2020", *got[0].Years)
}

func TestParseEducation_PresentAndMasters(t *testing.T) {
	got := ParseEducation("Stanford University\nMasters in Statistics\n2022 - Present")

	require.Len(t, got, 1)
	assert.Equal(t, "Stanford University", got[0].College)
	assert.Equal(t, "Masters in Statistics", *got[0].Degree)
	assert.Equal(t, "2022 - Present", *got[0].Years)
	assert.Nil(t, got[0].GPA)
}

func TestParseEducation_NoInstitution(t *testing.T) {
	assert.Empty(t, ParseEducation(""))
	assert.Empty(t, ParseEducation("GPA: 3.2\n2019 - 2023"))
}
