package parser

import (
	"fmt"

	"alfredoptarigan/resume-extractor/internal/models"
)

// BuildDraft runs the deterministic stages over already cleaned text and
// assembles a schema-valid draft record. A *models.ValidationError means
// the draft could not be made valid and the request must fail.
func BuildDraft(cleaned, sourceFile string) (*models.ResumeRecord, error) {
	sections := SplitSections(cleaned)
	contacts, socials := ExtractContacts(cleaned)

	draft := models.NewResumeRecord()
	draft.SourceFile = models.StringPtr(sourceFile)
	draft.Name = GuessName(sections[SectionHeader], cleaned)
	draft.Email = contacts.Email
	draft.Phone = contacts.Phone
	draft.Socials = socials

	draft.Education = ParseEducation(sections[SectionEducation])
	draft.Experience = ParseExperience(sections[SectionExperience])
	draft.Projects = ParseProjects(sections[SectionProjects])
	draft.Skills = ParseSkills(sections[SectionSkills])
	draft.Achievements = ParseAchievements(sections[SectionAchievements])
	draft.CoCurricular = ParseCoCurricular(sections[SectionCoCurricular])
	if certs := sections[SectionCertifications]; certs != "" {
		draft.Certifications = ToList(certs)
	}

	if summary := sections[SectionSummary]; summary != "" {
		draft.Summary = &summary
	} else if profile := sections[SectionProfile]; profile != "" {
		draft.Summary = &profile
	}

	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("failed to assemble draft: %w", err)
	}
	return draft, nil
}
