package models

// SchemaVersion is stamped on every record produced by the pipeline.
const SchemaVersion = "1.0.0"

type Socials struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Website  *string `json:"website"`
	X        *string `json:"x"`
}

type EducationItem struct {
	College string  `json:"college"`
	Degree  *string `json:"degree"`
	GPA     *string `json:"gpa"`
	Years   *string `json:"years"`
}

type ExperienceItem struct {
	Role    string   `json:"role"`
	Company *string  `json:"company"`
	Period  *string  `json:"period"`
	Details []string `json:"details"`
}

type ProjectItem struct {
	Name      string   `json:"name"`
	TechStack *string  `json:"tech_stack"`
	Details   []string `json:"details"`
}

type Skills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
}

type AchievementItem struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type CoCurricularItem struct {
	Title        string  `json:"title"`
	Organization *string `json:"organization"`
	Period       *string `json:"period"`
	Description  *string `json:"description"`
}

// ResumeRecord is the canonical structured résumé.
// Scalars serialize as null when absent, lists as [].
type ResumeRecord struct {
	SchemaVersion  string             `json:"schemaVersion"`
	SourceFile     *string            `json:"sourceFile"`
	Name           *string            `json:"name"`
	Email          *string            `json:"email"`
	Phone          *string            `json:"phone"`
	Location       *string            `json:"location"`
	Socials        Socials            `json:"socials"`
	Education      []EducationItem    `json:"education"`
	Experience     []ExperienceItem   `json:"experience"`
	Projects       []ProjectItem      `json:"projects"`
	Skills         Skills             `json:"skills"`
	Certifications []string           `json:"certifications"`
	Achievements   []AchievementItem  `json:"achievements"`
	CoCurricular   []CoCurricularItem `json:"coCurricular"`
	Summary        *string            `json:"summary"`
}

// NewResumeRecord returns an empty record with the current schema version.
func NewResumeRecord() *ResumeRecord {
	r := &ResumeRecord{SchemaVersion: SchemaVersion}
	r.Normalize()
	return r
}

// Normalize replaces nil lists with empty ones so absent sections
// serialize as [] instead of null.
func (r *ResumeRecord) Normalize() {
	if r.Education == nil {
		r.Education = []EducationItem{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceItem{}
	}
	for i := range r.Experience {
		if r.Experience[i].Details == nil {
			r.Experience[i].Details = []string{}
		}
	}
	if r.Projects == nil {
		r.Projects = []ProjectItem{}
	}
	for i := range r.Projects {
		if r.Projects[i].Details == nil {
			r.Projects[i].Details = []string{}
		}
	}
	if r.Skills.Languages == nil {
		r.Skills.Languages = []string{}
	}
	if r.Skills.Frameworks == nil {
		r.Skills.Frameworks = []string{}
	}
	if r.Skills.Tools == nil {
		r.Skills.Tools = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Achievements == nil {
		r.Achievements = []AchievementItem{}
	}
	if r.CoCurricular == nil {
		r.CoCurricular = []CoCurricularItem{}
	}
}

// Clone returns a deep copy of the record.
func (r *ResumeRecord) Clone() *ResumeRecord {
	if r == nil {
		return nil
	}

	out := &ResumeRecord{
		SchemaVersion: r.SchemaVersion,
		SourceFile:    cloneString(r.SourceFile),
		Name:          cloneString(r.Name),
		Email:         cloneString(r.Email),
		Phone:         cloneString(r.Phone),
		Location:      cloneString(r.Location),
		Socials: Socials{
			Github:   cloneString(r.Socials.Github),
			Linkedin: cloneString(r.Socials.Linkedin),
			Website:  cloneString(r.Socials.Website),
			X:        cloneString(r.Socials.X),
		},
		Skills: Skills{
			Languages:  cloneStrings(r.Skills.Languages),
			Frameworks: cloneStrings(r.Skills.Frameworks),
			Tools:      cloneStrings(r.Skills.Tools),
		},
		Certifications: cloneStrings(r.Certifications),
		Summary:        cloneString(r.Summary),
	}

	if r.Education != nil {
		out.Education = make([]EducationItem, len(r.Education))
		for i, e := range r.Education {
			out.Education[i] = EducationItem{
				College: e.College,
				Degree:  cloneString(e.Degree),
				GPA:     cloneString(e.GPA),
				Years:   cloneString(e.Years),
			}
		}
	}
	if r.Experience != nil {
		out.Experience = make([]ExperienceItem, len(r.Experience))
		for i, e := range r.Experience {
			out.Experience[i] = ExperienceItem{
				Role:    e.Role,
				Company: cloneString(e.Company),
				Period:  cloneString(e.Period),
				Details: cloneStrings(e.Details),
			}
		}
	}
	if r.Projects != nil {
		out.Projects = make([]ProjectItem, len(r.Projects))
		for i, p := range r.Projects {
			out.Projects[i] = ProjectItem{
				Name:      p.Name,
				TechStack: cloneString(p.TechStack),
				Details:   cloneStrings(p.Details),
			}
		}
	}
	if r.Achievements != nil {
		out.Achievements = make([]AchievementItem, len(r.Achievements))
		for i, a := range r.Achievements {
			out.Achievements[i] = AchievementItem{
				Title:       a.Title,
				Description: cloneString(a.Description),
			}
		}
	}
	if r.CoCurricular != nil {
		out.CoCurricular = make([]CoCurricularItem, len(r.CoCurricular))
		for i, c := range r.CoCurricular {
			out.CoCurricular[i] = CoCurricularItem{
				Title:        c.Title,
				Organization: cloneString(c.Organization),
				Period:       cloneString(c.Period),
				Description:  cloneString(c.Description),
			}
		}
	}

	return out
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
