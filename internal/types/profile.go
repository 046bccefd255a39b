// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

// Profile is the form-shaped view of a resume: the values a user types into
// the form, one record per repeatable entry group. Every field is optional.
type Profile struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty"`

	Education  []Education  `json:"education,omitempty" yaml:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty" yaml:"experience,omitempty"`
	Projects   []Project    `json:"projects,omitempty" yaml:"projects,omitempty"`

	Skills *Skills `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Skills holds the two comma separated skill lists as typed.
type Skills struct {
	Languages string `json:"languages,omitempty" yaml:"languages,omitempty"`
	Software  string `json:"software,omitempty" yaml:"software,omitempty"`
}

// Education is one education entry group.
type Education struct {
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
	Location    string `json:"edu_location,omitempty" yaml:"edu_location,omitempty"`
	Degree      string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Dates       string `json:"edu_dates,omitempty" yaml:"edu_dates,omitempty"`
	GPA         string `json:"gpa,omitempty" yaml:"gpa,omitempty"`
}

// Experience is one experience entry group. Details holds one bullet per line.
type Experience struct {
	Company  string `json:"company,omitempty" yaml:"company,omitempty"`
	Location string `json:"exp_location,omitempty" yaml:"exp_location,omitempty"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
	Years    string `json:"years,omitempty" yaml:"years,omitempty"`
	Details  string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Project is one project entry group.
type Project struct {
	Name         string `json:"project_name,omitempty" yaml:"project_name,omitempty"`
	Technologies string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Dates        string `json:"proj_dates,omitempty" yaml:"proj_dates,omitempty"`
	Summary      string `json:"proj_summary,omitempty" yaml:"proj_summary,omitempty"`
}

// SkillLanguages returns the languages list, or "" when skills are absent.
func (p *Profile) SkillLanguages() string {
	if p == nil || p.Skills == nil {
		return ""
	}
	return p.Skills.Languages
}

// SkillSoftware returns the software list, or "" when skills are absent.
func (p *Profile) SkillSoftware() string {
	if p == nil || p.Skills == nil {
		return ""
	}
	return p.Skills.Software
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p
	out.Education = append([]Education(nil), p.Education...)
	out.Experience = append([]Experience(nil), p.Experience...)
	out.Projects = append([]Project(nil), p.Projects...)
	if p.Skills != nil {
		skills := *p.Skills
		out.Skills = &skills
	}
	return &out
}
