package types

import "strings"

// Template choices understood by the renderer.
const (
	TemplateProfessional = "professional"
	TemplateModern       = "modern"

	// DefaultTemplate is used when a submission names no template.
	DefaultTemplate = TemplateProfessional
)

// Skill group labels, in display order.
const (
	SkillGroupLanguages = "Languages"
	SkillGroupSoftware  = "Software"
)

// Resume is the render-shaped view built from a submitted Profile: values are
// trimmed, empty entries are dropped and free text is split into lists.
type Resume struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`

	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Skills     []SkillGroup      `json:"skills"`

	TemplateChoice string `json:"template_choice"`
}

// EducationEntry is a rendered education line.
type EducationEntry struct {
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
	GPA         string `json:"gpa"`
}

// ExperienceEntry is a rendered role with its bullet points.
type ExperienceEntry struct {
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Years    string   `json:"years"`
	Details  []string `json:"details"`
}

// ProjectEntry is a rendered project.
type ProjectEntry struct {
	Name         string `json:"name"`
	Technologies string `json:"technologies"`
	Dates        string `json:"dates"`
	Summary      string `json:"summary"`
}

// SkillGroup is a labelled list of skills, e.g. Languages: Go, SQL.
type SkillGroup struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// SkillItems returns the items of the group with the given label, or nil.
func (r *Resume) SkillItems(label string) []string {
	if r == nil {
		return nil
	}
	for _, g := range r.Skills {
		if g.Label == label {
			return g.Items
		}
	}
	return nil
}

// ToProfile converts the resume back to form values so a previous
// submission can prefill the form.
func (r *Resume) ToProfile() *Profile {
	if r == nil {
		return &Profile{}
	}

	p := &Profile{
		Name:     r.Name,
		Location: r.Location,
		Phone:    r.Phone,
		Email:    r.Email,
		LinkedIn: r.LinkedIn,
		GitHub:   r.GitHub,
	}

	for _, e := range r.Education {
		p.Education = append(p.Education, Education{
			Institution: e.Institution,
			Location:    e.Location,
			Degree:      e.Degree,
			Dates:       e.Dates,
			GPA:         e.GPA,
		})
	}
	for _, e := range r.Experience {
		p.Experience = append(p.Experience, Experience{
			Company:  e.Company,
			Location: e.Location,
			Role:     e.Role,
			Years:    e.Years,
			Details:  strings.Join(e.Details, "\n"),
		})
	}
	for _, e := range r.Projects {
		p.Projects = append(p.Projects, Project{
			Name:         e.Name,
			Technologies: e.Technologies,
			Dates:        e.Dates,
			Summary:      e.Summary,
		})
	}

	languages := strings.Join(r.SkillItems(SkillGroupLanguages), ", ")
	software := strings.Join(r.SkillItems(SkillGroupSoftware), ", ")
	if languages != "" || software != "" {
		p.Skills = &Skills{Languages: languages, Software: software}
	}

	return p
}
