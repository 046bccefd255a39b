package formdata

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Build converts a profile into a resume: values are trimmed, entries with no
// content are dropped, experience details become one bullet per non-empty
// line and skills are split on commas.
func Build(p *types.Profile, choice string) *types.Resume {
	if p == nil {
		p = &types.Profile{}
	}
	if strings.TrimSpace(choice) == "" {
		choice = types.DefaultTemplate
	}

	r := &types.Resume{
		Name:           trim(p.Name),
		Location:       trim(p.Location),
		Phone:          trim(p.Phone),
		Email:          trim(p.Email),
		LinkedIn:       trim(p.LinkedIn),
		GitHub:         trim(p.GitHub),
		Education:      []types.EducationEntry{},
		Experience:     []types.ExperienceEntry{},
		Projects:       []types.ProjectEntry{},
		Skills:         []types.SkillGroup{},
		TemplateChoice: strings.TrimSpace(choice),
	}

	for _, e := range p.Education {
		entry := types.EducationEntry{
			Institution: trim(e.Institution),
			Location:    trim(e.Location),
			Degree:      trim(e.Degree),
			Dates:       trim(e.Dates),
			GPA:         trim(e.GPA),
		}
		if anyNonEmpty(entry.Institution, entry.Location, entry.Degree, entry.Dates, entry.GPA) {
			r.Education = append(r.Education, entry)
		}
	}

	for _, e := range p.Experience {
		entry := types.ExperienceEntry{
			Role:     trim(e.Role),
			Company:  trim(e.Company),
			Location: trim(e.Location),
			Years:    trim(e.Years),
			Details:  SplitLines(e.Details),
		}
		if anyNonEmpty(entry.Role, entry.Company, entry.Location, entry.Years) || len(entry.Details) > 0 {
			r.Experience = append(r.Experience, entry)
		}
	}

	for _, e := range p.Projects {
		entry := types.ProjectEntry{
			Name:         trim(e.Name),
			Technologies: trim(e.Technologies),
			Dates:        trim(e.Dates),
			Summary:      trim(e.Summary),
		}
		if anyNonEmpty(entry.Name, entry.Technologies, entry.Dates, entry.Summary) {
			r.Projects = append(r.Projects, entry)
		}
	}

	if items := SplitList(p.SkillLanguages()); len(items) > 0 {
		r.Skills = append(r.Skills, types.SkillGroup{Label: types.SkillGroupLanguages, Items: items})
	}
	if items := SplitList(p.SkillSoftware()); len(items) > 0 {
		r.Skills = append(r.Skills, types.SkillGroup{Label: types.SkillGroupSoftware, Items: items})
	}

	return r
}

// SplitLines returns the trimmed non-empty lines of text.
func SplitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitList returns the trimmed non-empty items of a comma separated list.
func SplitList(list string) []string {
	out := []string{}
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func anyNonEmpty(values ...string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}
