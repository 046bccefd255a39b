// Package formdata turns submitted form values into profile drafts and
// render-ready resumes.
package formdata

import (
	"net/url"
	"strings"

	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/types"
)

// FieldTemplateChoice is the form field naming the resume template.
const FieldTemplateChoice = "template_choice"

// ParseProfile reads submitted values into a Profile. Repeatable fields are
// zipped by position; a list shorter than its siblings reads as empty at the
// missing positions. Values are kept as typed and every entry is kept, blank
// ones included, so a draft re-renders exactly as submitted.
func ParseProfile(values url.Values) *types.Profile {
	get := func(key string) string {
		return values.Get(key)
	}

	p := &types.Profile{
		Name:     get(formsync.IDName),
		Location: get(formsync.IDLocation),
		Phone:    get(formsync.IDPhone),
		Email:    get(formsync.IDEmail),
		LinkedIn: get(formsync.IDLinkedIn),
		GitHub:   get(formsync.IDGitHub),
	}

	languages, software := get(formsync.IDLanguages), get(formsync.IDSoftware)
	if languages != "" || software != "" {
		p.Skills = &types.Skills{Languages: languages, Software: software}
	}

	edu := columns(values,
		formsync.FieldInstitution, formsync.FieldEduLocation, formsync.FieldDegree,
		formsync.FieldEduDates, formsync.FieldGPA)
	for _, row := range edu {
		p.Education = append(p.Education, types.Education{
			Institution: row[0], Location: row[1], Degree: row[2], Dates: row[3], GPA: row[4],
		})
	}

	exp := columns(values,
		formsync.FieldCompany, formsync.FieldExpLocation, formsync.FieldRole,
		formsync.FieldYears, formsync.FieldExpDetails)
	for _, row := range exp {
		p.Experience = append(p.Experience, types.Experience{
			Company: row[0], Location: row[1], Role: row[2], Years: row[3], Details: row[4],
		})
	}

	proj := columns(values,
		formsync.FieldProjectName, formsync.FieldTechnologies, formsync.FieldProjDates,
		formsync.FieldProjSummary)
	for _, row := range proj {
		p.Projects = append(p.Projects, types.Project{
			Name: row[0], Technologies: row[1], Dates: row[2], Summary: row[3],
		})
	}

	return p
}

// TemplateChoice returns the submitted template choice, or the default.
func TemplateChoice(values url.Values) string {
	choice := strings.TrimSpace(values.Get(FieldTemplateChoice))
	if choice == "" {
		return types.DefaultTemplate
	}
	return choice
}

// columns zips the value lists of keys into rows, padding short lists.
func columns(values url.Values, keys ...string) [][]string {
	n := 0
	for _, key := range keys {
		n = max(n, len(values[key]))
	}

	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, len(keys))
		for j, key := range keys {
			if list := values[key]; i < len(list) {
				row[j] = list[i]
			}
		}
		rows[i] = row
	}
	return rows
}
