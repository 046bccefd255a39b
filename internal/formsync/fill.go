package formsync

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
)

// FillFunc copies a record's fields into a cloned entry group.
type FillFunc[T any] func(entry *goquery.Selection, record T)

// Repeatable field names, as submitted by the form.
const (
	FieldInstitution = "institution[]"
	FieldEduLocation = "edu_location[]"
	FieldDegree      = "degree[]"
	FieldEduDates    = "edu_dates[]"
	FieldGPA         = "gpa[]"

	FieldCompany     = "company[]"
	FieldExpLocation = "exp_location[]"
	FieldRole        = "role[]"
	FieldYears       = "years[]"
	FieldExpDetails  = "exp_details[]"

	FieldProjectName  = "project_name[]"
	FieldTechnologies = "technologies[]"
	FieldProjDates    = "proj_dates[]"
	FieldProjSummary  = "proj_summary[]"
)

// Scalar field ids.
const (
	IDName      = "name"
	IDLocation  = "location"
	IDPhone     = "phone"
	IDEmail     = "email"
	IDLinkedIn  = "linkedin"
	IDGitHub    = "github"
	IDLanguages = "languages"
	IDSoftware  = "software"

	IDTemplateChoice = "template_choice"
)

// FillEducation fills an education entry group.
func FillEducation(entry *goquery.Selection, edu types.Education) {
	setField(entry, FieldInstitution, edu.Institution)
	setField(entry, FieldEduLocation, edu.Location)
	setField(entry, FieldDegree, edu.Degree)
	setField(entry, FieldEduDates, edu.Dates)
	setField(entry, FieldGPA, edu.GPA)
}

// FillExperience fills an experience entry group.
func FillExperience(entry *goquery.Selection, exp types.Experience) {
	setField(entry, FieldCompany, exp.Company)
	setField(entry, FieldExpLocation, exp.Location)
	setField(entry, FieldRole, exp.Role)
	setField(entry, FieldYears, exp.Years)
	setField(entry, FieldExpDetails, exp.Details)
}

// FillProject fills a project entry group.
func FillProject(entry *goquery.Selection, proj types.Project) {
	setField(entry, FieldProjectName, proj.Name)
	setField(entry, FieldTechnologies, proj.Technologies)
	setField(entry, FieldProjDates, proj.Dates)
	setField(entry, FieldProjSummary, proj.Summary)
}

// Populate sets every scalar field from p; absent values clear the field.
func (f *Form) Populate(p *types.Profile) {
	if f == nil || f.doc == nil {
		return
	}
	if p == nil {
		p = &types.Profile{}
	}

	f.setByID(IDName, p.Name)
	f.setByID(IDLocation, p.Location)
	f.setByID(IDPhone, p.Phone)
	f.setByID(IDEmail, p.Email)
	f.setByID(IDLinkedIn, p.LinkedIn)
	f.setByID(IDGitHub, p.GitHub)
	f.setByID(IDLanguages, p.SkillLanguages())
	f.setByID(IDSoftware, p.SkillSoftware())
}

// Fill populates the scalar fields and rebuilds all three sections from p.
func (f *Form) Fill(p *types.Profile) {
	if f == nil {
		return
	}
	if p == nil {
		p = &types.Profile{}
	}

	f.Populate(p)
	RebuildSection(f, f.Container(string(SectionEducation)), p.Education, FillEducation)
	RebuildSection(f, f.Container(string(SectionExperience)), p.Experience, FillExperience)
	RebuildSection(f, f.Container(string(SectionProjects)), p.Projects, FillProject)
}

// Restore puts a submitted draft back into the form: scalar fields are set
// and each section gets exactly one entry group per record. A section the
// draft left empty stays empty.
func (f *Form) Restore(p *types.Profile) {
	if f == nil {
		return
	}
	if p == nil {
		p = &types.Profile{}
	}

	f.Populate(p)
	replaceEntries(f, f.Container(string(SectionEducation)), p.Education, FillEducation)
	replaceEntries(f, f.Container(string(SectionExperience)), p.Experience, FillExperience)
	replaceEntries(f, f.Container(string(SectionProjects)), p.Projects, FillProject)
}

// Profile reads the current field values back out of the document. Only
// live entry groups are read.
func (f *Form) Profile() *types.Profile {
	p := &types.Profile{}
	if f == nil || f.doc == nil {
		return p
	}

	p.Name = f.valueByID(IDName)
	p.Location = f.valueByID(IDLocation)
	p.Phone = f.valueByID(IDPhone)
	p.Email = f.valueByID(IDEmail)
	p.LinkedIn = f.valueByID(IDLinkedIn)
	p.GitHub = f.valueByID(IDGitHub)

	languages, software := f.valueByID(IDLanguages), f.valueByID(IDSoftware)
	if languages != "" || software != "" {
		p.Skills = &types.Skills{Languages: languages, Software: software}
	}

	f.Entries(string(SectionEducation)).Each(func(_ int, e *goquery.Selection) {
		p.Education = append(p.Education, types.Education{
			Institution: fieldValue(e, FieldInstitution),
			Location:    fieldValue(e, FieldEduLocation),
			Degree:      fieldValue(e, FieldDegree),
			Dates:       fieldValue(e, FieldEduDates),
			GPA:         fieldValue(e, FieldGPA),
		})
	})
	f.Entries(string(SectionExperience)).Each(func(_ int, e *goquery.Selection) {
		p.Experience = append(p.Experience, types.Experience{
			Company:  fieldValue(e, FieldCompany),
			Location: fieldValue(e, FieldExpLocation),
			Role:     fieldValue(e, FieldRole),
			Years:    fieldValue(e, FieldYears),
			Details:  fieldValue(e, FieldExpDetails),
		})
	})
	f.Entries(string(SectionProjects)).Each(func(_ int, e *goquery.Selection) {
		p.Projects = append(p.Projects, types.Project{
			Name:         fieldValue(e, FieldProjectName),
			Technologies: fieldValue(e, FieldTechnologies),
			Dates:        fieldValue(e, FieldProjDates),
			Summary:      fieldValue(e, FieldProjSummary),
		})
	})

	return p
}

// FieldValue returns the value of the named field inside entry.
func FieldValue(entry *goquery.Selection, name string) string {
	if entry == nil {
		return ""
	}
	return fieldValue(entry, name)
}

func (f *Form) setByID(id, value string) {
	setValue(f.doc.Find("#"+id), value)
}

func (f *Form) valueByID(id string) string {
	return readValue(f.doc.Find("#" + id).First())
}

func setField(entry *goquery.Selection, name, value string) {
	if entry == nil {
		return
	}
	setValue(entry.Find(`[name="`+name+`"]`), value)
}

func fieldValue(entry *goquery.Selection, name string) string {
	return readValue(entry.Find(`[name="` + name + `"]`).First())
}

// setValue writes value into every matched input or textarea.
func setValue(sel *goquery.Selection, value string) {
	sel.Each(func(_ int, field *goquery.Selection) {
		if goquery.NodeName(field) == "textarea" {
			field.SetText(value)
			return
		}
		field.SetAttr("value", value)
	})
}

func readValue(field *goquery.Selection) string {
	if field.Length() == 0 {
		return ""
	}
	if goquery.NodeName(field) == "textarea" {
		return field.Text()
	}
	return field.AttrOr("value", "")
}

// SelectOption marks the option with the given value as selected in the
// select element with the given id. It reports whether such an option exists.
func (f *Form) SelectOption(id, value string) bool {
	if f == nil || f.doc == nil {
		return false
	}
	options := f.doc.Find("select#" + id + " option")
	match := options.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("value", "") == value
	})
	if match.Length() == 0 {
		return false
	}
	options.RemoveAttr("selected")
	match.First().SetAttr("selected", "")
	return true
}
