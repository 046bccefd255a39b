package formsync

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFormHTML = `<!doctype html>
<html><body>
<form action="/generate" method="post">
  <button type="submit" id="load-sample-data" name="action">Load</button>
  <input id="name" name="name" required>
  <input id="location" name="location">
  <input id="phone" name="phone" required>
  <input id="email" name="email" required oninvalid="this.setCustomValidity('x')">
  <input id="linkedin" name="linkedin">
  <input id="github" name="github">
  <input id="languages" name="languages">
  <input id="software" name="software">

  <div class="repeatable-fields" data-section="education">
    <div class="field-entry template" style="display:none; margin: 0">
      <input name="institution[]" required disabled>
      <input name="edu_location[]" disabled>
      <input name="degree[]" disabled>
      <input name="edu_dates[]" disabled>
      <input name="gpa[]" value="template-gpa" disabled>
      <button class="remove-entry-button" name="action">Remove</button>
    </div>
  </div>
  <button class="add-button" data-add="education" name="action">Add</button>

  <div class="repeatable-fields" data-section="experience">
    <div class="field-entry template" style="display:none">
      <input name="company[]" disabled>
      <input name="exp_location[]" disabled>
      <input name="role[]" required disabled>
      <input name="years[]" disabled>
      <textarea name="exp_details[]" disabled></textarea>
      <button class="remove-entry-button" name="action">Remove</button>
    </div>
  </div>
  <button class="add-button" data-add="experience" name="action">Add</button>

  <div class="repeatable-fields" data-section="projects">
    <div class="field-entry template" style="display:none">
      <input name="project_name[]" disabled>
      <input name="technologies[]" disabled>
      <input name="proj_dates[]" disabled>
      <textarea name="proj_summary[]" disabled></textarea>
      <button class="remove-entry-button" name="action">Remove</button>
    </div>
  </div>
  <button class="add-button" data-add="projects" name="action">Add</button>

  <select id="template_choice" name="template_choice">
    <option value="professional" selected>Professional</option>
    <option value="modern">Modern</option>
  </select>
</form>
</body></html>`

func newTestForm(t *testing.T, opts ...Option) *Form {
	t.Helper()
	f, err := Parse(strings.NewReader(testFormHTML), opts...)
	require.NoError(t, err)
	return f
}

func fullProfile() *types.Profile {
	return &types.Profile{
		Name:     "Jane Doe",
		Location: "San Francisco, CA",
		Phone:    "(123) 456-7890",
		Email:    "jane.doe@example.com",
		LinkedIn: "https://linkedin.com/in/janedoe",
		GitHub:   "https://github.com/janedoe",
		Education: []types.Education{
			{Institution: "UC Berkeley", Location: "Berkeley, CA", Degree: "M.S.", Dates: "2021 -- 2023", GPA: "3.95"},
			{Institution: "Stanford", Location: "Palo Alto, CA", Degree: "B.S.", Dates: "2017 -- 2021", GPA: "3.80"},
		},
		Experience: []types.Experience{
			{Company: "Google", Location: "Mountain View, CA", Role: "SWE", Years: "2023 -- Present", Details: "Built\nShipped"},
		},
		Projects: []types.Project{
			{Name: "Portfolio", Technologies: "React", Dates: "2023", Summary: "A site"},
		},
		Skills: &types.Skills{Languages: "Go, Python", Software: "Docker"},
	}
}

func TestPopulate_FullProfile(t *testing.T) {
	f := newTestForm(t)
	p := fullProfile()

	f.Populate(p)

	doc := f.Document()
	assert.Equal(t, p.Name, doc.Find("#name").AttrOr("value", "?"))
	assert.Equal(t, p.Location, doc.Find("#location").AttrOr("value", "?"))
	assert.Equal(t, p.Phone, doc.Find("#phone").AttrOr("value", "?"))
	assert.Equal(t, p.Email, doc.Find("#email").AttrOr("value", "?"))
	assert.Equal(t, p.LinkedIn, doc.Find("#linkedin").AttrOr("value", "?"))
	assert.Equal(t, p.GitHub, doc.Find("#github").AttrOr("value", "?"))
	assert.Equal(t, "Go, Python", doc.Find("#languages").AttrOr("value", "?"))
	assert.Equal(t, "Docker", doc.Find("#software").AttrOr("value", "?"))
}

func TestPopulate_PartialAndEmptyClearFields(t *testing.T) {
	f := newTestForm(t)
	f.Populate(fullProfile())

	f.Populate(&types.Profile{Name: "Only Name"})
	doc := f.Document()
	assert.Equal(t, "Only Name", doc.Find("#name").AttrOr("value", "?"))
	assert.Equal(t, "", doc.Find("#email").AttrOr("value", "?"))
	assert.Equal(t, "", doc.Find("#languages").AttrOr("value", "?"), "absent skills should clear the field")

	assert.NotPanics(t, func() { f.Populate(nil) })
	assert.Equal(t, "", doc.Find("#name").AttrOr("value", "?"))
}

func TestRebuildSection_NRecordsInOrder(t *testing.T) {
	f := newTestForm(t)
	container := f.Container(string(SectionEducation))
	require.NotNil(t, container)

	n := RebuildSection(f, container, fullProfile().Education, FillEducation)

	assert.Equal(t, 2, n)
	entries := f.Entries(string(SectionEducation))
	require.Equal(t, 2, entries.Length())
	assert.Equal(t, "UC Berkeley", FieldValue(entries.Eq(0), FieldInstitution))
	assert.Equal(t, "Stanford", FieldValue(entries.Eq(1), FieldInstitution))
}

func TestRebuildSection_ReplacesExistingEntries(t *testing.T) {
	f := newTestForm(t)
	container := f.Container(string(SectionEducation))

	RebuildSection(f, container, fullProfile().Education, FillEducation)
	RebuildSection(f, container, []types.Education{{Institution: "MIT"}}, FillEducation)

	assert.Equal(t, 1, f.Entries(string(SectionEducation)).Length())
}

func TestRebuildSection_SingleRecordExample(t *testing.T) {
	f := newTestForm(t)
	container := f.Container(string(SectionEducation))

	RebuildSection(f, container, []types.Education{{Institution: "MIT"}}, FillEducation)

	entries := f.Entries(string(SectionEducation))
	require.Equal(t, 1, entries.Length())
	entry := entries.First()
	assert.Equal(t, "MIT", FieldValue(entry, FieldInstitution))
	for _, name := range []string{FieldEduLocation, FieldDegree, FieldEduDates, FieldGPA} {
		assert.Equal(t, "", FieldValue(entry, name), name)
	}
}

func TestRebuildSection_EmptyRecordsYieldOneBlankGroup(t *testing.T) {
	for _, records := range [][]types.Project{nil, {}} {
		f := newTestForm(t)
		container := f.Container(string(SectionProjects))

		n := RebuildSection(f, container, records, FillProject)

		assert.Equal(t, 1, n)
		entries := f.Entries(string(SectionProjects))
		require.Equal(t, 1, entries.Length())
		assert.Equal(t, "", FieldValue(entries.First(), FieldProjectName))
		assert.Equal(t, "", FieldValue(entries.First(), FieldProjSummary))
	}
}

func TestRebuildSection_TemplateUntouched(t *testing.T) {
	f := newTestForm(t)
	container := f.Container(string(SectionEducation))
	before, err := goquery.OuterHtml(Template(container))
	require.NoError(t, err)

	RebuildSection(f, container, fullProfile().Education, FillEducation)

	tmpl := Template(container)
	require.NotNil(t, tmpl)
	after, err := goquery.OuterHtml(tmpl)
	require.NoError(t, err)
	// Only the required attribute is stripped, by validation relaxing at parse time.
	assert.Equal(t, before, after)
	assert.Equal(t, "template-gpa", tmpl.Find(`[name="gpa[]"]`).AttrOr("value", ""))
}

func TestRebuildSection_ClonesAreVisibleAndEnabled(t *testing.T) {
	f := newTestForm(t)
	container := f.Container(string(SectionEducation))

	RebuildSection(f, container, []types.Education{{Institution: "MIT"}}, FillEducation)

	entry := f.Entries(string(SectionEducation)).First()
	assert.False(t, entry.HasClass(TemplateClass))
	assert.Equal(t, "margin: 0", entry.AttrOr("style", ""))
	assert.Equal(t, 0, entry.Find("[disabled]").Length())
}

func TestRebuildSection_NilSafe(t *testing.T) {
	f := newTestForm(t)
	assert.Equal(t, 0, RebuildSection(f, nil, []types.Education{{}}, FillEducation))
	assert.Equal(t, 0, RebuildSection[types.Education](nil, nil, nil, nil))
	assert.Nil(t, f.Container("missing"))
	assert.Nil(t, Template(nil))
}

func TestFill_TextareaValues(t *testing.T) {
	f := newTestForm(t)
	f.Fill(fullProfile())

	entry := f.Entries(string(SectionExperience)).First()
	assert.Equal(t, "Built\nShipped", FieldValue(entry, FieldExpDetails))
	assert.Equal(t, 1, f.Entries(string(SectionProjects)).Length())
}

func TestRestore_KeepsEmptiedSections(t *testing.T) {
	f := newTestForm(t)
	f.Fill(fullProfile())

	f.Restore(&types.Profile{
		Name:     "Jane",
		Projects: []types.Project{{Name: "A"}, {Name: "B"}},
	})

	assert.Equal(t, 0, f.Entries(string(SectionEducation)).Length())
	assert.Equal(t, 0, f.Entries(string(SectionExperience)).Length())
	require.Equal(t, 2, f.Entries(string(SectionProjects)).Length())
	assert.Equal(t, "B", FieldValue(f.Entries(string(SectionProjects)).Last(), FieldProjectName))
	assert.NotNil(t, Template(f.Container(string(SectionEducation))), "the template survives an empty restore")

	got := f.Profile()
	assert.Equal(t, "Jane", got.Name)
	assert.Empty(t, got.Education)
}

func TestAddBlankEntry(t *testing.T) {
	f := newTestForm(t)
	f.Fill(fullProfile())
	before := f.Entries(string(SectionEducation)).Length()

	ok := f.AddBlankEntry(string(SectionEducation))

	require.True(t, ok)
	entries := f.Entries(string(SectionEducation))
	assert.Equal(t, before+1, entries.Length())
	last := entries.Last()
	last.Find("input, textarea").Each(func(_ int, field *goquery.Selection) {
		assert.Equal(t, "", field.AttrOr("value", ""), "template values must not leak into blank entries")
	})
}

func TestAddBlankEntry_MissingSection(t *testing.T) {
	f := newTestForm(t)
	assert.False(t, f.AddBlankEntry("hobbies"))
	assert.False(t, f.AddBlankEntry(""))
}

func TestRemoveEntry(t *testing.T) {
	f := newTestForm(t)
	f.Fill(fullProfile())
	entries := f.Entries(string(SectionEducation))
	require.Equal(t, 2, entries.Length())

	removed := f.RemoveEntry(entries.First().Find("." + RemoveControlClass))

	assert.True(t, removed)
	remaining := f.Entries(string(SectionEducation))
	require.Equal(t, 1, remaining.Length())
	assert.Equal(t, "Stanford", FieldValue(remaining.First(), FieldInstitution))
}

func TestRemoveEntry_TemplateIsNoOp(t *testing.T) {
	f := newTestForm(t)
	f.Fill(fullProfile())
	container := f.Container(string(SectionEducation))
	before := f.Entries(string(SectionEducation)).Length()

	removed := f.RemoveEntry(Template(container).Find("." + RemoveControlClass))

	assert.False(t, removed)
	assert.Equal(t, before, f.Entries(string(SectionEducation)).Length())
	assert.NotNil(t, Template(container))
}

func TestRemoveEntry_NoEnclosingEntry(t *testing.T) {
	f := newTestForm(t)
	assert.False(t, f.RemoveEntry(f.Document().Find("#name")))
	assert.False(t, f.RemoveEntry(nil))
}

func TestRelaxValidation_AfterEveryMutation(t *testing.T) {
	f := newTestForm(t)
	assert.Equal(t, 0, f.RequiredCount())
	_, ok := f.Document().Find("form").Attr("novalidate")
	assert.True(t, ok)
	_, ok = f.Document().Find("#email").Attr("oninvalid")
	assert.False(t, ok)

	f.Fill(fullProfile())
	assert.Equal(t, 0, f.RequiredCount())

	f.AddBlankEntry(string(SectionExperience))
	assert.Equal(t, 0, f.RequiredCount())
}

func TestWatch_SeesEveryInsertion(t *testing.T) {
	f := newTestForm(t)
	var inserted int
	f.Watch(func(*goquery.Selection) { inserted++ })
	f.Watch(nil)

	f.Fill(fullProfile())
	f.AddBlankEntry(string(SectionProjects))

	// 2 education + 1 experience + 1 project + 1 added project
	assert.Equal(t, 5, inserted)
}

func TestProfile_ReadsBackFilledValues(t *testing.T) {
	f := newTestForm(t)
	want := fullProfile()

	f.Fill(want)

	assert.Equal(t, want, f.Profile())
}

func TestSelectOption(t *testing.T) {
	f := newTestForm(t)

	assert.True(t, f.SelectOption("template_choice", "modern"))
	_, selected := f.Document().Find(`option[value="modern"]`).Attr("selected")
	assert.True(t, selected)
	_, selected = f.Document().Find(`option[value="professional"]`).Attr("selected")
	assert.False(t, selected)

	assert.False(t, f.SelectOption("template_choice", "retro"))
}

func TestHTML_SerializesDocument(t *testing.T) {
	f := newTestForm(t)
	f.Fill(&types.Profile{Name: "A & B"})

	out, err := f.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, `value="A &amp; B"`)
	assert.NotContains(t, out, "required")
}
