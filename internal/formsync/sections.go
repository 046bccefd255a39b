package formsync

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Section names a repeatable section of the form.
type Section string

const (
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
)

// Document structure markers.
const (
	ContainerSelector  = ".repeatable-fields"
	SectionAttr        = "data-section"
	EntrySelector      = ".field-entry"
	TemplateClass      = "template"
	AddControlSelector = ".add-button"
	AddAttr            = "data-add"
	RemoveControlClass = "remove-entry-button"
	LoadSampleSelector = "#load-sample-data"
)

var (
	templateSelector  = EntrySelector + "." + TemplateClass
	liveEntrySelector = EntrySelector + ":not(." + TemplateClass + ")"
)

// Sections returns the repeatable sections in display order.
func Sections() []Section {
	return []Section{SectionEducation, SectionExperience, SectionProjects}
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	for _, known := range Sections() {
		if s == known {
			return true
		}
	}
	return false
}

// Container returns the container for the named section, or nil.
func (f *Form) Container(name string) *goquery.Selection {
	if f == nil || f.doc == nil || name == "" {
		return nil
	}
	container := f.doc.Find(ContainerSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr(SectionAttr, "") == name
	}).First()
	if container.Length() == 0 {
		return nil
	}
	return container
}

// Template returns the template entry group of container, or nil.
func Template(container *goquery.Selection) *goquery.Selection {
	if container == nil {
		return nil
	}
	tmpl := container.Find(templateSelector).First()
	if tmpl.Length() == 0 {
		return nil
	}
	return tmpl
}

// Entries returns the live (non-template) entry groups of the named section.
// The result is empty, never nil, when the section is missing.
func (f *Form) Entries(name string) *goquery.Selection {
	container := f.Container(name)
	if container == nil {
		return &goquery.Selection{}
	}
	return liveEntries(container)
}

func liveEntries(container *goquery.Selection) *goquery.Selection {
	return container.Find(liveEntrySelector)
}

// RebuildSection replaces the live entry groups of container with one clone
// of the template per record, filled by fill, in record order. An empty
// records slice yields a single blank group. It returns the number of groups
// appended; the template itself is never removed or changed.
func RebuildSection[T any](f *Form, container *goquery.Selection, records []T, fill FillFunc[T]) int {
	if len(records) == 0 {
		var blank T
		records = []T{blank}
	}
	return replaceEntries(f, container, records, fill)
}

// replaceEntries is RebuildSection without the blank default: an empty
// records slice leaves the section empty.
func replaceEntries[T any](f *Form, container *goquery.Selection, records []T, fill FillFunc[T]) int {
	if f == nil || container == nil {
		return 0
	}
	tmpl := Template(container)
	if tmpl == nil {
		return 0
	}

	liveEntries(container).Remove()

	for _, rec := range records {
		entry := cloneTemplate(tmpl)
		if fill != nil {
			fill(entry, rec)
		}
		f.insert(container, entry)
	}

	return len(records)
}

// AddBlankEntry appends an empty clone of the named section's template.
// It reports whether an entry was added.
func (f *Form) AddBlankEntry(name string) bool {
	container := f.Container(name)
	tmpl := Template(container)
	if tmpl == nil {
		return false
	}

	entry := cloneTemplate(tmpl)
	clearValues(entry)
	f.insert(container, entry)
	return true
}

// RemoveEntry detaches the nearest live entry group enclosing target. The
// template cannot be removed this way. It reports whether an entry was removed.
func (f *Form) RemoveEntry(target *goquery.Selection) bool {
	if f == nil || target == nil || target.Length() == 0 {
		return false
	}
	entry := target.First().Closest(EntrySelector)
	if entry.Length() == 0 || entry.HasClass(TemplateClass) {
		return false
	}
	entry.Remove()
	return true
}

// cloneTemplate copies the template and turns the copy into a visible,
// submittable entry group.
func cloneTemplate(tmpl *goquery.Selection) *goquery.Selection {
	entry := tmpl.Clone()
	entry.RemoveClass(TemplateClass)
	show(entry)
	entry.Find("input, textarea, select").RemoveAttr("disabled")
	return entry
}

// show drops display declarations from the inline style and the hidden
// attribute.
func show(sel *goquery.Selection) {
	sel.RemoveAttr("hidden")

	style, ok := sel.Attr("style")
	if !ok {
		return
	}

	var kept []string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			continue
		}
		kept = append(kept, decl)
	}

	if len(kept) == 0 {
		sel.RemoveAttr("style")
		return
	}
	sel.SetAttr("style", strings.Join(kept, "; "))
}

// clearValues empties every input and textarea inside sel.
func clearValues(sel *goquery.Selection) {
	sel.Find("input, textarea").Each(func(_ int, field *goquery.Selection) {
		setValue(field, "")
	})
}
