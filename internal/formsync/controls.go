package formsync

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Control values carried by submit buttons when the form is used without
// scripts: "sample", "add:<section>" and "remove:<section>:<index>".
const (
	ActionSample = "sample"
	actionAdd    = "add"
	actionRemove = "remove"
)

// Click dispatches a click on target the way the page's delegated handler
// does. It reports whether the document changed.
func (f *Form) Click(target *goquery.Selection) bool {
	if f == nil || target == nil || target.Length() == 0 {
		return false
	}
	target = target.First()

	switch {
	case target.HasClass(RemoveControlClass):
		return f.RemoveEntry(target)
	case target.Is(AddControlSelector):
		name, ok := target.Attr(AddAttr)
		if !ok {
			return false
		}
		return f.AddBlankEntry(name)
	case target.Is(LoadSampleSelector):
		if f.sample == nil {
			return false
		}
		f.Fill(f.sample)
		return true
	}
	return false
}

// Control resolves a submitted control value to the element it names, or nil.
func (f *Form) Control(action string) *goquery.Selection {
	if f == nil || f.doc == nil {
		return nil
	}

	parts := strings.Split(strings.TrimSpace(action), ":")
	var sel *goquery.Selection
	switch {
	case len(parts) == 1 && parts[0] == ActionSample:
		sel = f.doc.Find(LoadSampleSelector)
	case len(parts) == 2 && parts[0] == actionAdd:
		sel = f.doc.Find(AddControlSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.AttrOr(AddAttr, "") == parts[1]
		})
	case len(parts) == 3 && parts[0] == actionRemove:
		idx, err := strconv.Atoi(parts[2])
		if err != nil || idx < 0 {
			return nil
		}
		sel = f.Entries(parts[1]).Eq(idx).Find("." + RemoveControlClass)
	default:
		return nil
	}

	sel = sel.First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}

// Apply resolves action and clicks it. Unknown or stale actions are no-ops.
func (f *Form) Apply(action string) bool {
	return f.Click(f.Control(action))
}

// IndexControls stamps each control with the value Control resolves back to
// it. Call it after the last mutation, before serializing.
func (f *Form) IndexControls() {
	if f == nil || f.doc == nil {
		return
	}

	f.doc.Find(LoadSampleSelector).SetAttr("value", ActionSample)

	f.doc.Find(AddControlSelector).Each(func(_ int, s *goquery.Selection) {
		if name, ok := s.Attr(AddAttr); ok {
			s.SetAttr("value", actionAdd+":"+name)
		}
	})

	f.doc.Find(ContainerSelector).Each(func(_ int, container *goquery.Selection) {
		name := container.AttrOr(SectionAttr, "")
		liveEntries(container).Each(func(i int, entry *goquery.Selection) {
			entry.Find("."+RemoveControlClass).SetAttr("value", actionRemove+":"+name+":"+strconv.Itoa(i))
		})
	})
}
