package formsync

const fieldSelector = "input, textarea, select"

// RelaxValidation strips native constraints from the form so it submits
// regardless of empty fields: required attributes go away, forms get
// novalidate and inline invalid handlers are dropped.
func (f *Form) RelaxValidation() {
	if f == nil || f.doc == nil {
		return
	}

	fields := f.doc.Find(fieldSelector)
	fields.RemoveAttr("required")
	fields.RemoveAttr("aria-required")
	fields.RemoveAttr("oninvalid")

	f.doc.Find("form").SetAttr("novalidate", "")
}

// RequiredCount returns how many fields still carry a required constraint.
func (f *Form) RequiredCount() int {
	if f == nil || f.doc == nil {
		return 0
	}
	return f.doc.Find("input[required], textarea[required], select[required]").Length()
}
