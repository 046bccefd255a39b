// Package formsync keeps the repeatable entry groups of the resume form in
// sync with profile data and with add/remove controls.
//
// A Form wraps a parsed HTML document. Every section container
// (.repeatable-fields[data-section=...]) holds one hidden template entry
// group (.field-entry.template) and zero or more live entry groups cloned from
// it. All lookups are null-safe: a missing container, template or field makes
// the operation a no-op rather than an error.
//
// A Form is not safe for concurrent use; the server parses one per request.
package formsync

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
)

// InsertFunc observes entry groups appended to the document.
type InsertFunc func(inserted *goquery.Selection)

// Form is an HTML form document plus its insertion watchers.
type Form struct {
	doc      *goquery.Document
	sample   *types.Profile
	watchers []InsertFunc
}

// Option configures a Form.
type Option func(*Form)

// WithSample sets the profile loaded by the load-sample control.
func WithSample(p *types.Profile) Option {
	return func(f *Form) {
		f.sample = p
	}
}

// Parse reads an HTML document and wraps it in a Form.
func Parse(r io.Reader, opts ...Option) (*Form, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse form HTML: %w", err)
	}
	return NewForm(doc, opts...), nil
}

// NewForm wraps an already parsed document. Validation constraints are
// relaxed immediately and again after every entry insertion.
func NewForm(doc *goquery.Document, opts ...Option) *Form {
	f := &Form{doc: doc}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	f.RelaxValidation()
	f.Watch(func(*goquery.Selection) {
		f.RelaxValidation()
	})

	return f
}

// Document returns the underlying document.
func (f *Form) Document() *goquery.Document {
	return f.doc
}

// Watch registers fn to run after each entry group is appended.
func (f *Form) Watch(fn InsertFunc) {
	if fn == nil {
		return
	}
	f.watchers = append(f.watchers, fn)
}

// HTML serializes the whole document.
func (f *Form) HTML() (string, error) {
	if f.doc == nil {
		return "", nil
	}
	return f.doc.Html()
}

// insert appends entry to container and notifies the watchers.
func (f *Form) insert(container, entry *goquery.Selection) {
	container.AppendSelection(entry)
	for _, fn := range f.watchers {
		fn(entry)
	}
}
