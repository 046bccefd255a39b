// Package web holds the embedded HTML pages served by the resume builder.
package web

import (
	"bytes"
	"embed"
	"io/fs"

	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed pages
var pagesFS embed.FS

// Page names inside Pages().
const (
	IndexPage   = "index.html"
	PreviewPage = "preview.html"
	Stylesheet  = "style.css"
)

// Pages returns the page files rooted at the pages directory.
func Pages() fs.FS {
	sub, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}

// ReadPage returns the raw bytes of a page file.
func ReadPage(name string) ([]byte, error) {
	return fs.ReadFile(Pages(), name)
}

// NewIndexForm parses a fresh copy of the form page. sample backs the
// load-sample control.
func NewIndexForm(sample *types.Profile) (*formsync.Form, error) {
	page, err := ReadPage(IndexPage)
	if err != nil {
		return nil, err
	}
	return formsync.Parse(bytes.NewReader(page), formsync.WithSample(sample))
}
