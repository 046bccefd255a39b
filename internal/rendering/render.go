package rendering

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/flosch/pongo2/v6"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

// Format identifies an output document type.
type Format string

const (
	FormatHTML  Format = "html"
	FormatLaTeX Format = "tex"
)

var templateNames = map[string]map[Format]string{
	types.TemplateProfessional: {
		FormatHTML:  "professional.html.tpl",
		FormatLaTeX: "professional.tex.tpl",
	},
	types.TemplateModern: {
		FormatHTML:  "modern.html.tpl",
		FormatLaTeX: "modern.tex.tpl",
	},
}

// Choices returns the available template choices in sorted order.
func Choices() []string {
	out := make([]string, 0, len(templateNames))
	for name := range templateNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasTemplate reports whether choice names a bundled template.
func HasTemplate(choice string) bool {
	_, ok := templateNames[choice]
	return ok
}

// Documents holds the rendered outputs for one resume.
type Documents struct {
	Template string
	HTML     string
	LaTeX    string
}

// Renderer renders resumes with the bundled templates.
type Renderer struct {
	engine *Engine
}

// NewRenderer creates a renderer over the embedded templates.
func NewRenderer() *Renderer {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(fmt.Sprintf("rendering: embedded templates: %v", err))
	}
	return &Renderer{engine: NewEngine("resume", sub)}
}

// Render produces the HTML and LaTeX documents for r using the template
// named by choice. Both formats are rendered concurrently.
func (rd *Renderer) Render(ctx context.Context, r *types.Resume, choice string) (*Documents, error) {
	if !HasTemplate(choice) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, choice)
	}

	docs := &Documents{Template: choice}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := rd.RenderFormat(r, choice, FormatHTML)
		docs.HTML = out
		return err
	})
	g.Go(func() error {
		out, err := rd.RenderFormat(r, choice, FormatLaTeX)
		docs.LaTeX = out
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// RenderFormat renders a single output format.
func (rd *Renderer) RenderFormat(r *types.Resume, choice string, format Format) (string, error) {
	files, ok := templateNames[choice]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, choice)
	}
	name, ok := files[format]
	if !ok {
		return "", &TemplateError{Message: fmt.Sprintf("no %s template for %s", format, choice)}
	}
	if r == nil {
		r = &types.Resume{}
	}
	return rd.engine.Execute(name, templateContext(r))
}

func templateContext(r *types.Resume) pongo2.Context {
	return pongo2.Context{
		"name":       r.Name,
		"location":   r.Location,
		"phone":      r.Phone,
		"email":      r.Email,
		"linkedin":   r.LinkedIn,
		"github":     r.GitHub,
		"education":  r.Education,
		"experience": r.Experience,
		"projects":   r.Projects,
		"skills":     r.Skills,
	}
}
