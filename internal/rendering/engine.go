package rendering

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	filtersOnce sync.Once
	filtersErr  error
)

var filters = map[string]pongo2.FilterFunction{
	"latex":    filterLaTeX,
	"latexurl": filterLaTeXURL,
	"safeurl":  filterSafeURL,
}

// Engine loads and executes pongo2 templates from a file system. Compiled
// templates are cached by name.
type Engine struct {
	set *pongo2.TemplateSet
	err error

	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

// NewEngine creates an engine reading templates from fsys.
func NewEngine(name string, fsys fs.FS) *Engine {
	filtersOnce.Do(func() {
		filtersErr = registerFilters()
	})
	return &Engine{
		set:       pongo2.NewSet(name, pongo2.NewFSLoader(fsys)),
		err:       filtersErr,
		templates: make(map[string]*pongo2.Template),
	}
}

// Execute renders the named template with data.
func (e *Engine) Execute(name string, data pongo2.Context) (string, error) {
	if e.err != nil {
		return "", &TemplateError{Message: "template filters unavailable", Cause: e.err}
	}
	tpl, err := e.template(name)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(data)
	if err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute template %s", name),
			Cause:   err,
		}
	}
	return out, nil
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.templates[name]; ok {
		return tpl, nil
	}
	tpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to load template %s", name),
			Cause:   err,
		}
	}
	e.templates[name] = tpl
	return tpl, nil
}

// registerFilters adds the rendering filters to pongo2's global registry.
func registerFilters() error {
	for name, fn := range filters {
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return fmt.Errorf("failed to register filter %q: %w", name, err)
		}
	}
	return nil
}

func filterLaTeX(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(EscapeLaTeX(in.String())), nil
}

func filterLaTeXURL(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(EscapeLaTeXURL(in.String())), nil
}

func filterSafeURL(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(SafeURL(in.String())), nil
}
