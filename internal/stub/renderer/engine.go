package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// Engine renders named templates against a key-value context. It decouples
// the command renderer from the template technology behind it.
type Engine interface {
	// Has reports whether a template with the given name was registered.
	Has(name string) bool

	// Render executes the named template. No partial output is returned on
	// error.
	Render(name string, context map[string]any) (string, error)
}

// textEngine backs Engine with text/template. All sources are compiled into
// one associated set, so a template can invoke another one from the same
// bundle with {{template}}.
type textEngine struct {
	templates *template.Template
}

// NewTextEngine compiles the given template sources, keyed by name, into an
// Engine. The funcs are available to every template in the set.
func NewTextEngine(sources map[string]string, funcs template.FuncMap) (Engine, error) {
	root := template.New("stubgen").Funcs(funcs)

	for name, source := range sources {
		if _, err := root.New(name).Parse(source); err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
	}

	return &textEngine{templates: root}, nil
}

func (e *textEngine) Has(name string) bool {
	return e.templates.Lookup(name) != nil
}

func (e *textEngine) Render(name string, context map[string]any) (string, error) {
	var out strings.Builder

	if err := e.templates.ExecuteTemplate(&out, name, context); err != nil {
		return "", err
	}

	return out.String(), nil
}
