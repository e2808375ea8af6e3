// Package sysprompt renders the prompt text skillet injects into agent
// system prompts. Templates ship embedded; individual templates can be
// overridden at render time, which is how the --template flag works.
package sysprompt

import (
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Renderer holds a parsed template set. Parse problems are deferred to the
// first render, so constructing a Renderer never fails and a broken override
// degrades the same way any other render error does.
type Renderer struct {
	templates *template.Template
	parseErr  error
}

var defaultRenderer = NewRenderer(TemplateFS)

// NewRenderer creates a renderer over the .tmpl files found under the
// templates directory of fsys.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithTemplateOverride(fsys, nil)
}

// NewRendererWithTemplateOverride creates a renderer with custom template
// overrides, keyed by template path (e.g. templates/skills.tmpl). Overrides
// replace embedded templates with the same path and may introduce new ones.
func NewRendererWithTemplateOverride(fsys fs.FS, overrides map[string]string) *Renderer {
	renderer := &Renderer{}
	renderer.templates, renderer.parseErr = parseTemplates(fsys, overrides)
	return renderer
}

// RenderPrompt renders the named template with the provided data.
func (r *Renderer) RenderPrompt(name string, data any) (string, error) {
	if r.parseErr != nil {
		return "", errors.Wrap(r.parseErr, "failed to initialize templates")
	}

	if r.templates.Lookup(name) == nil {
		return "", errors.Errorf("template %s not found", name)
	}

	var buf strings.Builder
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %s", name)
	}

	return buf.String(), nil
}

// parseTemplates builds one template set from the embedded files and the
// overrides. The include function lets templates compose each other by path,
// which is what keeps custom wrapper templates able to reuse the built-ins.
func parseTemplates(fsys fs.FS, overrides map[string]string) (*template.Template, error) {
	sources := map[string]string{}

	paths, err := fs.Glob(fsys, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob templates")
	}
	for _, path := range paths {
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read template file %s", path)
		}
		sources[path] = string(content)
	}
	for path, content := range overrides {
		sources[path] = content
	}

	root := template.New("templates")
	root.Funcs(template.FuncMap{
		"include": func(name string, data any) (string, error) {
			var buf strings.Builder
			err := root.ExecuteTemplate(&buf, name, data)
			return buf.String(), err
		},
	})

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := root.New(name).Parse(sources[name]); err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", name)
		}
	}

	return root, nil
}
