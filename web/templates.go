package web

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const templateCacheSize = 128

// HTMLRenderer renders named templates from the templates directory,
// keeping parsed templates in an LRU cache. The four error pages have
// built-in fallbacks so error dispatch works before any template files
// exist on disk.
type HTMLRenderer struct {
	dir   string
	cache *lru.Cache[string, *template.Template]
}

func NewHTMLRenderer(dir string) (*HTMLRenderer, error) {
	cache, err := lru.New[string, *template.Template](templateCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create template cache: %w", err)
	}
	return &HTMLRenderer{dir: dir, cache: cache}, nil
}

// Render executes the template identified by a logical name such as
// "error/404" and returns the rendered body.
func (r *HTMLRenderer) Render(name string, data any) (string, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// lookup resolves a logical name to a parsed template: cache first,
// then {dir}/{name}.html, then the built-in error pages.
func (r *HTMLRenderer) lookup(name string) (*template.Template, error) {
	if strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid template name %q", name)
	}
	if tmpl, ok := r.cache.Get(name); ok {
		return tmpl, nil
	}

	var src string
	path := filepath.Join(r.dir, filepath.FromSlash(name)+".html")
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		src = string(raw)
	case os.IsNotExist(err):
		builtin, ok := builtinTemplates[name]
		if !ok {
			return nil, fmt.Errorf("template %s not found", name)
		}
		src = builtin
	default:
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	r.cache.Add(name, tmpl)
	return tmpl, nil
}

var builtinTemplates = map[string]string{
	"error/401": errorPage("Unauthorized"),
	"error/403": errorPage("Forbidden"),
	"error/404": errorPage("Page Not Found"),
	"error/500": errorPage("Internal Server Error"),
}

func errorPage(heading string) string {
	return `<!DOCTYPE html>
<html>
<head><title>{{.Status}} ` + heading + `</title></head>
<body>
<h1>{{.Status}} ` + heading + `</h1>
{{if .Detail}}<pre>{{.Detail}}</pre>{{end}}
</body>
</html>
`
}
