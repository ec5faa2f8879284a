// Package view renders the server-side pages.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
)

// Templates holds the page templates keyed by file name. Each page is parsed
// on top of its own clone of layout.html so {{define "content"}} does not collide.
type Templates struct {
	pages map[string]*template.Template
}

var funcMap = template.FuncMap{
	"lower":     strings.ToLower,
	"join":      strings.Join,
	"trimSpace": strings.TrimSpace,
	"add":       func(a, b int) int { return a + b },
	"eqFold":    strings.EqualFold,
}

// Load parses layout.html and every other *.html file in dir.
func Load(dir string) (*Templates, error) {
	base, err := template.New("base").Funcs(funcMap).ParseFiles(filepath.Join(dir, "layout.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob page templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		name := filepath.Base(f)
		if name == "layout.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}
		if _, err := clone.ParseFiles(f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = clone
	}
	return &Templates{pages: pages}, nil
}

// Render executes the page through the layout. Output is buffered so a
// template error never produces a half-written page.
func (t *Templates) Render(name string, data interface{}) ([]byte, error) {
	tmpl, ok := t.pages[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Has reports whether a page was loaded.
func (t *Templates) Has(name string) bool {
	_, ok := t.pages[name]
	return ok
}
