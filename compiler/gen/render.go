package gen

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/syssam/heragen/schema/field"
	"github.com/syssam/heragen/schema/preset"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Funcs are the functions available to the templates.
var Funcs = template.FuncMap{
	"quote":   quote,
	"comment": comment,
	"label":   field.Label,
	"join":    strings.Join,
	"names":   fieldNames,
}

var templates = template.Must(template.New("heragen").Funcs(Funcs).ParseFS(templateFS, "templates/*.tmpl"))

// Artifact is one rendered file, relative to the project root.
type Artifact struct {
	Feature string
	Path    string
	Content []byte
}

// Renderer turns a preset into artifacts. It performs no I/O.
type Renderer struct {
	features []Feature
}

// NewRenderer returns a renderer producing the page plus the given features.
func NewRenderer(features ...Feature) *Renderer {
	fs := []Feature{FeaturePage}
	for _, f := range features {
		if f.Name != FeaturePage.Name {
			fs = append(fs, f)
		}
	}
	return &Renderer{features: fs}
}

// Features returns the features the renderer produces, page first.
func (r *Renderer) Features() []Feature {
	return append([]Feature(nil), r.features...)
}

// Render renders every enabled artifact of p. fields is the derived
// configuration of p's default fields.
func (r *Renderer) Render(p preset.EntityPreset, fields []field.Config) ([]Artifact, error) {
	m, err := newPageModel(p, fields)
	if err != nil {
		return nil, err
	}
	artifacts := make([]Artifact, 0, len(r.features))
	for _, f := range r.features {
		var content []byte
		if f.template == "" {
			content, err = renderConfig(p, m)
		} else {
			content, err = execute(f.template, m)
		}
		if err != nil {
			return nil, NewGenerationError("render", f.Path(p), "", err)
		}
		artifacts = append(artifacts, Artifact{Feature: f.Name, Path: f.Path(p), Content: content})
	}
	if err := checkPage(p, artifacts[0]); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func execute(name string, m *PageModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, m); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func renderConfig(p preset.EntityPreset, m *PageModel) ([]byte, error) {
	b, err := json.MarshalIndent(newEntityConfig(p, m), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// checkPage verifies the page starts with the client directive.
func checkPage(p preset.EntityPreset, page Artifact) error {
	if !bytes.HasPrefix(page.Content, []byte(PageDirective)) {
		return NewInvariantError(string(p.Key), "page does not start with "+PageDirective)
	}
	return nil
}

// quote returns s as a double-quoted string literal valid in TypeScript.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// comment makes s safe inside a block comment on a single line.
func comment(s string) string {
	s = strings.ReplaceAll(s, "*/", "* /")
	return strings.Join(strings.Fields(s), " ")
}

func fieldNames(fs []FieldModel) []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = "`" + f.Name + "`"
	}
	return names
}
