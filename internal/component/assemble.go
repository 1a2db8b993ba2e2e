// Package component turns a transformed markup tree into a component source
// file.
package component

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/vvka-141/svgrn/internal/svgdoc"
	"github.com/vvka-141/svgrn/internal/transform"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const componentTemplate = "component.tsx.tmpl"

var templates = template.Must(
	template.New("").
		Funcs(template.FuncMap{"indent": indent}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

// GetTemplatesFS returns the embedded templates for tests.
func GetTemplatesFS() embed.FS {
	return templatesFS
}

// Assembler renders component files.
type Assembler struct {
	format bool
}

// NewAssembler creates an Assembler. The only option it reads is
// FormatOutput.
func NewAssembler(opts svgrn.Options) *Assembler {
	return &Assembler{format: opts.FormatOutput}
}

type componentData struct {
	Name    string
	Imports []string
	Markup  string
}

// Assemble renders root and wraps it in a component declaration named name.
// name must already be a valid identifier.
func (a *Assembler) Assemble(name string, root *svgdoc.Element) (svgrn.Component, error) {
	if root == nil {
		return svgrn.Component{}, svgrn.ErrNoRootElement
	}

	data := componentData{
		Name:    name,
		Imports: transform.UsedComponents(root),
		Markup:  RenderJSX(root, a.format),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, componentTemplate, data); err != nil {
		return svgrn.Component{}, fmt.Errorf("failed to render component %s: %w", name, err)
	}

	return svgrn.Component{Name: name, Body: buf.String()}, nil
}

// indent prefixes every line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
