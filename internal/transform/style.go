package transform

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/iancoleman/strcase"

	"github.com/vvka-141/svgrn/internal/svgdoc"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// StripStyles removes the style attribute from every element in the tree.
// It returns the number of attributes removed.
func StripStyles(root *svgdoc.Element) int {
	removed := 0
	svgdoc.Visit(root, func(el *svgdoc.Element) {
		if el.RemoveAttr("style") {
			removed++
		}
	})
	return removed
}

// parseStyle turns inline style text into declarations with camel-cased
// property names, as component style objects expect.
func parseStyle(text string) ([]svgdoc.StyleDecl, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, "; \t\n")
	if text == "" {
		return nil, nil
	}

	// the last declaration is only terminated by ';' or '}'
	decls, err := parser.ParseDeclarations(text + ";")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", svgrn.ErrInvalidStyle, text, err)
	}

	out := make([]svgdoc.StyleDecl, 0, len(decls))
	for _, d := range decls {
		if d.Property == "" {
			continue
		}
		out = append(out, svgdoc.StyleDecl{
			Property: styleProperty(d.Property),
			Value:    d.Value,
		})
	}
	return out, nil
}

// styleProperty camel-cases a CSS property. Custom properties (--x) are kept.
func styleProperty(name string) string {
	if strings.HasPrefix(name, "--") || !strings.Contains(name, "-") {
		return name
	}
	return strcase.ToLowerCamel(name)
}
