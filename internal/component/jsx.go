package component

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/svgrn/internal/svgdoc"
)

const indentUnit = "  "

// RenderJSX serializes the tree as JSX markup. With format set every element
// starts on its own line and children are indented two spaces per level;
// otherwise the markup is a single line. Whitespace-only text is dropped and
// remaining text has its whitespace runs collapsed to one space. A space at
// the edge of a text node survives only next to an element sibling, so
// "Hello <tspan>World</tspan>" keeps its word break.
func RenderJSX(root *svgdoc.Element, format bool) string {
	r := &renderer{format: format}
	r.element(root, 0)
	return strings.TrimRight(r.buf.String(), "\n")
}

type renderer struct {
	buf    bytes.Buffer
	format bool
}

func (r *renderer) line(depth int, s string) {
	if r.format {
		r.buf.WriteString(strings.Repeat(indentUnit, depth))
		r.buf.WriteString(s)
		r.buf.WriteByte('\n')
		return
	}
	r.buf.WriteString(s)
}

func (r *renderer) element(el *svgdoc.Element, depth int) {
	open := openTag(el)
	children := renderable(el)

	if len(children) == 0 {
		r.line(depth, open+" />")
		return
	}

	if text, ok := onlyText(children); ok {
		r.line(depth, open+">"+text+"</"+el.Name+">")
		return
	}

	r.line(depth, open+">")
	for i, child := range children {
		switch n := child.(type) {
		case *svgdoc.Element:
			r.element(n, depth+1)
		case *svgdoc.Text:
			afterElement := i > 0 && isElement(children[i-1])
			beforeElement := i+1 < len(children) && isElement(children[i+1])
			r.line(depth+1, r.mixedText(n.Data, afterElement, beforeElement))
		case *svgdoc.Comment:
			r.line(depth+1, jsxComment(n.Data))
		}
	}
	r.line(depth, "</"+el.Name+">")
}

// mixedText renders a text node that has siblings. Edge whitespace is kept
// as one space where the neighbor is an element. Formatted output writes it
// as {" "} because JSX trims whitespace on lines that break.
func (r *renderer) mixedText(data string, afterElement, beforeElement bool) string {
	space := " "
	if r.format {
		space = `{" "}`
	}

	text := collapseSpace(data)
	if text == "" {
		return space
	}
	lead := afterElement && startsWithSpace(data)
	trail := beforeElement && endsWithSpace(data)

	if needsExpression(text) {
		if lead {
			text = " " + text
		}
		if trail {
			text += " "
		}
		return "{" + jsString(text) + "}"
	}
	if lead {
		text = space + text
	}
	if trail {
		text += space
	}
	return text
}

func isElement(n svgdoc.Node) bool {
	_, ok := n.(*svgdoc.Element)
	return ok
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

// textContainers hold character data that is rendered, so whitespace
// between their child elements separates words.
var textContainers = map[string]bool{
	"Text": true, "TSpan": true, "TextPath": true,
	"text": true, "tspan": true, "textPath": true,
}

// renderable drops whitespace-only text nodes, except a run between two
// elements inside a text container.
func renderable(el *svgdoc.Element) []svgdoc.Node {
	nodes := el.Children
	out := make([]svgdoc.Node, 0, len(nodes))
	for i, n := range nodes {
		if t, ok := n.(*svgdoc.Text); ok && collapseSpace(t.Data) == "" {
			between := i > 0 && i+1 < len(nodes) && isElement(nodes[i-1]) && isElement(nodes[i+1])
			if !between || !textContainers[el.Name] {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func onlyText(nodes []svgdoc.Node) (string, bool) {
	if len(nodes) != 1 {
		return "", false
	}
	t, ok := nodes[0].(*svgdoc.Text)
	if !ok {
		return "", false
	}
	return jsxText(t.Data), true
}

func openTag(el *svgdoc.Element) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(el.Name)
	for _, a := range el.Attrs {
		b.WriteByte(' ')
		b.WriteString(jsxAttr(a))
	}
	return b.String()
}

func jsxAttr(a svgdoc.Attr) string {
	switch a.Kind {
	case svgdoc.AttrSpread:
		return "{...props}"
	case svgdoc.AttrBound:
		return a.Name + "={props." + a.Prop + " || " + jsString(a.Value) + "}"
	case svgdoc.AttrStyle:
		return a.Name + "={" + styleObject(a.Style) + "}"
	default:
		// JSX string attributes have no escapes and decode entities
		if strings.ContainsAny(a.Value, `"&`) {
			return a.Name + "={" + jsString(a.Value) + "}"
		}
		return a.Name + `="` + a.Value + `"`
	}
}

func styleObject(decls []svgdoc.StyleDecl) string {
	if len(decls) == 0 {
		return "{}"
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		key := d.Property
		if !isIdentifier(key) {
			key = jsString(key)
		}
		parts[i] = key + ": " + jsString(d.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func jsxText(data string) string {
	text := collapseSpace(data)
	if needsExpression(text) {
		return "{" + jsString(text) + "}"
	}
	return text
}

// needsExpression reports whether text must be a string expression to
// survive as JSX children.
func needsExpression(text string) bool {
	return strings.ContainsAny(text, "{}<>&")
}

func jsxComment(data string) string {
	return "{/*" + strings.ReplaceAll(data, "*/", "* /") + "*/}"
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
