package svgdoc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

var svgSelector = cascadia.MustCompile("svg")

// ParseHTML parses src leniently as HTML5 and uses the first svg element as
// the document root. The HTML parser restores SVG camel-case tag and
// attribute names (linearGradient, viewBox) and tolerates markup that is
// not well-formed XML, so it accepts icons pasted from web pages.
func ParseHTML(r io.Reader) (*Document, error) {
	utf8Reader, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", svgrn.ErrParseFailed, err)
	}

	page, err := html.Parse(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", svgrn.ErrParseFailed, err)
	}

	node := cascadia.Query(page, svgSelector)
	if node == nil {
		return nil, svgrn.ErrNoRootElement
	}

	return &Document{Root: fromHTML(node)}, nil
}

// ParseHTMLBytes is ParseHTML over an in-memory source.
func ParseHTMLBytes(src []byte) (*Document, error) {
	return ParseHTML(bytes.NewReader(src))
}

func fromHTML(n *html.Node) *Element {
	el := &Element{Name: n.Data}
	for _, a := range n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		el.Attrs = append(el.Attrs, Literal(name, a.Val))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el.Children = append(el.Children, fromHTML(c))
		case html.TextNode:
			el.Children = append(el.Children, &Text{Data: c.Data})
		case html.CommentNode:
			el.Children = append(el.Children, &Comment{Data: c.Data})
		}
	}
	return el
}
