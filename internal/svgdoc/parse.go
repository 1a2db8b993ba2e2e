package svgdoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// Parse reads an XML document and returns its first top-level element as
// the document root. Namespace prefixes are kept verbatim in names
// ("xlink:href"), prolog, doctype and processing instructions are dropped.
// Anything after the root element is ignored. End tags must match their
// start tags.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", svgrn.ErrParseFailed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: qualifiedName(t.Name)}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Literal(qualifiedName(a.Name), a.Value))
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected </%s>", svgrn.ErrParseFailed, qualifiedName(t.Name))
			}
			open := stack[len(stack)-1]
			if name := qualifiedName(t.Name); name != open.Name {
				return nil, fmt.Errorf("%w: <%s> closed by </%s>", svgrn.ErrParseFailed, open.Name, name)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return finish(root)
			}

		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Text{Data: string(t)})
			}

		case xml.Comment:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Comment{Data: string(t)})
			}
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: <%s> is not closed", svgrn.ErrParseFailed, stack[len(stack)-1].Name)
	}
	return finish(root)
}

// ParseBytes is Parse over an in-memory source.
func ParseBytes(src []byte) (*Document, error) {
	return Parse(bytes.NewReader(src))
}

func finish(root *Element) (*Document, error) {
	if root == nil {
		return nil, svgrn.ErrNoRootElement
	}
	return &Document{Root: root}, nil
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
