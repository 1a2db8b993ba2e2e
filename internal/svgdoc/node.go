// Package svgdoc holds the parsed markup tree that the conversion pipeline
// transforms.
//
// A document is a single root *Element. Children are Nodes: *Element,
// *Text or *Comment. Attribute values are a tagged variant as well, so that
// later stages can bind a value to a component property or turn a style
// string into a style object without re-serializing markup.
package svgdoc

// NodeKind discriminates the Node variants.
type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
	CommentNode
)

func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is one of *Element, *Text, *Comment.
type Node interface {
	Kind() NodeKind
}

// AttrKind discriminates attribute value variants.
type AttrKind int

const (
	// AttrLiteral is a plain string value.
	AttrLiteral AttrKind = iota
	// AttrBound reads Prop from the component properties and falls back to Value.
	AttrBound
	// AttrStyle carries parsed inline style declarations in Style.
	AttrStyle
	// AttrSpread spreads the component properties onto the element. Name is empty.
	AttrSpread
)

// StyleDecl is one inline style declaration.
type StyleDecl struct {
	Property string
	Value    string
}

// Attr is an element attribute.
type Attr struct {
	Name  string
	Value string
	Kind  AttrKind
	Prop  string
	Style []StyleDecl
}

// Literal returns a literal attribute.
func Literal(name, value string) Attr {
	return Attr{Name: name, Value: value, Kind: AttrLiteral}
}

// Element is a markup element.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Text is character data.
type Text struct {
	Data string
}

// Comment is a markup comment.
type Comment struct {
	Data string
}

func (*Element) Kind() NodeKind { return ElementNode }
func (*Text) Kind() NodeKind    { return TextNode }
func (*Comment) Kind() NodeKind { return CommentNode }

// Attr returns the attribute with the given name.
func (e *Element) Attr(name string) (Attr, bool) {
	for _, a := range e.Attrs {
		if a.Kind != AttrSpread && a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// HasAttr reports whether an attribute with the given name exists.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr replaces the value of an existing attribute in place, or appends a
// literal attribute when none exists.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Kind != AttrSpread && e.Attrs[i].Name == name {
			e.Attrs[i] = Literal(name, value)
			return
		}
	}
	e.Attrs = append(e.Attrs, Literal(name, value))
}

// RemoveAttr deletes every attribute with the given name and reports whether
// anything was removed.
func (e *Element) RemoveAttr(name string) bool {
	kept := e.Attrs[:0]
	removed := false
	for _, a := range e.Attrs {
		if a.Kind != AttrSpread && a.Name == name {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	e.Attrs = kept
	return removed
}

// Elements returns the element children, skipping text and comments.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	c := &Element{Name: e.Name}
	if e.Attrs != nil {
		c.Attrs = make([]Attr, len(e.Attrs))
		for i, a := range e.Attrs {
			c.Attrs[i] = a
			if a.Style != nil {
				c.Attrs[i].Style = append([]StyleDecl(nil), a.Style...)
			}
		}
	}
	for _, child := range e.Children {
		switch n := child.(type) {
		case *Element:
			c.Children = append(c.Children, n.Clone())
		case *Text:
			c.Children = append(c.Children, &Text{Data: n.Data})
		case *Comment:
			c.Children = append(c.Children, &Comment{Data: n.Data})
		}
	}
	return c
}

// Document is a parsed source with its single root element.
type Document struct {
	Root *Element
}
