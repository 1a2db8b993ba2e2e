package transform

import "github.com/vvka-141/svgrn/internal/svgdoc"

// Rebind turns every literal attribute named attr into a binding on
// props.<prop> that falls back to the literal value. Every element in the
// tree is visited, not only the root. It returns the number of attributes
// rebound; zero matches is not an error.
func Rebind(root *svgdoc.Element, attr, prop string) int {
	n := 0
	svgdoc.Visit(root, func(el *svgdoc.Element) {
		for i := range el.Attrs {
			a := &el.Attrs[i]
			if a.Kind != svgdoc.AttrLiteral || a.Name != attr {
				continue
			}
			a.Kind = svgdoc.AttrBound
			a.Prop = prop
			n++
		}
	})
	return n
}

// BindFill binds fill attributes to props.fill.
func BindFill(root *svgdoc.Element) int {
	return Rebind(root, "fill", "fill")
}

// BindStroke binds stroke attributes to props.stroke.
func BindStroke(root *svgdoc.Element) int {
	return Rebind(root, "stroke", "stroke")
}

// BindWidthHeight binds width and height attributes to props.width and
// props.height.
func BindWidthHeight(root *svgdoc.Element) int {
	return Rebind(root, "width", "width") + Rebind(root, "height", "height")
}
