package transform

import (
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/vvka-141/svgrn/internal/svgdoc"
)

// tagTable maps SVG element names to react-native-svg components.
// The order is the import order of generated files.
var tagTable = []struct {
	Source string
	Target string
}{
	{"svg", "Svg"},
	{"circle", "Circle"},
	{"ellipse", "Ellipse"},
	{"g", "G"},
	{"linearGradient", "LinearGradient"},
	{"radialGradient", "RadialGradient"},
	{"line", "Line"},
	{"path", "Path"},
	{"polygon", "Polygon"},
	{"polyline", "Polyline"},
	{"rect", "Rect"},
	{"symbol", "Symbol"},
	{"text", "Text"},
	{"tspan", "TSpan"},
	{"textPath", "TextPath"},
	{"use", "Use"},
	{"defs", "Defs"},
	{"stop", "Stop"},
	{"clipPath", "ClipPath"},
	{"mask", "Mask"},
	{"pattern", "Pattern"},
	{"image", "Image"},
	{"marker", "Marker"},
	{"foreignObject", "ForeignObject"},
}

var (
	tagIndex    = make(map[string]string, len(tagTable))
	targetOrder = make(map[string]int, len(tagTable))
)

// attrTable holds attribute renames that camel-casing cannot derive.
var attrTable = map[string]string{
	"class":       "className",
	"xlink:href":  "xlinkHref",
	"xlink:title": "xlinkTitle",
	"xml:space":   "xmlSpace",
	"xml:lang":    "xmlLang",
	"xmlns:xlink": "xmlnsXlink",
}

func init() {
	for i, m := range tagTable {
		tagIndex[m.Source] = m.Target
		targetOrder[m.Target] = i
	}
}

// MapTag returns the component name for an SVG tag. Unknown tags are
// returned unchanged.
func MapTag(name string) string {
	if target, ok := tagIndex[name]; ok {
		return target
	}
	return name
}

// IsComponent reports whether name is a target of the tag table.
func IsComponent(name string) bool {
	_, ok := targetOrder[name]
	return ok
}

// ComponentOrder returns the table position of a target component, or -1.
func ComponentOrder(name string) int {
	if i, ok := targetOrder[name]; ok {
		return i
	}
	return -1
}

// MapAttributeName returns the JSX attribute name for an SVG attribute.
// Hyphenated names are camel-cased except data-* and aria-*, which JSX
// accepts verbatim.
func MapAttributeName(name string) string {
	if target, ok := attrTable[name]; ok {
		return target
	}
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return name
	}
	if strings.Contains(name, "-") {
		return strcase.ToLowerCamel(name)
	}
	if prefix, local, ok := strings.Cut(name, ":"); ok {
		return prefix + strcase.ToCamel(local)
	}
	return name
}

// MapVocabulary rewrites element and attribute names of the whole tree to
// the target vocabulary. Attribute values and text content are not touched,
// except that inline style strings become style declarations. Namespaced
// elements below the root, such as sodipodi:namedview, are removed: they
// have no component and are not valid JSX tags.
func MapVocabulary(root *svgdoc.Element) error {
	DropNamespacedElements(root)
	return svgdoc.Walk(root, func(el *svgdoc.Element) error {
		el.Name = MapTag(el.Name)
		for i := range el.Attrs {
			a := &el.Attrs[i]
			if a.Kind == svgdoc.AttrSpread {
				continue
			}
			if a.Name == "style" && a.Kind == svgdoc.AttrLiteral {
				decls, err := parseStyle(a.Value)
				if err != nil {
					return err
				}
				a.Kind = svgdoc.AttrStyle
				a.Style = decls
				continue
			}
			a.Name = MapAttributeName(a.Name)
		}
		return nil
	})
}

// DropNamespacedElements removes every descendant element whose name has a
// namespace prefix, together with its subtree. Namespaced attributes stay;
// MapAttributeName camel-cases them.
func DropNamespacedElements(root *svgdoc.Element) {
	kept := root.Children[:0]
	for _, n := range root.Children {
		if el, ok := n.(*svgdoc.Element); ok {
			if strings.Contains(el.Name, ":") {
				continue
			}
			DropNamespacedElements(el)
		}
		kept = append(kept, n)
	}
	root.Children = kept
}

// SpreadProps appends a {...props} spread to the root unless it has one.
func SpreadProps(root *svgdoc.Element) {
	for _, a := range root.Attrs {
		if a.Kind == svgdoc.AttrSpread {
			return
		}
	}
	root.Attrs = append(root.Attrs, svgdoc.Attr{Kind: svgdoc.AttrSpread})
}

// UsedComponents lists the table components that occur in the tree, in
// table order.
func UsedComponents(root *svgdoc.Element) []string {
	seen := make(map[string]bool)
	var out []string
	svgdoc.Visit(root, func(el *svgdoc.Element) {
		if IsComponent(el.Name) && !seen[el.Name] {
			seen[el.Name] = true
			out = append(out, el.Name)
		}
	})

	sort.Slice(out, func(i, j int) bool {
		return ComponentOrder(out[i]) < ComponentOrder(out[j])
	})
	return out
}
