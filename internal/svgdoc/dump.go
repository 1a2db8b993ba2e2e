package svgdoc

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders the tree for debugging, one node per line. Whitespace-only
// text is omitted.
func Dump(root *Element) string {
	tree := treeprint.NewWithRoot(describe(root))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(branch treeprint.Tree, el *Element) {
	for _, child := range el.Children {
		switch n := child.(type) {
		case *Element:
			if len(n.Children) == 0 {
				branch.AddNode(describe(n))
				continue
			}
			addChildren(branch.AddBranch(describe(n)), n)
		case *Text:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			branch.AddNode(fmt.Sprintf("#text %q", strings.TrimSpace(n.Data)))
		case *Comment:
			branch.AddNode(fmt.Sprintf("#comment %q", strings.TrimSpace(n.Data)))
		}
	}
}

func describe(el *Element) string {
	var b strings.Builder
	b.WriteString(el.Name)
	for _, a := range el.Attrs {
		b.WriteByte(' ')
		b.WriteString(describeAttr(a))
	}
	return b.String()
}

func describeAttr(a Attr) string {
	switch a.Kind {
	case AttrBound:
		return fmt.Sprintf("%s=props.%s||%q", a.Name, a.Prop, a.Value)
	case AttrStyle:
		parts := make([]string, len(a.Style))
		for i, d := range a.Style {
			parts[i] = d.Property + ":" + d.Value
		}
		return fmt.Sprintf("%s={%s}", a.Name, strings.Join(parts, ";"))
	case AttrSpread:
		return "{...props}"
	default:
		return fmt.Sprintf("%s=%q", a.Name, a.Value)
	}
}
