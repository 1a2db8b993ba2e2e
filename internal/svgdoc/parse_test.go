package svgdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

func TestParse_BuildsTree(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 20 20"><!-- icon --><g id="a"><path fill="#000" d="M0 0"/><use xlink:href="#a"/></g><text>Hi</text></svg>`

	doc, err := ParseBytes([]byte(src))
	require.NoError(t, err)

	want := &Element{
		Name: "svg",
		Attrs: []Attr{
			Literal("xmlns", "http://www.w3.org/2000/svg"),
			Literal("xmlns:xlink", "http://www.w3.org/1999/xlink"),
			Literal("viewBox", "0 0 20 20"),
		},
		Children: []Node{
			&Comment{Data: " icon "},
			&Element{
				Name:  "g",
				Attrs: []Attr{Literal("id", "a")},
				Children: []Node{
					&Element{Name: "path", Attrs: []Attr{Literal("fill", "#000"), Literal("d", "M0 0")}},
					&Element{Name: "use", Attrs: []Attr{Literal("xlink:href", "#a")}},
				},
			},
			&Element{Name: "text", Children: []Node{&Text{Data: "Hi"}}},
		},
	}

	if diff := cmp.Diff(want, doc.Root); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_IgnoresContentAfterRoot(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg><path/></svg><svg id="second"/>`))
	require.NoError(t, err)
	assert.False(t, doc.Root.HasAttr("id"))
	assert.Len(t, doc.Root.Elements(), 1)
}

func TestParse_DecodesEntitiesAndQuotes(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg><text font-family="&quot;Open Sans&quot;">a &amp; b &nbsp;</text></svg>`))
	require.NoError(t, err)

	text := doc.Root.Elements()[0]
	family, ok := text.Attr("font-family")
	require.True(t, ok)
	assert.Equal(t, `"Open Sans"`, family.Value)
	assert.Equal(t, "a & b \u00a0", text.Children[0].(*Text).Data)
}

func TestParse_NoRootElement(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"prolog only", `<?xml version="1.0"?>`},
		{"comment only", `<!-- nothing here -->`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, svgrn.ErrNoRootElement), "got %v", err)
		})
	}
}

func TestParse_Latin1Encoding(t *testing.T) {
	// "é" in ISO-8859-1
	src := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><svg><title>caf`), 0xe9, '<', '/', 't', 'i', 't', 'l', 'e', '>', '<', '/', 's', 'v', 'g', '>')

	doc, err := ParseBytes(src)
	require.NoError(t, err)
	title := doc.Root.Elements()[0]
	assert.Equal(t, "café", title.Children[0].(*Text).Data)
}

func TestParseHTML_LenientMarkup(t *testing.T) {
	src := `<div><p>icon:</p><svg viewBox="0 0 24 24"><linearGradient id="g"><stop offset="0"></stop></linearGradient><use xlink:href="#g"><path d="M1 1"></svg></div>`

	doc, err := ParseHTMLBytes([]byte(src))
	require.NoError(t, err)

	root := doc.Root
	assert.Equal(t, "svg", root.Name)
	vb, ok := root.Attr("viewBox")
	require.True(t, ok, "viewBox should keep its camel case")
	assert.Equal(t, "0 0 24 24", vb.Value)

	children := root.Elements()
	require.Len(t, children, 2)
	assert.Equal(t, "linearGradient", children[0].Name)
	assert.Equal(t, "use", children[1].Name)
	href, ok := children[1].Attr("xlink:href")
	require.True(t, ok)
	assert.Equal(t, "#g", href.Value)
}

func TestParseHTML_NoSVG(t *testing.T) {
	_, err := ParseHTMLBytes([]byte(`<html><body><p>nothing</p></body></html>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, svgrn.ErrNoRootElement))
}

func TestElement_AttrHelpers(t *testing.T) {
	el := &Element{Name: "svg", Attrs: []Attr{Literal("width", "10"), {Kind: AttrSpread}}}

	el.SetAttr("width", "20")
	el.SetAttr("height", "30")
	w, _ := el.Attr("width")
	assert.Equal(t, "20", w.Value)
	assert.Equal(t, "height", el.Attrs[2].Name, "new attributes are appended")

	assert.True(t, el.RemoveAttr("width"))
	assert.False(t, el.RemoveAttr("width"))
	assert.Len(t, el.Attrs, 2, "spread must survive removals")
}

func TestElement_CloneIsDeep(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg><g><path fill="red"/></g></svg>`))
	require.NoError(t, err)

	clone := doc.Root.Clone()
	clone.Elements()[0].Elements()[0].SetAttr("fill", "blue")

	fill, _ := doc.Root.Elements()[0].Elements()[0].Attr("fill")
	assert.Equal(t, "red", fill.Value)
}

func TestWalk_SkipChildren(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg><defs><path/></defs><g><path/></g></svg>`))
	require.NoError(t, err)

	var seen []string
	err = Walk(doc.Root, func(e *Element) error {
		seen = append(seen, e.Name)
		if e.Name == "defs" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"svg", "defs", "g", "path"}, seen)
}

func TestDump(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg width="1"><g><path d="M0"/></g><text>hello</text></svg>`))
	require.NoError(t, err)

	out := Dump(doc.Root)
	assert.True(t, strings.HasPrefix(out, `svg width="1"`), out)
	assert.Contains(t, out, `path d="M0"`)
	assert.Contains(t, out, `#text "hello"`)
}
