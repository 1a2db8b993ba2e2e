package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/svgrn/internal/svgdoc"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// ResolveSizing makes sure the root element carries width and height.
// Each dimension is resolved independently:
//  1. an existing attribute is kept as-is;
//  2. otherwise the matching viewBox component (3rd for width, 4th for height);
//  3. otherwise svgrn.DefaultDimension.
//
// The viewBox is only read when a dimension is missing. A viewBox that does
// not consist of exactly four numbers fails with svgrn.ErrMalformedViewBox.
func ResolveSizing(root *svgdoc.Element) error {
	if root == nil {
		return svgrn.ErrNoRootElement
	}

	hasWidth := root.HasAttr("width")
	hasHeight := root.HasAttr("height")
	if hasWidth && hasHeight {
		return nil
	}

	width, height := svgrn.DefaultDimension, svgrn.DefaultDimension
	if vb, ok := root.Attr("viewBox"); ok {
		w, h, err := viewBoxSize(vb.Value)
		if err != nil {
			return err
		}
		width, height = w, h
	}

	if !hasWidth {
		root.SetAttr("width", width)
	}
	if !hasHeight {
		root.SetAttr("height", height)
	}
	return nil
}

// viewBoxSize returns the width and height components of a viewBox verbatim.
func viewBoxSize(value string) (string, string, error) {
	parts := splitOnCommaOrSpace(value)
	if len(parts) != 4 {
		return "", "", fmt.Errorf("%w: %q has %d component(s), want 4", svgrn.ErrMalformedViewBox, value, len(parts))
	}
	for _, p := range parts {
		if _, err := strconv.ParseFloat(p, 64); err != nil {
			return "", "", fmt.Errorf("%w: %q is not a number", svgrn.ErrMalformedViewBox, p)
		}
	}
	return parts[2], parts[3], nil
}

func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
