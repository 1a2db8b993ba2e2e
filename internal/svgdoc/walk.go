package svgdoc

import "errors"

// SkipChildren can be returned by a visitor to skip the element's subtree.
var SkipChildren = errors.New("skip children")

// Walk calls fn for el and every descendant element in document order.
// Returning SkipChildren skips the subtree; any other error stops the walk.
func Walk(el *Element, fn func(*Element) error) error {
	if el == nil {
		return nil
	}
	if err := fn(el); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, child := range el.Children {
		if c, ok := child.(*Element); ok {
			if err := Walk(c, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Visit calls fn for every element in document order. It cannot fail.
func Visit(el *Element, fn func(*Element)) {
	_ = Walk(el, func(e *Element) error {
		fn(e)
		return nil
	})
}
