package component

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
)

const namePrefix = "Svg"

// Name derives a component identifier from a source file name: the
// directory and extension are dropped and the rest goes through Identifier.
func Name(fileName string) string {
	base := path.Base(filepath.ToSlash(fileName))
	if ext := path.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return Identifier(base)
}

// Identifier CamelCases s with strcase.ToCamel, which keeps only ASCII
// letters and digits: punctuation and every non-ASCII byte are discarded,
// and '_', '-', '.' and spaces only mark word starts. The first letter is
// upper-cased since lower-case JSX tags are host elements, and a result that
// is empty or starts with a digit gets the "Svg" prefix. Every input yields
// a valid identifier.
func Identifier(s string) string {
	name := strcase.ToCamel(s)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return namePrefix + name
	}
	if c := name[0]; c >= 'a' && c <= 'z' {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}
