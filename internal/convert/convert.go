// Package convert runs a single document through parsing, the transform
// pipeline and component assembly.
package convert

import (
	"bytes"
	"fmt"

	"github.com/vvka-141/svgrn/internal/component"
	"github.com/vvka-141/svgrn/internal/svgdoc"
	"github.com/vvka-141/svgrn/internal/transform"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// Converter implements svgrn.Converter. It holds no per-document state and
// is safe for concurrent use.
type Converter struct {
	parser    svgrn.ParserMode
	pipeline  *transform.Pipeline
	assembler *component.Assembler
}

var _ svgrn.Converter = (*Converter)(nil)

// New creates a Converter for the given parser mode and options.
// An unknown parser mode falls back to XML.
func New(parser svgrn.ParserMode, opts svgrn.Options) *Converter {
	if !parser.Valid() {
		parser = svgrn.ParserXML
	}
	return &Converter{
		parser:    parser,
		pipeline:  transform.ForOptions(opts),
		assembler: component.NewAssembler(opts),
	}
}

// Parse parses src with the configured parser without transforming it.
func (c *Converter) Parse(src []byte) (*svgdoc.Document, error) {
	if c.parser == svgrn.ParserHTML {
		return svgdoc.ParseHTML(bytes.NewReader(src))
	}
	return svgdoc.Parse(bytes.NewReader(src))
}

// Transform parses src and applies the pipeline, returning the rewritten tree.
func (c *Converter) Transform(src []byte) (*svgdoc.Document, error) {
	doc, err := c.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := c.pipeline.Run(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Convert turns src into a component named name. An empty name becomes
// svgrn.DefaultComponentName.
func (c *Converter) Convert(src []byte, name string) (svgrn.Component, error) {
	if name == "" {
		name = svgrn.DefaultComponentName
	}

	doc, err := c.Transform(src)
	if err != nil {
		return svgrn.Component{}, fmt.Errorf("convert %s: %w", name, err)
	}

	comp, err := c.assembler.Assemble(name, doc.Root)
	if err != nil {
		return svgrn.Component{}, fmt.Errorf("convert %s: %w: %v", name, svgrn.ErrConversionFailed, err)
	}
	return comp, nil
}
