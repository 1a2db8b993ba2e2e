// Package transform rewrites a parsed markup tree into component markup.
//
// The work is split into stages. Each stage declares the facets of the tree
// it needs and the facets it establishes, and NewPipeline rejects an order
// in which a stage runs before its inputs exist. Width and height binding,
// for instance, requires the sizing facet so that there are literal values
// to bind.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/svgrn/internal/svgdoc"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// ErrStageOrder is returned when a stage requires a facet no earlier stage provides.
var ErrStageOrder = errors.New("invalid stage order")

// Facet is a property of the tree established by a stage.
type Facet uint8

const (
	// FacetSized means the root carries width and height.
	FacetSized Facet = 1 << iota
	// FacetStyled means inline styles were stripped or left intentionally.
	FacetStyled
	// FacetMapped means names are in the component vocabulary.
	FacetMapped
	// FacetBound means property bindings were applied.
	FacetBound
)

var facetNames = []struct {
	f    Facet
	name string
}{
	{FacetSized, "sized"},
	{FacetStyled, "styled"},
	{FacetMapped, "mapped"},
	{FacetBound, "bound"},
}

func (f Facet) String() string {
	var parts []string
	for _, fn := range facetNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Stage is one tree transformation.
type Stage interface {
	Name() string
	Requires() Facet
	Provides() Facet
	Apply(root *svgdoc.Element) error
}

type stage struct {
	name     string
	requires Facet
	provides Facet
	apply    func(*svgdoc.Element) error
}

func (s stage) Name() string { return s.name }
func (s stage) Requires() Facet { return s.requires }
func (s stage) Provides() Facet { return s.provides }
func (s stage) Apply(root *svgdoc.Element) error { return s.apply(root) }

// SizingStage fills in missing root width and height.
func SizingStage() Stage {
	return stage{name: "resolve-sizing", provides: FacetSized, apply: ResolveSizing}
}

// StripStyleStage removes inline style attributes.
func StripStyleStage() Stage {
	return stage{
		name:     "strip-style",
		provides: FacetStyled,
		apply: func(root *svgdoc.Element) error {
			StripStyles(root)
			return nil
		},
	}
}

// MappingStage translates tag and attribute names and spreads props onto the root.
func MappingStage() Stage {
	return stage{
		name:     "map-vocabulary",
		provides: FacetMapped,
		apply: func(root *svgdoc.Element) error {
			if err := MapVocabulary(root); err != nil {
				return err
			}
			SpreadProps(root)
			return nil
		},
	}
}

// FillStage binds fill attributes.
func FillStage() Stage {
	return bindStage("bind-fill", 0, BindFill)
}

// StrokeStage binds stroke attributes.
func StrokeStage() Stage {
	return bindStage("bind-stroke", 0, BindStroke)
}

// WidthHeightStage binds width and height. It needs the sizing facet.
func WidthHeightStage() Stage {
	return bindStage("bind-width-height", FacetSized, BindWidthHeight)
}

func bindStage(name string, requires Facet, bind func(*svgdoc.Element) int) Stage {
	return stage{
		name:     name,
		requires: requires | FacetMapped,
		provides: FacetBound,
		apply: func(root *svgdoc.Element) error {
			bind(root)
			return nil
		},
	}
}

// Pipeline is a validated sequence of stages.
type Pipeline struct {
	stages []Stage
}

// NewPipeline checks that every stage's requirements are provided by an
// earlier stage.
func NewPipeline(stages ...Stage) (*Pipeline, error) {
	var have Facet
	for i, s := range stages {
		if missing := s.Requires() &^ have; missing != 0 {
			return nil, fmt.Errorf("%w: stage %d (%s) requires %s", ErrStageOrder, i, s.Name(), missing)
		}
		have |= s.Provides()
	}
	return &Pipeline{stages: stages}, nil
}

// ForOptions builds the canonical pipeline for opts:
// sizing, style stripping, mapping, then the enabled bindings.
func ForOptions(opts svgrn.Options) *Pipeline {
	stages := []Stage{SizingStage()}
	if opts.StripStyle {
		stages = append(stages, StripStyleStage())
	}
	stages = append(stages, MappingStage())
	if opts.FillProp {
		stages = append(stages, FillStage())
	}
	if opts.StrokeProp {
		stages = append(stages, StrokeStage())
	}
	if opts.WidthHeightProp {
		stages = append(stages, WidthHeightStage())
	}

	p, err := NewPipeline(stages...)
	if err != nil {
		// the canonical order always validates
		panic(err)
	}
	return p
}

// Stages returns the stage names in order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Run applies the stages to doc in order and stops at the first error.
func (p *Pipeline) Run(doc *svgdoc.Document) error {
	if doc == nil || doc.Root == nil {
		return svgrn.ErrNoRootElement
	}
	for _, s := range p.stages {
		if err := s.Apply(doc.Root); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return nil
}
