package svgrn

import (
	"errors"
	"fmt"
)

// Options controls how a single document is transformed.
type Options struct {
	// FormatOutput renders the markup indented, one element per line.
	// When false the markup is emitted on a single line.
	FormatOutput bool

	// FillProp binds every fill attribute to props.fill.
	FillProp bool

	// StrokeProp binds every stroke attribute to props.stroke.
	StrokeProp bool

	// WidthHeightProp binds every width and height attribute to props.width / props.height.
	WidthHeightProp bool

	// StripStyle removes inline style attributes from all elements.
	StripStyle bool
}

// DefaultOptions returns the options used when nothing is configured:
// formatted output with all property bindings and inline styles kept.
func DefaultOptions() Options {
	return Options{
		FormatOutput:    true,
		FillProp:        true,
		StrokeProp:      true,
		WidthHeightProp: true,
		StripStyle:      false,
	}
}

// ParserMode selects how source markup is parsed.
type ParserMode string

const (
	// ParserXML parses sources as XML documents.
	ParserXML ParserMode = "xml"
	// ParserHTML parses sources leniently with an HTML5 parser and picks the first svg element.
	ParserHTML ParserMode = "html"
)

// Valid reports whether m is a known parser mode.
func (m ParserMode) Valid() bool {
	return m == ParserXML || m == ParserHTML
}

// ConvertConfig contains all parameters needed for a conversion run.
type ConvertConfig struct {
	// SourcePath is a single .svg file or a directory scanned recursively.
	SourcePath string

	// OutputDir is the root directory for generated files.
	// Empty means the current working directory.
	OutputDir string

	// ComponentName overrides the derived name. Only valid for single-file sources.
	ComponentName string

	// Force allows overwriting existing output files.
	Force bool

	// DryRun converts without writing; results carry the generated body.
	DryRun bool

	// Concurrency bounds the number of documents converted in parallel.
	Concurrency int

	// Parser selects the markup parser.
	Parser ParserMode

	// Options are the per-document transformation options.
	Options Options

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ConvertConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ConvertConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}

	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d: %w", c.Concurrency, ErrInvalidConfig))
	}

	if !c.Parser.Valid() {
		errs = append(errs, fmt.Errorf("unknown parser %q (expected xml or html): %w", c.Parser, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Component is the result of converting one document.
// It is immutable once assembled.
type Component struct {
	// Name is the exported component identifier.
	Name string

	// Body is the complete generated source file.
	Body string
}

// SourceFile describes one discovered source document.
type SourceFile struct {
	// Path is the absolute (or provider-absolute) path of the source.
	Path string

	// RelativePath is the path relative to the scanned root, with forward slashes.
	RelativePath string

	// ComponentName is the identifier derived from the file name.
	ComponentName string

	// OutputPath is the path of the generated file relative to the output root.
	OutputPath string

	// Content is the raw source markup.
	Content []byte

	// Checksum is the SHA-256 of the markup after whitespace/comment normalization.
	Checksum string

	// ChecksumRaw is the SHA-256 of the unmodified bytes.
	ChecksumRaw string
}

// ScanResult contains the sources found under a path.
type ScanResult struct {
	Root  string
	Files []SourceFile

	// SingleFile is set when the scanned path was a file, not a directory.
	SingleFile bool
}

// Status is the outcome of one document in a batch.
type Status int

const (
	// StatusWritten means the component file was created or overwritten.
	StatusWritten Status = iota
	// StatusUnchanged means an identical file already existed.
	StatusUnchanged
	// StatusConverted means the document was converted but not written (dry run).
	StatusConverted
	// StatusSkipped means the document was not processed (cancelled).
	StatusSkipped
	// StatusFailed means conversion or writing failed; Err is set.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusUnchanged:
		return "unchanged"
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// DocumentResult is the outcome for a single source.
type DocumentResult struct {
	Source     SourceFile
	OutputPath string
	Component  Component
	Status     Status
	Err        error
}

// BatchReport aggregates all document results in scan order.
type BatchReport struct {
	Results []DocumentResult
}

// Count returns the number of results with the given status.
func (r *BatchReport) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the failed results in scan order.
func (r *BatchReport) Failed() []DocumentResult {
	var failed []DocumentResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err summarizes the batch as a single error, or nil when nothing failed.
// When every failure is an output conflict the error wraps ErrOutputExists,
// otherwise it wraps ErrConversionFailed.
func (r *BatchReport) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}

	allConflicts := true
	for _, res := range failed {
		if !errors.Is(res.Err, ErrOutputExists) {
			allConflicts = false
			break
		}
	}

	if allConflicts {
		return fmt.Errorf("%d of %d document(s) not written: %w", len(failed), len(r.Results), ErrOutputExists)
	}
	return fmt.Errorf("%d of %d document(s) failed: %w", len(failed), len(r.Results), ErrConversionFailed)
}
