package services

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/svgrn/internal/component"
	"github.com/vvka-141/svgrn/internal/convert"
	"github.com/vvka-141/svgrn/internal/files/scanner"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// ConverterFactory builds the per-batch converter.
type ConverterFactory func(parser svgrn.ParserMode, opts svgrn.Options) svgrn.Converter

// Observer receives each document result as soon as it is final.
// It is called from worker goroutines and must be safe for concurrent use.
type Observer func(svgrn.DocumentResult)

// ConversionService converts every source under a path into a component file.
// Thread-Safety: safe for concurrent Run() calls; all per-batch state lives
// in the call.
type ConversionService struct {
	scanner      svgrn.FileScanner
	writer       svgrn.ComponentWriter
	logger       svgrn.Logger
	newConverter ConverterFactory
}

// NewConversionService creates a ConversionService. Panics on nil
// dependencies: they are wiring mistakes, not runtime conditions.
func NewConversionService(fileScanner svgrn.FileScanner, writer svgrn.ComponentWriter, logger svgrn.Logger) *ConversionService {
	if fileScanner == nil {
		panic("fileScanner cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &ConversionService{
		scanner: fileScanner,
		writer:  writer,
		logger:  logger,
		newConverter: func(parser svgrn.ParserMode, opts svgrn.Options) svgrn.Converter {
			return convert.New(parser, opts)
		},
	}
}

// Run scans cfg.SourcePath and converts everything found.
//
// The report always covers every scanned source. The returned error is the
// report's summary error, or the context error when documents were skipped
// because of cancellation.
func (s *ConversionService) Run(ctx context.Context, cfg svgrn.ConvertConfig) (*svgrn.BatchReport, error) {
	scan, err := s.Scan(cfg)
	if err != nil {
		return nil, err
	}

	report := s.Convert(ctx, cfg, scan, nil)
	return report, BatchError(ctx, report)
}

// Scan validates cfg and discovers its sources, applying the
// ComponentName override.
func (s *ConversionService) Scan(cfg svgrn.ConvertConfig) (svgrn.ScanResult, error) {
	if err := cfg.Validate(); err != nil {
		return svgrn.ScanResult{}, err
	}

	scan, err := s.scanner.Scan(cfg.SourcePath)
	if err != nil {
		return svgrn.ScanResult{}, err
	}

	if cfg.ComponentName != "" {
		if !scan.SingleFile {
			return svgrn.ScanResult{}, fmt.Errorf("%w: a component name can only be given for a single source file", svgrn.ErrUsage)
		}
		src := &scan.Files[0]
		src.ComponentName = component.Identifier(cfg.ComponentName)
		src.OutputPath = scanner.OutputPath(src.RelativePath, src.ComponentName)
	}

	s.logger.Verbose("Found %d source file(s) under %s", len(scan.Files), scan.Root)
	s.logDuplicates(scan.Files)
	return scan, nil
}

// Convert converts the scanned sources in parallel, bounded by
// cfg.Concurrency. A failing document never stops its siblings. Once ctx is
// done no new document is started; unstarted ones are reported as skipped.
// Results are in scan order.
func (s *ConversionService) Convert(ctx context.Context, cfg svgrn.ConvertConfig, scan svgrn.ScanResult, observe Observer) *svgrn.BatchReport {
	if observe == nil {
		observe = func(svgrn.DocumentResult) {}
	}

	limit := cfg.Concurrency
	if limit < 1 {
		limit = runtime.NumCPU()
	}

	converter := s.newConverter(cfg.Parser, cfg.Options)
	collisions := findCollisions(cfg.OutputDir, scan.Files)
	results := make([]svgrn.DocumentResult, len(scan.Files))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, src := range scan.Files {
		if ctx.Err() != nil {
			results[i] = skipped(cfg, src)
			observe(results[i])
			continue
		}

		i, src := i, src
		g.Go(func() error {
			if err, ok := collisions[i]; ok {
				results[i] = failed(cfg, src, err)
			} else {
				results[i] = s.convertOne(ctx, converter, cfg, src)
			}
			observe(results[i])
			return nil
		})
	}
	_ = g.Wait()

	return &svgrn.BatchReport{Results: results}
}

func (s *ConversionService) convertOne(ctx context.Context, converter svgrn.Converter, cfg svgrn.ConvertConfig, src svgrn.SourceFile) svgrn.DocumentResult {
	if ctx.Err() != nil {
		return skipped(cfg, src)
	}

	res := svgrn.DocumentResult{Source: src, OutputPath: outputPath(cfg.OutputDir, src)}

	comp, err := converter.Convert(src.Content, src.ComponentName)
	if err != nil {
		s.logger.Verbose("Conversion of %s failed: %v", src.RelativePath, err)
		return failed(cfg, src, err)
	}
	res.Component = comp

	if cfg.DryRun {
		res.Status = svgrn.StatusConverted
		return res
	}

	status, err := s.writer.Write(res.OutputPath, []byte(comp.Body), cfg.Force)
	if err != nil {
		return failed(cfg, src, err)
	}

	switch status {
	case svgrn.WriteUnchanged:
		res.Status = svgrn.StatusUnchanged
		s.logger.Verbose("%s is up to date", res.OutputPath)
	case svgrn.WriteOverwritten:
		res.Status = svgrn.StatusWritten
		s.logger.Verbose("Overwrote %s", res.OutputPath)
	default:
		res.Status = svgrn.StatusWritten
	}
	return res
}

// logDuplicates reports sources whose markup is identical after
// normalization; they produce identical components under different names.
func (s *ConversionService) logDuplicates(files []svgrn.SourceFile) {
	groups := make(map[string][]string)
	var order []string
	for _, f := range files {
		if _, seen := groups[f.Checksum]; !seen {
			order = append(order, f.Checksum)
		}
		groups[f.Checksum] = append(groups[f.Checksum], f.RelativePath)
	}

	for _, sum := range order {
		if paths := groups[sum]; len(paths) > 1 {
			s.logger.Verbose("Identical markup in %s", strings.Join(paths, ", "))
		}
	}
}

// findCollisions maps the index of every source whose output path was
// already claimed by an earlier source to its error.
func findCollisions(outputDir string, files []svgrn.SourceFile) map[int]error {
	owners := make(map[string]int, len(files))
	collisions := make(map[int]error)

	for i, f := range files {
		out := outputPath(outputDir, f)
		if owner, taken := owners[out]; taken {
			collisions[i] = fmt.Errorf("%s and %s both map to %s: %w",
				files[owner].RelativePath, f.RelativePath, out, svgrn.ErrOutputCollision)
			continue
		}
		owners[out] = i
	}
	return collisions
}

func outputPath(outputDir string, src svgrn.SourceFile) string {
	return filepath.Join(outputDir, filepath.FromSlash(src.OutputPath))
}

func skipped(cfg svgrn.ConvertConfig, src svgrn.SourceFile) svgrn.DocumentResult {
	return svgrn.DocumentResult{Source: src, OutputPath: outputPath(cfg.OutputDir, src), Status: svgrn.StatusSkipped}
}

func failed(cfg svgrn.ConvertConfig, src svgrn.SourceFile, err error) svgrn.DocumentResult {
	return svgrn.DocumentResult{Source: src, OutputPath: outputPath(cfg.OutputDir, src), Status: svgrn.StatusFailed, Err: err}
}

// BatchError summarizes a finished batch: the report's error, or the
// context error when documents were skipped because of cancellation.
func BatchError(ctx context.Context, report *svgrn.BatchReport) error {
	if err := report.Err(); err != nil {
		return err
	}
	if n := report.Count(svgrn.StatusSkipped); n > 0 {
		cause := ctx.Err()
		if cause == nil {
			// cancelled through a derived context
			cause = context.Canceled
		}
		return fmt.Errorf("%d document(s) skipped: %w", n, cause)
	}
	return nil
}
