package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/svgrn/internal/checksum"
	"github.com/vvka-141/svgrn/internal/config"
	"github.com/vvka-141/svgrn/internal/files/filesystem"
	"github.com/vvka-141/svgrn/internal/files/scanner"
	"github.com/vvka-141/svgrn/internal/files/writer"
	"github.com/vvka-141/svgrn/internal/services"
	"github.com/vvka-141/svgrn/internal/tui"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// Environment variables read by convert. A .env file in the working
// directory is loaded first.
const (
	EnvOutputDir   = "SVGRN_OUTPUT_DIR"
	EnvConcurrency = "SVGRN_CONCURRENCY"
)

type convertFlagValues struct {
	output          string
	force           bool
	format          bool
	fillProp        bool
	strokeProp      bool
	widthHeightProp bool
	rmStyle         bool
	parser          string
	concurrency     int
	dryRun          bool
}

var convertFlags convertFlagValues

var convertCmd = newConvertCmd(&convertFlags)

func init() {
	rootCmd.AddCommand(convertCmd)
}

func newConvertCmd(flags *convertFlagValues) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <source> [component_name]",
		Short: "Convert SVG files into react-native-svg components",
		Long: `Convert reads an .svg file, or every .svg file below a directory, and writes
one <ComponentName>.tsx file per source.

Arguments:
  source          An .svg file or a directory scanned recursively.
                  A path without extension is retried with .svg appended.
  component_name  Name of the generated component. Only valid when source
                  is a single file; defaults to the file name in PascalCase.

Configuration precedence:
  flags > environment (SVGRN_OUTPUT_DIR, SVGRN_CONCURRENCY, .env) > .svgrn.yaml > defaults

Examples:
  # Convert one icon into ./Home.tsx
  svgrn convert home.svg

  # Convert a directory tree into src/icons, replacing existing files
  svgrn convert ./assets/icons -o src/icons --force

  # Keep fill and stroke literal, drop inline styles
  svgrn convert logo.svg Logo --fill-prop=false --stroke-prop=false --rm-style

  # Print components without writing anything
  svgrn convert ./assets/icons --dry-run`,
		Args: RequireSource,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, args)
		},
		ValidArgsFunction: completeSourcePath,
	}

	defaults := svgrn.DefaultOptions()
	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "",
		"Output directory (default: current directory, or $SVGRN_OUTPUT_DIR)")
	f.BoolVarP(&flags.force, "force", "f", false,
		"Overwrite existing component files")
	f.BoolVar(&flags.format, "format", defaults.FormatOutput,
		"Indent the generated markup, one element per line")
	f.BoolVar(&flags.fillProp, "fill-prop", defaults.FillProp,
		"Bind fill attributes to props.fill")
	f.BoolVar(&flags.strokeProp, "stroke-prop", defaults.StrokeProp,
		"Bind stroke attributes to props.stroke")
	f.BoolVar(&flags.widthHeightProp, "width-height-prop", defaults.WidthHeightProp,
		"Bind width and height attributes to props.width and props.height")
	f.BoolVar(&flags.rmStyle, "rm-style", defaults.StripStyle,
		"Remove inline style attributes")
	f.StringVar(&flags.parser, "parser", string(svgrn.ParserXML),
		"Markup parser: xml (strict) or html (lenient)")
	f.IntVarP(&flags.concurrency, "concurrency", "j", runtime.NumCPU(),
		"Documents converted in parallel (or $SVGRN_CONCURRENCY)")
	f.BoolVar(&flags.dryRun, "dry-run", false,
		"Print the generated components to stdout instead of writing them")

	_ = cmd.RegisterFlagCompletionFunc("parser", completeParsers)
	_ = cmd.RegisterFlagCompletionFunc("output", completeDirectories)
	return cmd
}

// buildConvertConfig resolves a ConvertConfig from defaults, .svgrn.yaml,
// the environment and the flags that were set, in that order.
func buildConvertConfig(cmd *cobra.Command, flags *convertFlagValues, args []string, verbose bool) (svgrn.ConvertConfig, error) {
	_ = godotenv.Load()

	cfg := svgrn.ConvertConfig{
		SourcePath:  args[0],
		Concurrency: runtime.NumCPU(),
		Parser:      svgrn.ParserXML,
		Options:     svgrn.DefaultOptions(),
		Verbose:     verbose,
	}
	if len(args) > 1 {
		cfg.ComponentName = args[1]
	}

	projectCfg, err := loadProjectConfig(cfg.SourcePath)
	if err != nil {
		return svgrn.ConvertConfig{}, err
	}
	if projectCfg != nil {
		projectCfg.ApplyTo(&cfg, config.SourceDir(cfg.SourcePath))
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Applied %s from %s\n", config.ConfigFileName, config.SourceDir(cfg.SourcePath))
		}
	}

	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return svgrn.ConvertConfig{}, fmt.Errorf("%s=%q is not a number: %w", EnvConcurrency, v, svgrn.ErrInvalidConfig)
		}
		cfg.Concurrency = n
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.OutputDir = flags.output
	}
	if changed("force") {
		cfg.Force = flags.force
	}
	if changed("format") {
		cfg.Options.FormatOutput = flags.format
	}
	if changed("fill-prop") {
		cfg.Options.FillProp = flags.fillProp
	}
	if changed("stroke-prop") {
		cfg.Options.StrokeProp = flags.strokeProp
	}
	if changed("width-height-prop") {
		cfg.Options.WidthHeightProp = flags.widthHeightProp
	}
	if changed("rm-style") {
		cfg.Options.StripStyle = flags.rmStyle
	}
	if changed("parser") {
		cfg.Parser = svgrn.ParserMode(flags.parser)
	}
	if changed("concurrency") {
		cfg.Concurrency = flags.concurrency
	}
	cfg.DryRun = flags.dryRun

	if err := cfg.Validate(); err != nil {
		return svgrn.ConvertConfig{}, err
	}
	return cfg, nil
}

// loadProjectConfig returns nil when .svgrn.yaml does not exist.
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	projectCfg, err := config.LoadForSource(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %v: %w", config.ConfigFileName, err, svgrn.ErrInvalidConfig)
	}
	return projectCfg, nil
}

func runConvert(cmd *cobra.Command, flags *convertFlagValues, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildConvertConfig(cmd, flags, args, verbose)
	if err != nil {
		return err
	}

	logger, flush, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer flush()

	calculator := checksum.New()
	fsProvider := filesystem.NewOSFileSystem()
	svc := services.NewConversionService(
		scanner.NewScannerWithFS(calculator, fsProvider),
		writer.New(fsProvider, calculator),
		logger,
	)

	// Handle interrupt signals (Ctrl+C, SIGTERM): documents already started
	// finish, the rest are skipped.
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scan, err := svc.Scan(cfg)
	if err != nil {
		return err
	}

	var report *svgrn.BatchReport
	if useProgressView(cmd, cfg) {
		report, err = tui.RunWithProgress(ctx, cmd.ErrOrStderr(), len(scan.Files),
			func(ctx context.Context, observe func(svgrn.DocumentResult)) *svgrn.BatchReport {
				return svc.Convert(ctx, cfg, scan, observe)
			})
		if err != nil {
			return fmt.Errorf("progress view failed: %w", err)
		}
	} else {
		report = svc.Convert(ctx, cfg, scan, func(res svgrn.DocumentResult) {
			logResult(logger, res)
		})
		if len(report.Results) > 1 {
			logger.Info("%s", tui.Summary(report))
		}
	}

	if cfg.DryRun {
		printComponents(cmd, report)
	}

	return services.BatchError(ctx, report)
}

func useProgressView(cmd *cobra.Command, cfg svgrn.ConvertConfig) bool {
	return !cfg.DryRun && getLogFormat(cmd) == logFormatText && tui.IsInteractive()
}

func logResult(logger svgrn.Logger, res svgrn.DocumentResult) {
	if res.Status == svgrn.StatusFailed {
		logger.Error("%s: %v", res.Source.RelativePath, res.Err)
		return
	}
	logger.Info("%s", tui.ResultLine(res))
}

// printComponents writes converted bodies to stdout in scan order.
func printComponents(cmd *cobra.Command, report *svgrn.BatchReport) {
	out := cmd.OutOrStdout()
	first := true
	for _, res := range report.Results {
		if res.Status != svgrn.StatusConverted {
			continue
		}
		if !first {
			fmt.Fprintln(out)
		}
		first = false
		fmt.Fprintf(out, "// %s\n%s", res.OutputPath, res.Component.Body)
	}
}
