package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/svgrn/internal/convert"
	"github.com/vvka-141/svgrn/internal/files/filesystem"
	"github.com/vvka-141/svgrn/internal/svgdoc"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

type inspectFlagValues struct {
	raw     bool
	parser  string
	rmStyle bool
}

var inspectFlags inspectFlagValues

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.svg>",
	Short: "Print the document tree of an SVG file",
	Long: `Inspect prints the element tree svgrn builds for a file, after sizing,
tag mapping and prop binding. Use --raw to see the tree as parsed.

Examples:
  svgrn inspect icons/home.svg
  svgrn inspect broken.svg --raw --parser html`,
	Args:              RequireSVGFile,
	RunE:              runInspect,
	ValidArgsFunction: completeSourcePath,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectFlags.raw, "raw", false,
		"Print the parsed tree without transforming it")
	inspectCmd.Flags().StringVar(&inspectFlags.parser, "parser", string(svgrn.ParserXML),
		"Markup parser: xml (strict) or html (lenient)")
	inspectCmd.Flags().BoolVar(&inspectFlags.rmStyle, "rm-style", false,
		"Remove inline style attributes before printing")
	_ = inspectCmd.RegisterFlagCompletionFunc("parser", completeParsers)
}

func runInspect(cmd *cobra.Command, args []string) error {
	return inspectFile(cmd, filesystem.NewOSFileSystem(), args[0], inspectFlags)
}

func inspectFile(cmd *cobra.Command, fsProvider filesystem.FileSystemProvider, path string, flags inspectFlagValues) error {
	parser := svgrn.ParserMode(flags.parser)
	if !parser.Valid() {
		return fmt.Errorf("%w: unknown parser %q (expected xml or html)", svgrn.ErrUsage, flags.parser)
	}

	src, err := fsProvider.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", svgrn.ErrSourceNotFound, path, err)
	}

	opts := svgrn.DefaultOptions()
	opts.StripStyle = flags.rmStyle
	converter := convert.New(parser, opts)

	var doc *svgdoc.Document
	if flags.raw {
		doc, err = converter.Parse(src)
	} else {
		doc, err = converter.Transform(src)
	}
	if err != nil {
		return fmt.Errorf("inspect %s: %w", path, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), svgdoc.Dump(doc.Root))
	return nil
}
