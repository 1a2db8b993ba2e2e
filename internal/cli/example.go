package cli

import (
	"embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/svgrn/internal/checksum"
	"github.com/vvka-141/svgrn/internal/convert"
	"github.com/vvka-141/svgrn/internal/files/filesystem"
	"github.com/vvka-141/svgrn/internal/files/scanner"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

//go:embed samples/*.svg
var samplesFS embed.FS

var exampleShowSource bool

var exampleCmd = &cobra.Command{
	Use:   "example [sample]",
	Short: "Convert a bundled sample icon and print the component",
	Long: `Example converts one of the SVG files bundled with svgrn using the default
options and prints the generated component. Without an argument the first
sample is used.

Examples:
  svgrn example
  svgrn example badge --source`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runExample,
	ValidArgsFunction: completeSampleNames,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().BoolVar(&exampleShowSource, "source", false, "Print the sample SVG before the component")
}

// loadSamples scans the bundled samples.
func loadSamples() ([]svgrn.SourceFile, error) {
	efs := filesystem.NewEmbedFileSystem(samplesFS, "samples")
	result, err := scanner.NewScannerWithFS(checksum.New(), efs).Scan(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}
	return result.Files, nil
}

// sampleNames lists the samples by file name without extension.
func sampleNames() ([]string, error) {
	samples, err := loadSamples()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(samples))
	for _, s := range samples {
		names = append(names, strings.TrimSuffix(s.RelativePath, svgrn.SourceExtension))
	}
	return names, nil
}

func findSample(samples []svgrn.SourceFile, name string) (svgrn.SourceFile, bool) {
	for _, s := range samples {
		base := strings.TrimSuffix(s.RelativePath, svgrn.SourceExtension)
		if strings.EqualFold(base, name) || strings.EqualFold(s.ComponentName, name) {
			return s, true
		}
	}
	return svgrn.SourceFile{}, false
}

func runExample(cmd *cobra.Command, args []string) error {
	samples, err := loadSamples()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no bundled samples")
	}

	sample := samples[0]
	if len(args) == 1 {
		var ok bool
		if sample, ok = findSample(samples, args[0]); !ok {
			names, _ := sampleNames()
			return fmt.Errorf("%w: unknown sample %q (available: %s)", svgrn.ErrUsage, args[0], strings.Join(names, ", "))
		}
	}

	comp, err := convert.New(svgrn.ParserXML, svgrn.DefaultOptions()).Convert(sample.Content, sample.ComponentName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exampleShowSource {
		fmt.Fprintf(out, "// %s\n%s\n", sample.RelativePath, sample.Content)
	}
	fmt.Fprintf(out, "// %s\n%s", sample.OutputPath, comp.Body)
	return nil
}
