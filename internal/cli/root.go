package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/svgrn/internal/logging"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

var rootCmd = &cobra.Command{
	Use:   "svgrn",
	Short: "Convert SVG files into React Native components",
	Long: `svgrn turns SVG files into typed react-native-svg components.

Every tag is mapped to its react-native-svg component, fill, stroke, width
and height become component props with the original values as fallbacks,
and the result is written as a .tsx file next to the other components.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or .svgrn.yaml
  11 - At least one document failed to convert
  12 - Output exists (use --force to overwrite)
  13 - Source file or directory not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

const (
	logFormatText = "text"
	logFormatJSON = "json"
	logFormatNone = "none"
)

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("log-format", logFormatText, "Log output format: text|json|none")
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getLogFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil || format == "" {
		return logFormatText
	}
	return format
}

// newLogger builds the logger selected by --log-format. The returned func
// flushes buffered entries and must be called before exiting.
func newLogger(cmd *cobra.Command) (svgrn.Logger, func(), error) {
	verbose := getVerboseFlag(cmd)

	switch format := getLogFormat(cmd); format {
	case logFormatText:
		return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose), func() {}, nil
	case logFormatJSON:
		logger := logging.NewJSONLoggerTo(cmd.ErrOrStderr(), verbose)
		return logger, func() { _ = logger.Sync() }, nil
	case logFormatNone:
		return logging.NewNullLogger(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown log format %q (expected text, json or none)", svgrn.ErrUsage, format)
	}
}
