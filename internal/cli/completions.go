package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// parserModes contains valid --parser values for shell completion.
var parserModes = []string{string(svgrn.ParserXML), string(svgrn.ParserHTML)}

var logFormats = []string{logFormatText, logFormatJSON, logFormatNone}

func filterPrefix(values []string, toComplete string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeParsers provides shell completion for the --parser flag.
func completeParsers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(parserModes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeLogFormats provides shell completion for the --log-format flag.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(logFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories lets the shell complete directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeSourcePath completes .svg files and directories for the first
// argument. Later arguments are free text.
func completeSourcePath(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{strings.TrimPrefix(svgrn.SourceExtension, ".")}, cobra.ShellCompDirectiveFilterFileExt
}

// completeSampleNames provides shell completion for bundled sample names.
func completeSampleNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names, err := sampleNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}
