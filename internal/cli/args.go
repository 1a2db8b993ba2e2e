package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// RequireSource validates the <source> [component_name] arguments of convert.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireSource(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <source>

Usage: %s

Example:
  %s ./icons -o ./src/icons`, svgrn.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: accepts at most 2 arg(s), received %d", svgrn.ErrUsage, len(args))
	}
	return nil
}

// RequireSVGFile validates that exactly one file argument is provided.
func RequireSVGFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <file.svg>

Usage: %s

Example:
  %s ./icons/home.svg --raw`, svgrn.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", svgrn.ErrUsage, len(args))
	}
	return nil
}
