package svgrn

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All documents converted (or already up to date)
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or .svgrn.yaml
	ExitConversionFailed = 11 // At least one document failed to convert
	ExitOutputConflict   = 12 // Output exists and --force was not given
	ExitSourceNotFound   = 13 // Source file or directory does not exist
)

const (
	// DefaultDimension is used for root width/height when neither the
	// attribute nor a viewBox is present.
	DefaultDimension = "50px"

	// DefaultComponentName names the component when converting a single file
	// without an explicit name argument.
	DefaultComponentName = "MyComponent"

	// SourceExtension is the extension of files picked up by directory scans.
	SourceExtension = ".svg"

	// OutputExtension is the extension of generated component files.
	OutputExtension = ".tsx"

	// ProjectConfigFileName is the optional per-project configuration file.
	ProjectConfigFileName = ".svgrn.yaml"
)
