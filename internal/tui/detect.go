package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how svgrn reports batch progress.
type Mode int

const (
	// ModePlain prints one line per document. Used for CI, pipes and redirected output.
	ModePlain Mode = iota
	// ModeInteractive renders a live progress view.
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "plain"
}

// Environment is the subset of process state mode detection looks at.
type Environment struct {
	Getenv       func(string) string
	IsTerminalFd func(fd int) bool
	Stdin        int
	Stdout       int
}

// ProcessEnvironment returns the Environment of the running process.
func ProcessEnvironment() Environment {
	return Environment{
		Getenv:       os.Getenv,
		IsTerminalFd: term.IsTerminal,
		Stdin:        int(os.Stdin.Fd()),
		Stdout:       int(os.Stdout.Fd()),
	}
}

// Detect picks the reporting mode.
//
// Plain output is selected when SVGRN_NON_INTERACTIVE=1, CI or NO_COLOR is
// set, or either stdin or stdout is not a terminal.
func (e Environment) Detect() Mode {
	if e.Getenv("SVGRN_NON_INTERACTIVE") == "1" {
		return ModePlain
	}
	if e.Getenv("CI") != "" || e.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if !e.IsTerminalFd(e.Stdin) || !e.IsTerminalFd(e.Stdout) {
		return ModePlain
	}
	return ModeInteractive
}

// DetectMode runs Detect against the current process.
func DetectMode() Mode {
	return ProcessEnvironment().Detect()
}

// IsInteractive reports whether the live progress view should be used.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
