package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/svgrn/internal/cli"
	"github.com/vvka-141/svgrn/pkg/svgrn"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(svgrn.ExitPanic)
		}
	}()

	if os.Getenv("SVGRN_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(svgrn.ExitCodeForError(err))
	}
}
