package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mathclaw/currseed/internal/cli"
	"github.com/mathclaw/currseed/pkg/currseed"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(currseed.ExitPanic)
		}
	}()

	if os.Getenv("CURRSEED_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(currseed.ExitCodeForError(err))
	}
}
