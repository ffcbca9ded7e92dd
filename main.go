// main is the entry point for the statelog CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/statelog/cmd"
	"github.com/huangsam/statelog/core"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(core.ExitCode(err))
	}
}
