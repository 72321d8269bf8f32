// main is the entry point for the safetylens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/bayviewlabs/safetylens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
