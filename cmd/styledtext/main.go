// Command styledtext flattens and measures styled text fixtures from
// the command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/styledtext/cmd/styledtext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
