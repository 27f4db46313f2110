// Command hammer renders and plays the jumping hammer animation.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/hammer/cmd/hammer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
