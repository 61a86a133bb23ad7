// Command elements renders element compositions and manages themes.
package main

import (
	"os"

	"github.com/go-drift/elements/cmd/elements/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
