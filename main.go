// docseal seals document files with a two-stage byte cipher and unseals them
// again.
package main

import (
	"fmt"
	"os"

	"github.com/docseal/docseal/internal/commands"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
