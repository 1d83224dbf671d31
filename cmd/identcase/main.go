// Command identcase converts identifiers between naming conventions.
package main

import (
	"os"

	"github.com/erraggy/identcase/cmd/identcase/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
