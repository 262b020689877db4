// Command hierarchy-remapper copies avatar setup between object trees of a
// scene document and remaps their references.
package main

import (
	"os"

	"hierarchy-remapper/internal/cli"
)

// Set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
