// Command graphstudio edits, converts and animates graphs from the terminal
// and serves the algorithm API used by the browser editor.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		bad.Fprintf(os.Stderr, "graphstudio: %v\n", err)
		os.Exit(1)
	}
}
