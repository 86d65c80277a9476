// Command socialgraph loads a social network dataset and runs traversals,
// shortest paths, centrality, colouring and component analysis on it, either
// one-shot from the command line or behind an HTTP API (serve).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
