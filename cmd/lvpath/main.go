// Command lvpath runs grid A* searches from YAML scenarios or the built-in demo.
//
//	lvpath demo --heuristic manhattan
//	lvpath find --scenario maps/harbour.yaml --verbose
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvpath:", err)
		os.Exit(1)
	}
}
