// Package main is the entry point for the hclust CLI.
//
// Usage:
//
//	hclust [flags] <command> [args]
//
// Commands:
//
//	run   - cluster a distance/similarity table or a point set read from a file
//	demo  - cluster seeded Gaussian blobs
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hclust/cmd/hclust/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
