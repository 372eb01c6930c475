// Command y2022 solves Advent of Code 2022.
package main

import (
	"embed"
	"os"

	aoc "github.com/maisem/aoc2022"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// The solver sources double as the sample store: each part's doc comment
// holds its sample answer and input.
//
//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
