package main

// Front end for the Kaleido toy language: a tokenizer and parser with an
// interactive read loop. Parsed forms are reported, not evaluated.

import (
	"os"

	"github.com/kaleido-lang/kaleido/cmd/kaleido/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
