// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command typo translates Typogenetics strands into enzymes and runs them.
package main

import (
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
