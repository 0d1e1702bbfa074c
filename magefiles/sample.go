package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Sample builds the CLI and generates study material from the built-in
// sample passage with a fixed seed.
func Sample() error {
	mg.Deps(Build)
	fmt.Println("[sample] Generating from the built-in passage.")
	return sh.RunV(filepath.Join(binDir, binName), "generate", "--sample", "--seed", "42")
}

// Batch builds the CLI and processes every file in input/ into output/.
func Batch() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "batch", "--input-dir", "input", "--output-dir", "output")
}
