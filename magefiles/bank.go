//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Bank builds the CLI and regenerates questionBank.json from the source
// documents in the working directory.
func Bank() error {
	mg.Deps(Build)
	if err := sh.RunV(binPath(), "build"); err != nil {
		return fmt.Errorf("building question bank: %w", err)
	}
	return sh.RunV(binPath(), "summary")
}

// Index loads questionBank.json into the SQLite question store.
func Index() error {
	mg.Deps(Bank)
	return sh.RunV(binPath(), "store", "ingest")
}
