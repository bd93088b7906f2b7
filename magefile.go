//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/tessler/checkup/internal/magetasks"
)

// Default target - build the binary
var Default = Build

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

// Build builds the checkup binary
func Build() error {
	return magetasks.BuildAll()
}

// Clean removes build artifacts
func Clean() error {
	return magetasks.Clean()
}

// Test runs the test suite
func Test() error {
	return magetasks.TestAll()
}

// Race runs the test suite under the race detector
func Race() error {
	return magetasks.TestRace()
}

// Lint runs all linters
func Lint() error {
	return magetasks.LintAll()
}

// QA runs the full quality gate (lint, tests, build)
func QA() error {
	return magetasks.QualityCheck()
}

// All runs every target in sequence
func All() {
	mg.SerialDeps(Lint, Race, Build)
}
