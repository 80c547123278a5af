//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the test suite
var Default = Test

// Build compiles every package in the module.
func Build() error {
	return sh.RunV("go", "build", "./...")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs all quality assurance checks.
func QA() error {
	mg.SerialDeps(Vet, Test)

	if err := sh.RunV("staticcheck", "./..."); err != nil {
		fmt.Println("⚠️  Staticcheck failed (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
