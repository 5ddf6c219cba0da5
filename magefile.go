//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build builds the espada binary
func Build() error {
	return sh.RunV("go", "build", "-o", "espada", "./cmd/espada")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install installs espada into GOBIN
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/espada")
}
