//go:build mage

package main

import (
	"fmt"
	"log"

	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified.
// Usage: mage
var Default = Test

// Build compiles the module and the demo CLI.
func Build() error {
	fmt.Println("Building...")
	if err := sh.RunV("go", "build", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "vet", "./...")
}

// Test runs the reactive package's test suite with the race detector on,
// since the runtime's per-goroutine execution stack is exactly the kind of
// state a race detector is built to catch misuse of.
// Usage: mage test
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-v", "-race", "./...")
}

// Bench runs the demo CLI's scripted signal-write benchmark.
func Bench() error {
	fmt.Println("Running bench scenario...")
	return sh.RunV("go", "run", "./cmd/reactive-demo", "bench", "--writes", "10000")
}

// Fmt runs go fmt on the module.
func Fmt() error {
	fmt.Println("Formatting...")
	return sh.RunV("go", "fmt", "./...")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// All runs formatting, build, and tests; a reasonable pre-push gate.
func All() error {
	fmt.Println("Running all checks...")
	steps := []func() error{Fmt, Tidy, Build, Test}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// CI is a stricter pipeline entrypoint; logs failure early.
func CI() {
	if err := All(); err != nil {
		log.Fatalf("CI failed: %v", err)
	}
}
