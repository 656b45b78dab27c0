//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName   = "localhub"
	buildDir     = "."
	cmdDir       = "./cmd/localhub"
	coverProfile = "coverage.out"
)

// Default target to run when none is specified
var Default = Build

// Build builds the localhub binary
func Build() error {
	mg.Deps(InstallDeps)
	fmt.Println("Building", binaryName, "...")

	output := filepath.Join(buildDir, binaryName)
	if err := sh.Run("go", "build", "-o", output, cmdDir); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Println("Build complete:", output)
	return nil
}

// Clean removes the binary, coverage output and leftover smoke-test hubs
func Clean() error {
	fmt.Println("Cleaning...")

	for _, path := range []string{filepath.Join(buildDir, binaryName), coverProfile} {
		if err := sh.Rm(path); err != nil {
			fmt.Printf("Warning: could not remove %s: %v\n", path, err)
		}
	}

	matches, _ := filepath.Glob(filepath.Join(os.TempDir(), "localhub-smoke-*"))
	for _, match := range matches {
		if err := os.RemoveAll(match); err != nil {
			fmt.Printf("Warning: could not remove %s: %v\n", match, err)
		}
	}

	fmt.Println("Clean complete")
	return nil
}

// Test runs all package tests
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "./...")
}

// TestRace runs the tests with the race detector
func TestRace() error {
	fmt.Println("Running tests with -race...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Cover writes a coverage profile and prints the per-function summary
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+coverProfile)
}

// Smoke builds the binary and drives it against a throwaway hub
func Smoke() error {
	mg.Deps(Build)

	dir, err := os.MkdirTemp("", "localhub-smoke-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	binary, err := filepath.Abs(filepath.Join(buildDir, binaryName))
	if err != nil {
		return err
	}
	hub := filepath.Join(dir, "hub")
	run := func(args ...string) error {
		return sh.RunV(binary, append([]string{"--hub-path", hub, "--format", "human"}, args...)...)
	}

	steps := [][]string{
		{"init"},
		{"create", "smoke"},
		{"list", "--detailed"},
		{"info", "smoke"},
		{"search", "SMO"},
		{"delete", "smoke", "--force"},
	}
	for _, step := range steps {
		if err := run(step...); err != nil {
			return fmt.Errorf("localhub %v failed: %w", step, err)
		}
	}

	fmt.Println("Smoke test passed")
	return nil
}

// Install installs localhub to GOPATH/bin using go install
func Install() error {
	mg.Deps(InstallDeps)
	fmt.Println("Installing", binaryName, "...")

	if err := sh.Run("go", "install", cmdDir); err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	gobin := os.Getenv("GOBIN")
	if gobin == "" {
		gopath := os.Getenv("GOPATH")
		if gopath == "" {
			home, _ := os.UserHomeDir()
			gopath = filepath.Join(home, "go")
		}
		gobin = filepath.Join(gopath, "bin")
	}

	fmt.Printf("Install complete: %s/%s\n", gobin, binaryName)
	return nil
}

// Fmt formats the code
func Fmt() error {
	fmt.Println("Formatting code...")
	return sh.RunV("go", "fmt", "./...")
}

// Vet runs go vet
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint when it is installed
func Lint() error {
	fmt.Println("Running linter...")

	if _, err := exec.LookPath("golangci-lint"); err != nil {
		return fmt.Errorf("golangci-lint not found in PATH\nInstall: https://golangci-lint.run/usage/install/")
	}

	return sh.RunV("golangci-lint", "run", "./...")
}

// InstallDeps ensures go.mod dependencies are downloaded
func InstallDeps() error {
	fmt.Println("Downloading dependencies...")
	return sh.Run("go", "mod", "download")
}

// Tidy cleans up go.mod and go.sum
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.Run("go", "mod", "tidy")
}

// Check runs fmt, vet and tests, then lint as a non-fatal step
func Check() error {
	mg.Deps(Fmt, Vet, Test)

	if err := Lint(); err != nil {
		fmt.Printf("Warning: Linting failed (non-fatal): %v\n", err)
	}

	fmt.Println("All checks passed!")
	return nil
}

// CI runs the checks used in continuous integration
func CI() error {
	mg.SerialDeps(InstallDeps, Vet, TestRace, Smoke)
	return nil
}
