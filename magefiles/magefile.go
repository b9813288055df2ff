//go:build mage

// Package main contains Mage build targets for webpbatch developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "webpbatch"
	cmdPkg  = "./cmd/webpbatch"

	// artworkDir is the default conversion directory the CLI expects.
	artworkDir = "official-artwork"
)

// Init creates the default artwork directory.
func Init() error {
	if err := os.MkdirAll(artworkDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", artworkDir, err)
	}
	fmt.Println("  ", artworkDir)
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test builds the binary and runs the full test suite.
func Test() error {
	mg.Deps(Build)
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		isTest := filepath.Ext(path) == ".go" && len(path) > 8 && path[len(path)-8:] == "_test.go"
		isGo := filepath.Ext(path) == ".go"
		if !isGo {
			return nil
		}
		if testOnly && !isTest {
			return nil
		}
		if !testOnly && isTest {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range splitLines(data) {
			if len(line) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}

// splitLines splits data by newline, returning each line as a trimmed string.
func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			line := trimSpace(data[start:i])
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(data) {
		line := trimSpace(data[start:])
		lines = append(lines, line)
	}
	return lines
}

// trimSpace returns a string with leading and trailing whitespace removed.
func trimSpace(b []byte) string {
	start, end := 0, len(b)
	for start < end && (b[start] == ' ' || b[start] == '\t' || b[start] == '\r') {
		start++
	}
	for end > start && (b[end-1] == ' ' || b[end-1] == '\t' || b[end-1] == '\r') {
		end--
	}
	return string(b[start:end])
}
