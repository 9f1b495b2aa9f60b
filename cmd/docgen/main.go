// Package main generates API reference pages for the adaptive module.
// It shells out to go doc for each public package and writes the output
// as Markdown under docs/api/, plus an index page listing every package.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// Package represents a Go package to document.
type Package struct {
	Name  string
	Path  string
	Short string
}

// Packages to document (public-facing), in order.
var packages = []Package{
	{Name: "animation", Path: "pkg/animation", Short: "Timed and spring animation drivers, easing functions, and the frame clock."},
	{Name: "motion", Path: "pkg/motion", Short: "Named motion presets loaded from YAML themes."},
	{Name: "widgets", Path: "pkg/widgets", Short: "Adaptive containers that animate size, page, and scroll changes."},
	{Name: "geometry", Path: "pkg/geometry", Short: "Axes, points, and rectangles shared by the widget layer."},
	{Name: "animtest", Path: "pkg/animtest", Short: "Deterministic clock and recording helpers for animation tests."},
	{Name: "errors", Path: "pkg/errors", Short: "Structured diagnostics for misuse, bad arguments, and convergence failures."},
}

func main() {
	// Find repository root (where go.mod is)
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Repository root: %s\n", root)

	modPath, err := readModulePath(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading module path: %v\n", err)
		os.Exit(1)
	}

	apiDir := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating api directory: %v\n", err)
		os.Exit(1)
	}

	// Generate API docs for each package
	for _, pkg := range packages {
		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		if err := generatePackageDocs(root, modPath, pkg, apiDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating docs for %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
	}

	if err := writeIndex(modPath, apiDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing index: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nDocumentation generated successfully!")
}

func findRepoRoot() (string, error) {
	// Start from current directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

// readModulePath returns the module path declared in the root go.mod.
func readModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", err
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("no module declaration in go.mod")
	}
	return path, nil
}

func generatePackageDocs(root, modPath string, pkg Package, apiDir string) error {
	importPath := modPath + "/" + pkg.Path
	if err := module.CheckImportPath(importPath); err != nil {
		return err
	}

	cmd := exec.Command("go", "doc", "-all", "./"+pkg.Path)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("go doc: %s", strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("go doc: %w", err)
	}

	body := strings.TrimRight(stdout.String(), "\n")
	if body == "" {
		return fmt.Errorf("go doc produced no output")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", pkg.Name)
	fmt.Fprintf(&buf, "    import \"%s\"\n\n", importPath)
	fmt.Fprintf(&buf, "%s\n\n", pkg.Short)
	fmt.Fprintf(&buf, "```text\n%s\n```\n", body)

	outputPath := filepath.Join(apiDir, pkg.Name+".md")
	return os.WriteFile(outputPath, buf.Bytes(), 0644)
}

// writeIndex writes the API reference index with one row per package.
func writeIndex(modPath, apiDir string) error {
	var buf bytes.Buffer
	buf.WriteString("# API Reference\n\n")
	buf.WriteString("Generated from Go source. Regenerate with:\n\n")
	buf.WriteString("    go run ./cmd/docgen\n\n")
	buf.WriteString("| Package | Import path | Description |\n")
	buf.WriteString("| --- | --- | --- |\n")
	for _, pkg := range packages {
		fmt.Fprintf(&buf, "| [%s](%s.md) | `%s/%s` | %s |\n", pkg.Name, pkg.Name, modPath, pkg.Path, pkg.Short)
	}
	return os.WriteFile(filepath.Join(apiDir, "index.md"), buf.Bytes(), 0644)
}
