package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/mod/modfile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Print version information",
		Long:  "Print the adaptive version, build time, and Go runtime details.",
		Usage: "adaptive version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	fmt.Printf("adaptive %s (built %s)\n", Version, BuildTime)
	fmt.Printf("go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if path, err := modulePath(); err == nil {
		fmt.Printf("module %s\n", path)
	}
	return nil
}

// modulePath reads the enclosing module's path from go.mod, walking up
// from the working directory.
func modulePath() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			if path := modfile.ModulePath(data); path != "" {
				return path, nil
			}
			return "", fmt.Errorf("no module path in %s", filepath.Join(dir, "go.mod"))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not inside a Go module")
		}
		dir = parent
	}
}
