// Package pathutil holds small path helpers shared by the CLI.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading ~ against the user's home directory and makes
// relative paths absolute.
func Expand(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	if !filepath.IsAbs(path) {
		return filepath.Abs(path)
	}
	return path, nil
}
