// Package filex contains small filesystem helpers for the app's durable
// storage area.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory at path (and any parents) if it does not
// exist and returns its absolute form.
func EnsureDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// EnsureSubDir creates (if needed) and returns the absolute path of a
// directory named dirName under root.
func EnsureSubDir(root, dirName string) (string, error) {
	return EnsureDir(filepath.Join(root, dirName))
}
