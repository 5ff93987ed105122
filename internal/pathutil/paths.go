// Package pathutil resolves user-supplied file paths for the CLI.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths are returned cleaned and otherwise unchanged.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if strings.ContainsRune(path, '\x00') {
		return "", fmt.Errorf("path contains null byte")
	}
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return filepath.Clean(path), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// ShortenHome replaces the user's home directory prefix with "~" for
// display in logs and messages.
func ShortenHome(path string) string {
	if path == "" {
		return ""
	}
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	cleaned := filepath.Clean(path)
	if cleaned == homeDir {
		return "~"
	}
	if rel, ok := strings.CutPrefix(cleaned, homeDir+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rel
	}
	return path
}
