package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvandessel/repaircost/internal/constants"
)

// HomeDir returns the per-user data directory.
// On Unix: ~/.repaircost
// On Windows: %USERPROFILE%\.repaircost
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, constants.DataDirName), nil
}

// DefaultPath returns the report database used when no path is given.
func DefaultPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ReportDBName), nil
}
