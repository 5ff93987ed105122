package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHomeDir(t *testing.T) {
	got, err := HomeDir()
	if err != nil {
		t.Fatalf("HomeDir() error = %v", err)
	}
	if !strings.HasSuffix(got, ".repaircost") {
		t.Errorf("HomeDir() = %v, should end with .repaircost", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("HomeDir() = %v, should be absolute", got)
	}
	homeDir, _ := os.UserHomeDir()
	if !strings.HasPrefix(got, homeDir) {
		t.Errorf("HomeDir() = %v, should start with %v", got, homeDir)
	}
}

func TestDefaultPath(t *testing.T) {
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if filepath.Base(got) != "reports.db" {
		t.Errorf("DefaultPath() = %v, want reports.db file", got)
	}
}
