package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// testCatalog fails every part every year so costs are exact.
const testCatalog = `
products:
  - name: Modular
    initial_cost: 1500
    strategy: independent
    components:
      - name: CPU
        failure_probs: [1.0]
        repair_cost: 300
  - name: Sealed
    initial_cost: 2000
    strategy: whole_unit
    components:
      - name: Logic board
        failure_probs: [1.0]
        replace_entire_product: true
`

// isolateHome points HOME at a temp directory so tests never read or write
// the real ~/.repaircost/.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0700); err != nil {
		t.Fatalf("Failed to create temp home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

// writeTestCatalog writes testCatalog and returns its path.
func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0600); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmdHasSubcommands(t *testing.T) {
	want := []string{"version", "simulate", "sweep", "trace", "catalog", "runs", "summarize", "config"}
	rootCmd := newRootCmd()
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

func TestRootCmdPersistentFlags(t *testing.T) {
	rootCmd := newRootCmd()
	for _, name := range []string{"json", "config", "catalog", "log-level", "log-format"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
}

func TestSignalContextCancel(t *testing.T) {
	ctx, cancel := signalContext(context.Background())
	cancel()
	select {
	case <-ctx.Done():
	default:
		t.Error("context not cancelled")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	isolateHome(t)
	if _, err := execute(t, "catalog", "list", "--log-level", "loud"); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestConfigFileMissing(t *testing.T) {
	isolateHome(t)
	_, err := execute(t, "config", "show", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing --config file")
	}
}
