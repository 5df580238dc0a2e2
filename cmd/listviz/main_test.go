package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "demo.yaml")
	if err := os.WriteFile(scriptPath, []byte("steps:\n  - op: insert_head\n    value: \"1\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execute(t, "replay", "--no-color",
		"--config", filepath.Join(dir, "none.toml"),
		"--prefs", filepath.Join(dir, "prefs.toml"),
		scriptPath)
	if err != nil {
		t.Fatalf("replay returned error: %v", err)
	}
	if !strings.Contains(out, "step 1: Add Head") || !strings.Contains(out, "Inserted at head") {
		t.Fatalf("replay output missing frames:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("--no-color output should not contain escape codes")
	}
}

func TestReplayCommandNeedsFile(t *testing.T) {
	if _, err := execute(t, "replay"); err == nil {
		t.Fatalf("replay without a file should fail")
	}
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table", "--no-color")
	if err != nil {
		t.Fatalf("table returned error: %v", err)
	}
	if !strings.Contains(out, "Delete from Tail") {
		t.Fatalf("table output missing rows:\n%s", out)
	}
}
