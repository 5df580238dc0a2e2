package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/listviz/internal/visualizer"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.DeleteDelay != time.Second {
		t.Fatalf("DeleteDelay = %v, want 1s", cfg.DeleteDelay)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want logging disabled", cfg.LogFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
insert_highlight_ms = 300
delete_delay_ms = 250
search_highlight_ms = 400
overlap_policy = "  Flush "
log_file = "  ~/.local/state/listviz/listviz.log  "
log_level = " DEBUG "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.InsertHighlight != 300*time.Millisecond {
		t.Fatalf("InsertHighlight = %v, want 300ms", cfg.InsertHighlight)
	}
	if cfg.DeleteDelay != 250*time.Millisecond {
		t.Fatalf("DeleteDelay = %v, want 250ms", cfg.DeleteDelay)
	}
	if cfg.SearchHighlight != 400*time.Millisecond {
		t.Fatalf("SearchHighlight = %v, want 400ms", cfg.SearchHighlight)
	}
	if cfg.OverlapPolicy != visualizer.PolicyFlush {
		t.Fatalf("OverlapPolicy = %v, want flush", cfg.OverlapPolicy)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_ZeroValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
delete_delay_ms = 0
overlap_policy = ""
log_level = "   "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"invalid toml", `delete_delay_ms = [`, "parse config"},
		{"negative delay", `delete_delay_ms = -5`, "delete_delay_ms must not be negative"},
		{"unknown policy", `overlap_policy = "queue"`, "overlap_policy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestTiming_CarriesDelays(t *testing.T) {
	cfg := Default()
	cfg.SearchHighlight = 5 * time.Millisecond

	got := cfg.Timing()
	if got.SearchHighlight != 5*time.Millisecond {
		t.Fatalf("SearchHighlight = %v, want 5ms", got.SearchHighlight)
	}
	if got.InsertHighlight != visualizer.DefaultInsertHighlight {
		t.Fatalf("InsertHighlight = %v, want %v", got.InsertHighlight, visualizer.DefaultInsertHighlight)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
