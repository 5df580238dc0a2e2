package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func replayOpts(t *testing.T, scriptBody string) (ReplayOptions, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	return ReplayOptions{
		Options: Options{
			ConfigPath: filepath.Join(dir, "missing.toml"),
			PrefsPath:  filepath.Join(dir, "prefs.toml"),
		},
		ScriptPath: writeFile(t, dir, "script.yaml", scriptBody),
		Width:      100,
		Out:        &out,
	}, &out
}

func frames(out string) []string {
	parts := strings.Split(ansi.Strip(out), "=== ")
	return parts[1:]
}

func TestReplay_VirtualClockFiresDueTasks(t *testing.T) {
	opts, out := replayOpts(t, `
steps:
  - op: insert_tail
    value: "10"
  - op: delete_head
    wait: 2s
  - op: insert_head
    value: "5"
`)
	if err := Replay(context.Background(), opts); err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}

	got := frames(out.String())
	if len(got) != 5 {
		t.Fatalf("frames = %d, want 5:\n%s", len(got), out.String())
	}
	if !strings.HasPrefix(got[2], "t=1.000s  task fired: Delete Head") {
		t.Fatalf("third frame should be the delete commit, got:\n%s", got[2])
	}
	if !strings.Contains(got[2], "Deleted from head") || !strings.Contains(got[2], "Empty List") {
		t.Fatalf("commit frame should show the empty list:\n%s", got[2])
	}
	if !strings.HasPrefix(got[4], "t=3.500s") {
		t.Fatalf("last frame should be the insert highlight clearing at 3.5s, got:\n%s", got[4])
	}
	if !strings.Contains(got[4], "Idle") {
		t.Fatalf("last frame should be idle:\n%s", got[4])
	}
}

func TestReplay_OverlapCommitsAgainstCapturedList(t *testing.T) {
	opts, out := replayOpts(t, `
policy: overlap
steps:
  - op: insert_tail
    value: "10"
  - op: delete_head
  - op: insert_head
    value: "5"
`)
	if err := Replay(context.Background(), opts); err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}

	got := frames(out.String())
	last := got[len(got)-1]
	if !strings.Contains(last, "Empty List") {
		t.Fatalf("overlapping delete should drop the later insert:\n%s", last)
	}
	if !strings.Contains(out.String(), "Policy: overlap") {
		t.Fatalf("header should show the script policy")
	}
}

func TestReplay_IgnoredStep(t *testing.T) {
	opts, out := replayOpts(t, `
steps:
  - op: delete_head
`)
	if err := Replay(context.Background(), opts); err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}
	if !strings.Contains(out.String(), "step 1: Delete Head (ignored)") {
		t.Fatalf("ignored step should be captioned:\n%s", out.String())
	}
}

func TestReplay_Realtime(t *testing.T) {
	opts, out := replayOpts(t, `
steps:
  - op: insert_tail
    value: "a"
    wait: 20ms
  - op: delete_tail
`)
	opts.ConfigPath = writeFile(t, t.TempDir(), "config.toml", `
insert_highlight_ms = 5
delete_delay_ms = 5
search_highlight_ms = 5
`)
	opts.Realtime = true

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Replay(ctx, opts); err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}

	text := ansi.Strip(out.String())
	for _, want := range []string{"step 1: Add Tail", "step 2: Delete Tail", "Deleted from tail"} {
		if !strings.Contains(text, want) {
			t.Fatalf("realtime replay missing %q:\n%s", want, text)
		}
	}
}

func TestReplay_Errors(t *testing.T) {
	opts, _ := replayOpts(t, "steps: []\n")
	if err := Replay(context.Background(), opts); err == nil || !strings.Contains(err.Error(), "no steps") {
		t.Fatalf("Replay error = %v, want no steps", err)
	}

	opts, _ = replayOpts(t, "steps:\n  - op: search\n")
	opts.ConfigPath = writeFile(t, t.TempDir(), "config.toml", `overlap_policy = "later"`)
	if err := Replay(context.Background(), opts); err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Replay error = %v, want load config", err)
	}
}

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	if err := PrintTable(&out, TableOptions{Style: "notty", Width: 120}); err != nil {
		t.Fatalf("PrintTable returned error: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Operation Complexities", "Insert at Head", "Requires traversal to position"} {
		if !strings.Contains(text, want) {
			t.Fatalf("PrintTable missing %q:\n%s", want, text)
		}
	}
}

func TestPrintLogs(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "listviz.log")
	cfgPath := writeFile(t, dir, "config.toml", "log_file = \""+filepath.ToSlash(logPath)+"\"\nlog_level = \"debug\"\n")

	// A replay with logging enabled leaves entries behind.
	opts, _ := replayOpts(t, "steps:\n  - op: insert_head\n    value: \"1\"\n")
	opts.ConfigPath = cfgPath
	if err := Replay(context.Background(), opts); err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}

	var out bytes.Buffer
	if err := PrintLogs(&out, LogsOptions{Options: Options{ConfigPath: cfgPath}, NoColor: true}); err != nil {
		t.Fatalf("PrintLogs returned error: %v", err)
	}
	if !strings.Contains(out.String(), "replay started") {
		t.Fatalf("PrintLogs missing replay entry:\n%s", out.String())
	}

	missing := Options{ConfigPath: filepath.Join(dir, "none.toml")}
	if err := PrintLogs(&out, LogsOptions{Options: missing}); !errors.Is(err, ErrLoggingDisabled) {
		t.Fatalf("PrintLogs error = %v, want ErrLoggingDisabled", err)
	}
}
