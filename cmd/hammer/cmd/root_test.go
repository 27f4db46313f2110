package cmd

import (
	"bytes"
	stderrors "errors"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/hammer/pkg/errors"
)

// captureStdout redirects command output for the duration of a test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevDir := stdout, configDir
	stdout = &buf
	t.Cleanup(func() {
		stdout = prevOut
		configDir = prevDir
	})
	return &buf
}

func TestExecuteVersion(t *testing.T) {
	out := captureStdout(t)
	if err := execute([]string{"--version"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "hammer version "+Version) {
		t.Errorf("output = %q", out.String())
	}
}

func TestExecuteHelpListsCommands(t *testing.T) {
	out := captureStdout(t)
	if err := execute(nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, name := range []string{"render", "snapshot", "play", "config"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help output missing %q", name)
		}
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	captureStdout(t)
	err := execute([]string{"jump"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v, want unknown command", err)
	}
}

func TestExecuteConfigFlagRequiresValue(t *testing.T) {
	captureStdout(t)
	if err := execute([]string{"--config"}); err == nil {
		t.Error("expected error for --config without a value")
	}
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr string
	}{
		{
			name: "defaults",
			want: renderOptions{surfaceOptions{"hammer.gif", 225, 450}, 600, 60, 32},
		},
		{
			name: "overrides",
			args: []string{"-o", "out.gif", "--width=90", "--height", "180", "--frames", "10", "--tap-every", "0"},
			want: renderOptions{surfaceOptions{"out.gif", 90, 180}, 10, 0, 32},
		},
		{name: "unknown flag", args: []string{"--loud"}, wantErr: "unknown flag"},
		{name: "missing value", args: []string{"--frames"}, wantErr: "requires a value"},
		{name: "bad number", args: []string{"--width", "wide"}, wantErr: "non-negative integer"},
		{name: "zero frames", args: []string{"--frames", "0"}, wantErr: "--frames"},
		{name: "empty surface", args: []string{"--height", "0"}, wantErr: "at least 1x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSnapshotArgs(t *testing.T) {
	got, err := parseSnapshotArgs([]string{"--out=a.png", "--at", "40", "--scale", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := snapshotOptions{surfaceOptions{"a.png", 225, 450}, 40, 2}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if _, err := parseSnapshotArgs([]string{"--scale", "0"}); err == nil {
		t.Error("expected error for --scale 0")
	}
}

func TestParsePlayArgs(t *testing.T) {
	got, err := parsePlayArgs([]string{"--sound", "--log", "play.log"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.sound || got.logFile != "play.log" {
		t.Errorf("got %+v", got)
	}
	if _, err := parsePlayArgs([]string{"--log"}); err == nil {
		t.Error("expected error for --log without a value")
	}
}

func TestConfigCommand(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hammer.yaml"), []byte("nodes: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute([]string{"--config", dir, "config"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "# resolved from") || !strings.Contains(s, "nodes: 3") {
		t.Errorf("config output = %q", s)
	}
}

func TestConfigCommandInvalidFile(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hammer.yaml"), []byte("bars: 0\nnodes: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := execute([]string{"--config=" + dir, "config"})
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Fatalf("err = %v, want config load failure", err)
	}
	var he *errors.HammerError
	if !stderrors.As(err, &he) || he.Kind != errors.KindConfig {
		t.Errorf("err = %#v, want a KindConfig HammerError", err)
	}
}

func TestRenderCommandWritesGIF(t *testing.T) {
	captureStdout(t)
	configDir = t.TempDir()
	out := filepath.Join(t.TempDir(), "out.gif")

	if err := execute([]string{"render", "-o", out, "--width", "20", "--height", "40", "--frames", "5"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(anim.Image) != 5 {
		t.Errorf("frames = %d, want 5", len(anim.Image))
	}
}
