package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/hammer/pkg/graphics"
)

// UpdateEnv is the environment variable that switches MatchesFile into
// update mode.
const UpdateEnv = "HAMMER_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the traversal state, every row and the paint operations
// of the current frame.
type Snapshot struct {
	Frame      int           `json:"frame"`
	Active     int           `json:"active"`
	Direction  int           `json:"direction"`
	Animating  bool          `json:"animating"`
	Rows       []RowSnapshot `json:"rows"`
	DisplayOps []DisplayOp   `json:"displayOps,omitempty"`
}

// RowSnapshot is the animation state of one row.
type RowSnapshot struct {
	Index     int     `json:"index"`
	Progress  float64 `json:"progress"`
	Direction float64 `json:"direction"`
	Anchor    float64 `json:"anchor"`
}

// CaptureSnapshot records the view without advancing it.
func (t *ViewTester) CaptureSnapshot() *Snapshot {
	ctrl := t.view.Controller()
	chain := ctrl.Chain()
	snap := &Snapshot{
		Frame:     t.frames,
		Active:    ctrl.Active(),
		Direction: ctrl.Direction(),
		Animating: t.view.IsAnimating(),
		Rows:      make([]RowSnapshot, chain.Len()),
	}
	for i := range snap.Rows {
		node := chain.Node(i)
		snap.Rows[i] = RowSnapshot{
			Index:     node.Index,
			Progress:  round2(node.State.Progress),
			Direction: node.State.Direction,
			Anchor:    round2(node.State.Anchor),
		}
	}

	recorder := &graphics.PictureRecorder{}
	t.view.Paint(recorder.BeginRecording(t.canvas.Size()))
	snap.DisplayOps = SerializeDisplayList(recorder.EndRecording())
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When HAMMER_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff lists the lines that differ at each position.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}

	return buf.String()
}
