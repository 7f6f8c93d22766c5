package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/freecorner/pkg/graphics"
)

func paintBox(color graphics.Color, width float64) func(graphics.Canvas) {
	return func(c graphics.Canvas) {
		c.DrawRect(graphics.RectFromLTWH(0, 0, width, 20), graphics.FillPaint(color))
	}
}

func TestCapture_RecordsOps(t *testing.T) {
	snap := Capture(graphics.Size{Width: 50, Height: 20}, paintBox(graphics.ColorRed, 50))
	if snap.Size != [2]float64{50, 20} {
		t.Errorf("expected size [50 20], got %v", snap.Size)
	}
	if len(snap.DisplayOps) != 1 || snap.DisplayOps[0].Op != "drawRect" {
		t.Fatalf("expected one drawRect op, got %v", snap.DisplayOps)
	}
	if got := snap.DisplayOps[0].Params["color"]; got != "0xFFFF0000" {
		t.Errorf("expected color 0xFFFF0000, got %v", got)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	a := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed, 50))
	b := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed, 50))

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	a := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed, 50))
	b := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorGreen, 40))

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(updateEnv, "")
	snap := Capture(graphics.Size{Width: 80, Height: 40}, paintBox(graphics.ColorBlue, 80))

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "box.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	// MatchesFile should pass now
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(updateEnv, "")
	snap := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed, 50))

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, "/nonexistent/path/snap.json")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(updateEnv, "")
	first := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed, 50))

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	second := Capture(graphics.Size{Width: 999, Height: 999}, paintBox(graphics.ColorBlue, 999))

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := Capture(graphics.Size{Width: 60, Height: 30}, paintBox(graphics.ColorRed, 60))

	dir := t.TempDir()
	path := filepath.Join(dir, "update.snapshot.json")

	t.Setenv(updateEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
