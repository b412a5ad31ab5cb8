package game

import (
	"os"
	"path/filepath"
	"testing"
)

// writeManifest drops a resource manifest into a temp dir and loads it.
func writeManifest(t *testing.T, yaml string) *ResourceManager {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "resources.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	rm := NewResourceManager()
	if err := rm.LoadResourceConfig(path); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	return rm
}

const testManifest = `
version: "1.0"
base_path: assets
groups:
  select:
    fonts:
      - id: FONT_TITLE
        path: fonts/title.ttf
    images:
      - id: IMAGE_A
        path: images/a.png
      - id: IMAGE_B
        path: images/b.png
      - id: IMAGE_C
        path: images/c.png
  empty: {}
`

// TestBeginGroupLoad verifies group resolution and the error paths.
func TestBeginGroupLoad(t *testing.T) {
	rm := writeManifest(t, testManifest)

	gl, err := rm.BeginGroupLoad("select")
	if err != nil {
		t.Fatalf("BeginGroupLoad(select) failed: %v", err)
	}
	if gl.Remaining() != 4 {
		t.Errorf("Remaining = %d, want 4", gl.Remaining())
	}
	if gl.Done() {
		t.Error("fresh load reports done")
	}

	if _, err := rm.BeginGroupLoad("gameplay"); err == nil {
		t.Error("BeginGroupLoad with unknown group did not fail")
	}

	bare := NewResourceManager()
	if _, err := bare.BeginGroupLoad("select"); err == nil {
		t.Error("BeginGroupLoad without a manifest did not fail")
	}
}

// TestGroupLoadProgress verifies progress is monotonic per-file and lands on
// exactly 1.0. The manifest's files do not exist on disk; failed loads are
// skipped but still count, so the bar can never stall.
func TestGroupLoadProgress(t *testing.T) {
	rm := writeManifest(t, testManifest)
	gl, err := rm.BeginGroupLoad("select")
	if err != nil {
		t.Fatalf("BeginGroupLoad failed: %v", err)
	}

	prev := gl.Progress()
	if prev != 0 {
		t.Errorf("initial progress = %v, want 0", prev)
	}

	for i := 0; !gl.Done(); i++ {
		if i > 10 {
			t.Fatal("load did not finish")
		}
		gl.Step()
		p := gl.Progress()
		if p < prev {
			t.Fatalf("progress went backwards: %v -> %v", prev, p)
		}
		if gl.LastFile() == "" {
			t.Error("LastFile empty after a Step")
		}
		prev = p
	}

	if gl.Progress() != 1.0 {
		t.Errorf("final progress = %v, want exactly 1.0", gl.Progress())
	}

	// Stepping a finished load is a no-op.
	gl.Step()
	if gl.Progress() != 1.0 || gl.Remaining() != 0 {
		t.Error("Step on a finished load changed state")
	}
}

// TestGroupLoadEmptyGroup verifies an empty group is complete immediately.
func TestGroupLoadEmptyGroup(t *testing.T) {
	rm := writeManifest(t, testManifest)
	gl, err := rm.BeginGroupLoad("empty")
	if err != nil {
		t.Fatalf("BeginGroupLoad(empty) failed: %v", err)
	}

	if !gl.Done() {
		t.Error("empty group not done immediately")
	}
	if gl.Progress() != 1.0 {
		t.Errorf("empty group progress = %v, want 1.0", gl.Progress())
	}
}
