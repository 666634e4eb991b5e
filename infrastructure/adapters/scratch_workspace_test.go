package adapters

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScratchWorkspace_CreateAndRemove(t *testing.T) {
	base := t.TempDir()
	workspace := NewScratchWorkspace(nopLogger{}, base)

	dir, err := workspace.Create("run-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(dir) != "story-video-run-42" {
		t.Fatalf("unexpected run directory name: %q", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("run directory must exist: %v", err)
	}

	if err := workspace.Remove(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("run directory must be gone after Remove")
	}
}

func TestScratchWorkspace_RefusesForeignDirectories(t *testing.T) {
	base := t.TempDir()
	workspace := NewScratchWorkspace(nopLogger{}, base)

	foreign := filepath.Join(base, "not-ours")
	if err := os.Mkdir(foreign, 0755); err != nil {
		t.Fatal(err)
	}

	if err := workspace.Remove(foreign); err == nil {
		t.Fatal("expected a refusal for a directory outside the run namespace")
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Fatal("the foreign directory must be untouched")
	}
}
