package world

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsSceneFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"assets/scenes/default.scene.json", true},
		{"DEMO.SCENE.JSON", true},
		{"assets/scenes/default.json", false},
		{"notes.txt", false},
		{"scene.json.bak", false},
	}

	for _, c := range cases {
		if got := isSceneFile(c.path); got != c.want {
			t.Errorf("isSceneFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestWatcherReportsSceneWrites(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "demo.scene.json")
	if err := os.WriteFile(scenePath, []byte(`{"objects":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(scenePath)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Non-scene files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(scenePath, []byte(`{"objects":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != scenePath {
			t.Errorf("Expected event for %q, got %q", scenePath, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for scene write event")
	}
}
