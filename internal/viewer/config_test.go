package viewer

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/components"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Missing config should not error, got %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("Expected default window 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Watch {
		t.Error("Watching should default to on")
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sceneview.yaml")
	content := `window:
  width: 1920
  height: 1080
  title: demo
camera:
  walk_speed: 8
  bindings:
    forward: Up
watch: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("Expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "demo" {
		t.Errorf("Expected title 'demo', got %q", cfg.Window.Title)
	}
	if cfg.Camera.WalkSpeed != 8 {
		t.Errorf("Expected walk speed 8, got %v", cfg.Camera.WalkSpeed)
	}
	if cfg.Camera.Bindings["forward"] != "Up" {
		t.Errorf("Expected forward binding 'Up', got %q", cfg.Camera.Bindings["forward"])
	}
	if cfg.Watch {
		t.Error("Expected watch disabled")
	}
}

func TestLoadConfigRejectsBadWindowSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sceneview.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: -1\n  height: 720\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for non-positive window size")
	}
}

func TestCameraConfigApplyTo(t *testing.T) {
	ctrl := components.NewCameraController()
	cfg := CameraConfig{
		WalkSpeed: 8,
		Bindings: map[string]string{
			"forward":     "Up",
			"run":         "Space",
			"toggle_look": "T",
		},
	}

	if err := cfg.ApplyTo(ctrl); err != nil {
		t.Fatalf("ApplyTo failed: %v", err)
	}

	if ctrl.WalkSpeed != 8 {
		t.Errorf("Expected walk speed 8, got %v", ctrl.WalkSpeed)
	}
	if ctrl.RunSpeed != 15 {
		t.Errorf("Zero-valued run speed should keep the default, got %v", ctrl.RunSpeed)
	}
	if ctrl.KeyForward != rl.KeyUp {
		t.Errorf("Expected forward bound to Up, got %v", ctrl.KeyForward)
	}
	if ctrl.KeyRun != rl.KeySpace {
		t.Errorf("Expected run bound to Space, got %v", ctrl.KeyRun)
	}
	if ctrl.KeyToggleLook != rl.KeyT {
		t.Errorf("Expected toggle_look bound to T, got %v", ctrl.KeyToggleLook)
	}
	if ctrl.KeyBack != rl.KeyS {
		t.Errorf("Unbound actions should keep defaults, got %v", ctrl.KeyBack)
	}
}

func TestCameraConfigRejectsUnknownKey(t *testing.T) {
	ctrl := components.NewCameraController()
	cfg := CameraConfig{Bindings: map[string]string{"forward": "NotAKey"}}

	if err := cfg.ApplyTo(ctrl); err == nil {
		t.Error("Expected error for unknown key name")
	}
}

func TestCameraConfigRejectsUnknownAction(t *testing.T) {
	ctrl := components.NewCameraController()
	cfg := CameraConfig{Bindings: map[string]string{"strafe": "W"}}

	if err := cfg.ApplyTo(ctrl); err == nil {
		t.Error("Expected error for unknown binding action")
	}
}

func TestKeyByName(t *testing.T) {
	if key, ok := KeyByName("W"); !ok || key != rl.KeyW {
		t.Errorf("Expected W -> %v, got %v (%v)", rl.KeyW, key, ok)
	}
	if key, ok := KeyByName("5"); !ok || key != rl.KeyFive {
		t.Errorf("Expected 5 -> %v, got %v (%v)", rl.KeyFive, key, ok)
	}
	if key, ok := KeyByName("LeftShift"); !ok || key != rl.KeyLeftShift {
		t.Errorf("Expected LeftShift -> %v, got %v (%v)", rl.KeyLeftShift, key, ok)
	}
	if _, ok := KeyByName("w"); ok {
		t.Error("Key names are case-sensitive, lowercase should not resolve")
	}
}
