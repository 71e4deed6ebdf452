package viewer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"sceneview/internal/components"
)

type WindowConfig struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	WalkSpeed   float32           `yaml:"walk_speed"`
	RunSpeed    float32           `yaml:"run_speed"`
	Friction    float32           `yaml:"friction"`
	Sensitivity float32           `yaml:"sensitivity"`
	Bindings    map[string]string `yaml:"bindings"`
}

type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Watch  bool         `yaml:"watch"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "sceneview",
		},
		Watch: true,
	}
}

// LoadConfig reads an optional YAML config. A missing file yields defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("config %s: window size must be positive", path)
	}
	return cfg, nil
}

// ApplyTo overrides controller defaults with configured values. Zero-valued
// settings keep the controller's defaults.
func (c CameraConfig) ApplyTo(ctrl *components.CameraController) error {
	if c.WalkSpeed > 0 {
		ctrl.WalkSpeed = c.WalkSpeed
	}
	if c.RunSpeed > 0 {
		ctrl.RunSpeed = c.RunSpeed
	}
	if c.Friction > 0 {
		ctrl.Friction = c.Friction
	}
	if c.Sensitivity > 0 {
		ctrl.Sensitivity = c.Sensitivity
	}

	for action, keyName := range c.Bindings {
		key, ok := KeyByName(keyName)
		if !ok {
			return fmt.Errorf("camera binding %s: unknown key %q", action, keyName)
		}
		switch action {
		case "forward":
			ctrl.KeyForward = key
		case "back":
			ctrl.KeyBack = key
		case "left":
			ctrl.KeyLeft = key
		case "right":
			ctrl.KeyRight = key
		case "up":
			ctrl.KeyUp = key
		case "down":
			ctrl.KeyDown = key
		case "run":
			ctrl.KeyRun = key
		case "toggle_look":
			ctrl.KeyToggleLook = key
		default:
			return fmt.Errorf("unknown camera binding %q", action)
		}
	}
	return nil
}

var keyByName = map[string]int32{
	"Space":        rl.KeySpace,
	"Tab":          rl.KeyTab,
	"Enter":        rl.KeyEnter,
	"LeftShift":    rl.KeyLeftShift,
	"RightShift":   rl.KeyRightShift,
	"LeftControl":  rl.KeyLeftControl,
	"RightControl": rl.KeyRightControl,
	"LeftAlt":      rl.KeyLeftAlt,
	"RightAlt":     rl.KeyRightAlt,
	"Up":           rl.KeyUp,
	"Down":         rl.KeyDown,
	"Left":         rl.KeyLeft,
	"Right":        rl.KeyRight,
}

func init() {
	// Letter and digit keys share their ASCII codes.
	for c := 'A'; c <= 'Z'; c++ {
		keyByName[string(c)] = int32(c)
	}
	for c := '0'; c <= '9'; c++ {
		keyByName[string(c)] = int32(c)
	}
}

// KeyByName resolves a config key name ("W", "LeftShift", ...) to a key code.
func KeyByName(name string) (int32, bool) {
	key, ok := keyByName[name]
	return key, ok
}
