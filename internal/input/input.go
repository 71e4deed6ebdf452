// Package input wraps raylib's poll-based input behind a small interface so
// per-frame update routines take input as an explicit parameter and can be
// driven headless in tests.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Source is a snapshot-style view of the current frame's input.
type Source interface {
	// IsKeyDown reports whether the key is held this frame.
	IsKeyDown(key int32) bool
	// IsKeyPressed reports whether the key went down this frame.
	IsKeyPressed(key int32) bool
	// IsMouseButtonDown reports whether the mouse button is held this frame.
	IsMouseButtonDown(button rl.MouseButton) bool
	// MouseDelta returns the mouse motion accumulated since the last frame.
	MouseDelta() rl.Vector2
}

// Device reads live input from raylib.
type Device struct{}

func (Device) IsKeyDown(key int32) bool    { return rl.IsKeyDown(key) }
func (Device) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }
func (Device) IsMouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}
func (Device) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }

// Fake is a scripted input source for tests.
type Fake struct {
	Down    map[int32]bool
	Pressed map[int32]bool
	Mouse   map[rl.MouseButton]bool
	Delta   rl.Vector2
}

func NewFake() *Fake {
	return &Fake{
		Down:    make(map[int32]bool),
		Pressed: make(map[int32]bool),
		Mouse:   make(map[rl.MouseButton]bool),
	}
}

func (f *Fake) IsKeyDown(key int32) bool                     { return f.Down[key] }
func (f *Fake) IsKeyPressed(key int32) bool                  { return f.Pressed[key] }
func (f *Fake) IsMouseButtonDown(button rl.MouseButton) bool { return f.Mouse[button] }
func (f *Fake) MouseDelta() rl.Vector2                       { return f.Delta }

// Hold marks keys as held down.
func (f *Fake) Hold(keys ...int32) *Fake {
	for _, k := range keys {
		f.Down[k] = true
	}
	return f
}

// Release clears held keys.
func (f *Fake) Release(keys ...int32) *Fake {
	for _, k := range keys {
		delete(f.Down, k)
	}
	return f
}

// Press marks keys as just pressed for the current frame.
func (f *Fake) Press(keys ...int32) *Fake {
	for _, k := range keys {
		f.Pressed[k] = true
	}
	return f
}

// EndFrame clears per-frame edges (just-pressed keys and mouse delta).
func (f *Fake) EndFrame() {
	f.Pressed = make(map[int32]bool)
	f.Delta = rl.Vector2{}
}
