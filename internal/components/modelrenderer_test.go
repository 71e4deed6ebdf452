package components

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/engine"
)

func TestSetCullRadiusFromSize(t *testing.T) {
	m := NewModelRenderer(rl.Model{}, rl.Orange)
	m.SetCullRadiusFromSize(2, 2, 2)

	want := math.Sqrt(12) / 2
	if math.Abs(float64(m.CullRadius)-want) > 1e-5 {
		t.Errorf("Expected cull radius %v, got %v", want, m.CullRadius)
	}
}

func TestBoundingSphereFollowsTransform(t *testing.T) {
	obj := engine.NewGameObject("Cube")
	obj.Transform.Position = rl.Vector3{X: 5, Y: 1, Z: -2}
	obj.Transform.Scale = rl.Vector3{X: 2, Y: 1, Z: 1}

	m := NewModelRenderer(rl.Model{}, rl.Orange)
	m.CullRadius = 3
	obj.AddComponent(m)

	center, radius, ok := m.BoundingSphere()
	if !ok {
		t.Fatal("Expected a culling sphere when CullRadius is set")
	}
	if center != obj.Transform.Position {
		t.Errorf("Expected center at object position, got %v", center)
	}
	// The largest scale axis keeps the sphere conservative.
	if radius != 6 {
		t.Errorf("Expected radius 6, got %v", radius)
	}
}

func TestBoundingSphereDisabled(t *testing.T) {
	obj := engine.NewGameObject("Floor")
	m := NewModelRenderer(rl.Model{}, rl.LightGray)
	obj.AddComponent(m)

	if _, _, ok := m.BoundingSphere(); ok {
		t.Error("Zero cull radius should disable culling")
	}

	detached := NewModelRenderer(rl.Model{}, rl.LightGray)
	detached.CullRadius = 1
	if _, _, ok := detached.BoundingSphere(); ok {
		t.Error("Renderer without an object should disable culling")
	}
}
