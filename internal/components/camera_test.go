package components

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/engine"
)

func TestCameraUsesTransformForward(t *testing.T) {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = rl.Vector3{X: 2, Y: 3, Z: 4}
	obj.Transform.Rotation.Y = 90

	cam := NewCamera()
	obj.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	if rc.Position != obj.Transform.Position {
		t.Errorf("Expected camera at object position, got %v", rc.Position)
	}

	// Yaw 90 looks down +Z
	want := rl.Vector3{X: 2, Y: 3, Z: 5}
	if math.Abs(float64(rc.Target.X-want.X)) > 1e-4 ||
		math.Abs(float64(rc.Target.Y-want.Y)) > 1e-4 ||
		math.Abs(float64(rc.Target.Z-want.Z)) > 1e-4 {
		t.Errorf("Expected target %v, got %v", want, rc.Target)
	}
	if rc.Fovy != 45 {
		t.Errorf("Expected default FOV 45, got %v", rc.Fovy)
	}
}

func TestCameraPrefersLookProvider(t *testing.T) {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Rotation.Y = 180 // provider should win over this

	ctrl := NewCameraController()
	ctrl.Pitch = 0
	ctrl.Yaw = float32(math.Pi / 2)
	obj.AddComponent(ctrl)

	cam := NewCamera()
	obj.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	if math.Abs(float64(rc.Target.Z-1)) > 1e-4 || math.Abs(float64(rc.Target.X)) > 1e-4 {
		t.Errorf("Expected look provider direction (0,0,1), got target %v", rc.Target)
	}
}

func TestDetachedCameraIsZero(t *testing.T) {
	cam := NewCamera()
	if rc := cam.GetRaylibCamera(); rc != (rl.Camera3D{}) {
		t.Errorf("Expected zero camera without an object, got %v", rc)
	}
}
