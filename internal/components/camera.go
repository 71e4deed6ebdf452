package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/engine"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active viewer camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

// GetRaylibCamera builds the raylib camera for this frame. A LookProvider on
// the same object wins over the transform's Euler angles.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()

	var lookDir rl.Vector3
	if lp := engine.FindComponent[engine.LookProvider](g); lp != nil {
		x, y, z := lp.GetLookDirection()
		lookDir = rl.Vector3{X: x, Y: y, Z: z}
	} else {
		lookDir = g.Transform.Forward()
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, lookDir),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
