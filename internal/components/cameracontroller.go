package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/engine"
	"sceneview/internal/input"
)

// Pitch stays just inside +-90 degrees so the view never flips over the pole.
const pitchLimit = float32(0.99 * math.Pi / 2)

// CameraController is a free-fly camera controller: instant acceleration to
// walk or run speed while a movement key is held, exponential friction decay
// otherwise, and mouse-look while the look button is held or the latch key
// has been toggled on.
type CameraController struct {
	engine.BaseComponent

	Enabled     bool
	Sensitivity float32

	KeyForward    int32
	KeyBack       int32
	KeyLeft       int32
	KeyRight      int32
	KeyUp         int32
	KeyDown       int32
	KeyRun        int32
	KeyToggleLook int32
	LookButton    rl.MouseButton

	WalkSpeed float32
	RunSpeed  float32
	Friction  float32 // velocity kept per zero-input frame is (1 - Friction)

	Pitch    float32 // radians
	Yaw      float32 // radians
	Velocity rl.Vector3

	initialized bool
	lookLatched bool
}

func NewCameraController() *CameraController {
	return &CameraController{
		Enabled:       true,
		Sensitivity:   0.5,
		KeyForward:    rl.KeyW,
		KeyBack:       rl.KeyS,
		KeyLeft:       rl.KeyA,
		KeyRight:      rl.KeyD,
		KeyUp:         rl.KeyE,
		KeyDown:       rl.KeyQ,
		KeyRun:        rl.KeyLeftShift,
		KeyToggleLook: rl.KeyM,
		LookButton:    rl.MouseLeftButton,
		WalkSpeed:     5.0,
		RunSpeed:      15.0,
		Friction:      0.5,
	}
}

// Apply advances the controller by one frame: reads input, updates velocity
// and orientation, and writes the new transform in place. On the first call
// it adopts the transform's existing yaw and pitch so the camera does not
// snap away from its spawn orientation.
func (c *CameraController) Apply(in input.Source, t *engine.Transform, dt float32) {
	if !c.initialized {
		c.Pitch = t.Rotation.X * rl.Deg2rad
		c.Yaw = t.Rotation.Y * rl.Deg2rad
		c.initialized = true
	}
	if !c.Enabled {
		return
	}

	var axis rl.Vector3
	if in.IsKeyDown(c.KeyForward) {
		axis.Z += 1
	}
	if in.IsKeyDown(c.KeyBack) {
		axis.Z -= 1
	}
	if in.IsKeyDown(c.KeyRight) {
		axis.X += 1
	}
	if in.IsKeyDown(c.KeyLeft) {
		axis.X -= 1
	}
	if in.IsKeyDown(c.KeyUp) {
		axis.Y += 1
	}
	if in.IsKeyDown(c.KeyDown) {
		axis.Y -= 1
	}
	if in.IsKeyPressed(c.KeyToggleLook) {
		c.lookLatched = !c.lookLatched
	}

	if axis != (rl.Vector3{}) {
		speed := c.WalkSpeed
		if in.IsKeyDown(c.KeyRun) {
			speed = c.RunSpeed
		}
		c.Velocity = rl.Vector3Scale(rl.Vector3Normalize(axis), speed)
	} else {
		friction := c.Friction
		if friction < 0 {
			friction = 0
		}
		if friction > 1 {
			friction = 1
		}
		c.Velocity = rl.Vector3Scale(c.Velocity, 1-friction)
		if lengthSqr(c.Velocity) < 1e-6 {
			c.Velocity = rl.Vector3{}
		}
	}

	// Translate along the camera's right and forward axes; vertical movement
	// follows world up regardless of pitch.
	forward := t.Forward()
	right := t.Right()
	t.Position.X += (c.Velocity.X*right.X + c.Velocity.Z*forward.X) * dt
	t.Position.Y += (c.Velocity.X*right.Y + c.Velocity.Y + c.Velocity.Z*forward.Y) * dt
	t.Position.Z += (c.Velocity.X*right.Z + c.Velocity.Z*forward.Z) * dt

	if c.LookActive(in) {
		delta := in.MouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			pitch := c.Pitch - delta.Y*0.5*c.Sensitivity*dt
			if pitch > pitchLimit {
				pitch = pitchLimit
			}
			if pitch < -pitchLimit {
				pitch = -pitchLimit
			}
			c.Pitch = pitch
			c.Yaw += delta.X * c.Sensitivity * dt

			// Rebuild the rotation from yaw and pitch alone; roll never accumulates.
			t.Rotation = rl.Vector3{X: c.Pitch * rl.Rad2deg, Y: c.Yaw * rl.Rad2deg, Z: 0}
		}
	}
}

// LookActive reports whether mouse-look is engaged this frame, either by
// holding the look button or via the latch key.
func (c *CameraController) LookActive(in input.Source) bool {
	return in.IsMouseButtonDown(c.LookButton) || c.lookLatched
}

// GetLookDirection implements engine.LookProvider.
func (c *CameraController) GetLookDirection() (x, y, z float32) {
	cosPitch := math.Cos(float64(c.Pitch))
	return float32(cosPitch * math.Cos(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		float32(cosPitch * math.Sin(float64(c.Yaw)))
}

func lengthSqr(v rl.Vector3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}
