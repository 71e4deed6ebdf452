package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/engine"
	"sceneview/internal/geom"
)

// ShadowProjection is the orthographic frustum the shadow pass renders with.
type ShadowProjection struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
	Near   float32
	Far    float32
}

// Bounds never shrink below this magnitude, so repeated scaling cannot
// degenerate the frustum.
const minShadowBound = 0.05

type DirectionalLight struct {
	engine.BaseComponent
	Direction        rl.Vector3
	Color            rl.Color
	Intensity        float32
	AmbientColor     rl.Color
	ShadowDistance   float32
	ShadowsEnabled   bool
	ShadowProjection ShadowProjection
}

func NewDirectionalLight() *DirectionalLight {
	// Default shadow frustum: the box around a sphere of radius 100 centered
	// a little off origin, the same bounds the viewer has always started with.
	bounds := geom.FromSphere(rl.Vector3{X: 3, Y: 3, Z: 3}, 100)
	return &DirectionalLight{
		Direction:      rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}),
		Color:          rl.White,
		Intensity:      1.0,
		AmbientColor:   rl.NewColor(51, 51, 51, 255),
		ShadowDistance: 50.0,
		ShadowsEnabled: false,
		ShadowProjection: ShadowProjection{
			Left:   bounds.Min.X,
			Right:  bounds.Max.X,
			Bottom: bounds.Min.Y,
			Top:    bounds.Max.Y,
			Near:   bounds.Min.Z,
			Far:    bounds.Max.Z,
		},
	}
}

// ScaleShadowProjection multiplies the frustum bounds per axis pair:
// left/right by sx, bottom/top by sy, near/far by sz.
func (l *DirectionalLight) ScaleShadowProjection(sx, sy, sz float32) {
	p := &l.ShadowProjection
	p.Left = clampBound(p.Left * sx)
	p.Right = clampBound(p.Right * sx)
	p.Bottom = clampBound(p.Bottom * sy)
	p.Top = clampBound(p.Top * sy)
	p.Near = clampBound(p.Near * sz)
	p.Far = clampBound(p.Far * sz)
}

func clampBound(v float32) float32 {
	if v > -minShadowBound && v < minShadowBound {
		if v < 0 {
			return -minShadowBound
		}
		return minShadowBound
	}
	return v
}

// SetAngles points the light by yaw around the vertical axis and pitch from
// the horizontal plane (negative pitch shines downward).
func (l *DirectionalLight) SetAngles(yaw, pitch float32) {
	cosPitch := float32(math.Cos(float64(pitch)))
	l.Direction = rl.Vector3{
		X: cosPitch * float32(math.Cos(float64(yaw))),
		Y: float32(math.Sin(float64(pitch))),
		Z: cosPitch * float32(math.Sin(float64(yaw))),
	}
}

// GetLightCamera returns the orthographic camera the shadow pass renders from.
func (l *DirectionalLight) GetLightCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3Scale(l.Direction, -l.ShadowDistance),
		Target:     rl.Vector3Zero(),
		Up:         l.lightCameraUp(),
		Fovy:       l.ShadowProjection.Top - l.ShadowProjection.Bottom,
		Projection: rl.CameraOrthographic,
	}
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return []float32{
		float32(l.Color.R) / 255.0 * l.Intensity,
		float32(l.Color.G) / 255.0 * l.Intensity,
		float32(l.Color.B) / 255.0 * l.Intensity,
		1.0,
	}
}

func (l *DirectionalLight) GetAmbientFloat() []float32 {
	return []float32{
		float32(l.AmbientColor.R) / 255.0,
		float32(l.AmbientColor.G) / 255.0,
		float32(l.AmbientColor.B) / 255.0,
		1.0,
	}
}

func (l *DirectionalLight) lightCameraUp() rl.Vector3 {
	if math.Abs(float64(l.Direction.Y)) > 0.9 {
		return rl.Vector3{X: 0, Y: 0, Z: 1}
	}
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}
