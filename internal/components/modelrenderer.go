package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/assets"
	"sceneview/internal/engine"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color

	// Scene-file metadata, kept so the scene can be saved back out.
	MeshType string
	MeshSize []float32
	FilePath string

	// CullRadius is the local-space bounding sphere radius used for frustum
	// culling. Zero disables culling for this renderer.
	CullRadius float32

	shader   rl.Shader
	fromFile bool // true if loaded via asset manager
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:    model,
		Color:    color,
		fromFile: false,
	}
}

func NewModelRendererFromFile(path string, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:    assets.LoadModel(path),
		Color:    color,
		FilePath: path,
		fromFile: true,
	}
}

func (m *ModelRenderer) SetShader(shader rl.Shader) {
	m.shader = shader
	m.Model.Materials.Shader = shader
	m.Model.Materials.Maps.Color = m.Color
}

// BoundingSphere returns the world-space culling sphere. ok is false when
// culling is disabled for this renderer.
func (m *ModelRenderer) BoundingSphere() (center rl.Vector3, radius float32, ok bool) {
	g := m.GetGameObject()
	if g == nil || m.CullRadius <= 0 {
		return rl.Vector3{}, 0, false
	}
	s := g.WorldScale()
	maxScale := max(s.X, max(s.Y, s.Z))
	return g.WorldPosition(), m.CullRadius * maxScale, true
}

// SetCullRadiusFromSize derives the culling sphere from a primitive's
// dimensions (half of the box diagonal).
func (m *ModelRenderer) SetCullRadiusFromSize(x, y, z float32) {
	m.CullRadius = float32(math.Sqrt(float64(x*x+y*y+z*z))) / 2
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	// Build scale matrix
	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	// Build rotation matrix from Euler angles
	rot := g.WorldRotation()
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	// Build translation matrix
	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// Combine: scale -> rotate -> translate
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, rl.White)
}

func (m *ModelRenderer) Unload() {
	// Asset-manager models are unloaded by the manager itself.
	if !m.fromFile {
		rl.UnloadModel(m.Model)
	}
}
