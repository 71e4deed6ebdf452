package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/components"
	"sceneview/internal/engine"
)

const ShadowMapResolution = 2048

type Renderer struct {
	Shader      rl.Shader
	ShadowMap   rl.RenderTexture2D
	Light       *components.DirectionalLight
	LightCamera rl.Camera3D
	MatLightVP  rl.Matrix

	// Number of renderers skipped by frustum culling last frame.
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Initialize() {
	r.Shader = rl.LoadShader("assets/shaders/lighting.vs", "assets/shaders/lighting.fs")
	r.ShadowMap = loadShadowmapRenderTexture(ShadowMapResolution, ShadowMapResolution)
}

func (r *Renderer) SetLight(light *components.DirectionalLight) {
	r.Light = light
	r.SyncLight()
}

// SyncLight pushes the light's current state to the light camera and shader.
// The viewer calls it every frame since the light adjuster and inspector
// mutate the light freely.
func (r *Renderer) SyncLight() {
	if r.Light == nil {
		return
	}
	r.LightCamera = r.Light.GetLightCamera()

	lightDirLoc := rl.GetShaderLocation(r.Shader, "lightDir")
	rl.SetShaderValue(r.Shader, lightDirLoc, []float32{r.Light.Direction.X, r.Light.Direction.Y, r.Light.Direction.Z}, rl.ShaderUniformVec3)

	lightColorLoc := rl.GetShaderLocation(r.Shader, "lightColor")
	rl.SetShaderValue(r.Shader, lightColorLoc, r.Light.GetColorFloat(), rl.ShaderUniformVec4)

	ambientLoc := rl.GetShaderLocation(r.Shader, "ambient")
	rl.SetShaderValue(r.Shader, ambientLoc, r.Light.GetAmbientFloat(), rl.ShaderUniformVec4)

	enabled := int32(0)
	if r.Light.ShadowsEnabled {
		enabled = 1
	}
	shadowsLoc := rl.GetShaderLocation(r.Shader, "shadowsEnabled")
	rl.SetUniform(shadowsLoc, []int32{enabled}, int32(rl.ShaderUniformInt), 1)
}

// DrawShadowMap renders the depth-only shadow pass using the light's
// orthographic frustum bounds. Skipped entirely while shadows are disabled.
func (r *Renderer) DrawShadowMap(gameObjects []*engine.GameObject) {
	if r.Light == nil || !r.Light.ShadowsEnabled {
		return
	}

	rl.BeginTextureMode(r.ShadowMap)
	rl.ClearBackground(rl.White)

	rl.BeginMode3D(r.LightCamera)

	p := r.Light.ShadowProjection
	shadowProj := rl.MatrixOrtho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	rl.SetMatrixProjection(shadowProj)

	lightView := rl.GetMatrixModelview()
	lightProj := rl.GetMatrixProjection()

	rl.SetCullFace(0)
	r.drawScene(gameObjects, nil)
	rl.SetCullFace(1)

	rl.EndMode3D()
	rl.EndTextureMode()

	rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))

	r.MatLightVP = rl.MatrixMultiply(lightView, lightProj)
}

// DrawWithShadows renders the main pass. Must run inside BeginMode3D(camera).
func (r *Renderer) DrawWithShadows(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	viewPosLoc := rl.GetShaderLocation(r.Shader, "viewPos")
	rl.SetShaderValue(r.Shader, viewPosLoc, []float32{camera.Position.X, camera.Position.Y, camera.Position.Z}, rl.ShaderUniformVec3)

	lightVPLoc := rl.GetShaderLocation(r.Shader, "matLightVP")
	rl.SetShaderValueMatrix(r.Shader, lightVPLoc, r.MatLightVP)

	shadowMapLoc := rl.GetShaderLocation(r.Shader, "shadowMap")
	rl.EnableShader(r.Shader.ID)

	textureSlot := int32(10)
	rl.ActiveTextureSlot(textureSlot)
	rl.EnableTexture(r.ShadowMap.Depth.ID)
	rl.SetUniform(shadowMapLoc, []int32{textureSlot}, int32(rl.ShaderUniformInt), 1)

	frustum := ExtractFrustum(camera)
	r.drawScene(gameObjects, &frustum)

	// Draw light indicator
	if r.Light != nil {
		lightIndicatorPos := rl.Vector3Scale(r.Light.Direction, -r.Light.ShadowDistance)
		rl.DrawSphere(lightIndicatorPos, 0.5, rl.Yellow)
		rl.DrawLine3D(lightIndicatorPos, rl.Vector3Zero(), rl.Yellow)
	}
}

func (r *Renderer) drawScene(gameObjects []*engine.GameObject, frustum *Frustum) {
	r.Culled = 0
	for _, g := range gameObjects {
		renderer := engine.GetComponent[*components.ModelRenderer](g)
		if renderer == nil {
			continue
		}
		if frustum != nil {
			if center, radius, ok := renderer.BoundingSphere(); ok && !frustum.ContainsSphere(center, radius) {
				r.Culled++
				continue
			}
		}
		renderer.Draw()
	}
}

func (r *Renderer) Unload() {
	rl.UnloadShader(r.Shader)
	rl.UnloadRenderTexture(r.ShadowMap)
}

// loadShadowmapRenderTexture creates a framebuffer with only a depth attachment
func loadShadowmapRenderTexture(width, height int32) rl.RenderTexture2D {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	target.Texture.Width = width
	target.Texture.Height = height

	if target.ID > 0 {
		rl.EnableFramebuffer(target.ID)

		target.Depth.ID = rl.LoadTextureDepth(width, height, false)
		target.Depth.Width = width
		target.Depth.Height = height
		target.Depth.Format = 19
		target.Depth.Mipmaps = 1

		rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)

		rl.DisableFramebuffer()
	}

	return target
}
