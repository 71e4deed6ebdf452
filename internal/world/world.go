package world

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/components"
	"sceneview/internal/engine"
)

type World struct {
	Scene    *engine.Scene
	Renderer *Renderer

	// Light is the GameObject carrying the active DirectionalLight.
	Light *engine.GameObject

	// OnSceneLoaded fires after a scene file has been (re)loaded and started.
	OnSceneLoaded engine.Event
}

func New() *World {
	return &World{
		Scene:    engine.NewScene("Main"),
		Renderer: NewRenderer(),
	}
}

// Initialize sets up GPU resources. Must run after the window exists.
func (w *World) Initialize() {
	w.Renderer.Initialize()
}

// ActiveLight returns the scene's directional light, or nil before one exists.
func (w *World) ActiveLight() *components.DirectionalLight {
	if w.Light == nil {
		return nil
	}
	return engine.GetComponent[*components.DirectionalLight](w.Light)
}

// EnsureLight spawns a default directional light when the scene has none.
func (w *World) EnsureLight() {
	if w.ActiveLight() != nil {
		return
	}
	log.Println("scene has no directional light, spawning one")
	g := engine.NewGameObject("Sun")
	light := components.NewDirectionalLight()
	g.AddComponent(light)
	w.Scene.AddGameObject(g)
	w.Light = g
	w.Renderer.SetLight(light)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Clear unloads all scene objects, keeping renderer resources alive for the
// next load.
func (w *World) Clear() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
	w.Scene = engine.NewScene("Main")
	w.Light = nil
	w.Renderer.SetLight(nil)
}

// ReloadScene replaces the current scene with the contents of path.
func (w *World) ReloadScene(path string) error {
	w.Clear()
	if err := w.LoadScene(path); err != nil {
		return err
	}
	w.EnsureLight()
	w.Scene.Start()
	w.OnSceneLoaded.Invoke()
	return nil
}

func (w *World) Unload() {
	w.Renderer.Unload()
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
}

// SpawnDefaultScene builds the fallback scene used when no scene file can be
// loaded: a cube on a ground plane, slowly spinning.
func (w *World) SpawnDefaultScene() {
	floor := engine.NewGameObject("Floor")
	floorModel := rl.LoadModelFromMesh(rl.GenMeshPlane(40, 40, 1, 1))
	floorRenderer := components.NewModelRenderer(floorModel, rl.LightGray)
	floorRenderer.MeshType = "plane"
	floorRenderer.MeshSize = []float32{40, 40}
	floorRenderer.SetShader(w.Renderer.Shader)
	floor.AddComponent(floorRenderer)
	w.Scene.AddGameObject(floor)

	cube := engine.NewGameObject("Cube")
	cube.Transform.Position = rl.Vector3{Y: 1}
	cubeModel := rl.LoadModelFromMesh(rl.GenMeshCube(2, 2, 2))
	cubeRenderer := components.NewModelRenderer(cubeModel, rl.Orange)
	cubeRenderer.MeshType = "cube"
	cubeRenderer.MeshSize = []float32{2, 2, 2}
	cubeRenderer.SetCullRadiusFromSize(2, 2, 2)
	cubeRenderer.SetShader(w.Renderer.Shader)
	cube.AddComponent(cubeRenderer)
	w.Scene.AddGameObject(cube)
}
