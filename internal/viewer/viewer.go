package viewer

import (
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/assets"
	"sceneview/internal/components"
	"sceneview/internal/engine"
	"sceneview/internal/input"
	"sceneview/internal/world"
)

type Viewer struct {
	World     *world.World
	CameraObj *engine.GameObject

	cfg        Config
	scenePath  string
	controller *components.CameraController
	camera     *components.Camera
	watcher    *world.Watcher

	animateLight  bool
	showInspector bool
	selected      *engine.GameObject
	lookWasActive bool

	// Debug timing (ms)
	shadowMs float64
	drawMs   float64
}

func New(cfg Config, scenePath string) *Viewer {
	return &Viewer{
		World:     world.New(),
		cfg:       cfg,
		scenePath: scenePath,
	}
}

// Run opens the window and drives the frame loop until the window closes or
// Esc is pressed (raylib's default exit key).
func (v *Viewer) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(v.cfg.Window.Width, v.cfg.Window.Height, v.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	// GPU resources need the GL context
	v.World.Initialize()
	defer v.World.Unload()
	defer assets.Unload()

	log.Printf("loading %s", v.scenePath)
	if err := v.World.ReloadScene(v.scenePath); err != nil {
		log.Printf("load scene %s: %v, using built-in scene", v.scenePath, err)
		v.World.SpawnDefaultScene()
		v.World.EnsureLight()
		v.World.Scene.Start()
	}
	v.World.OnSceneLoaded.AddListener(func() {
		// Old objects are gone after a reload
		v.selected = nil
	})

	v.createCamera()

	if v.cfg.Watch {
		w, err := world.NewWatcher(v.scenePath)
		if err != nil {
			log.Printf("scene watcher disabled: %v", err)
		} else {
			v.watcher = w
			defer v.watcher.Close()
		}
	}

	dev := input.Device{}
	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		v.update(dev, dt, float32(rl.GetTime()))
		v.draw()
	}
}

// createCamera spawns the code-managed fly camera. It starts at a fixed
// vantage point looking at the origin, the controller adopts that
// orientation on its first update.
func (v *Viewer) createCamera() {
	v.CameraObj = engine.NewGameObject("Viewer Camera")
	v.CameraObj.Transform.Position = rl.Vector3{X: 10, Y: 4.4, Z: 3}
	lookAt(&v.CameraObj.Transform, rl.Vector3Zero())

	v.controller = components.NewCameraController()
	if err := v.cfg.Camera.ApplyTo(v.controller); err != nil {
		log.Printf("camera config: %v", err)
	}
	v.CameraObj.AddComponent(v.controller)

	v.camera = components.NewCamera()
	v.camera.IsMain = true
	v.CameraObj.AddComponent(v.camera)

	v.CameraObj.Start()
}

// lookAt points a transform's pitch/yaw at a world position, roll stays zero.
func lookAt(t *engine.Transform, target rl.Vector3) {
	dir := rl.Vector3Normalize(rl.Vector3Subtract(target, t.Position))
	yaw := float32(math.Atan2(float64(dir.Z), float64(dir.X)))
	pitch := float32(math.Asin(float64(dir.Y)))
	t.Rotation = rl.Vector3{X: pitch * rl.Rad2deg, Y: yaw * rl.Rad2deg, Z: 0}
}

func (v *Viewer) update(in input.Source, dt, elapsed float32) {
	if in.IsKeyPressed(rl.KeyF1) {
		v.showInspector = !v.showInspector
	}

	saving := in.IsKeyDown(rl.KeyLeftControl)
	if saving && in.IsKeyPressed(rl.KeyS) {
		if err := v.World.SaveScene(v.scenePath); err != nil {
			log.Printf("save scene: %v", err)
		} else {
			log.Printf("saved %s", v.scenePath)
		}
	}

	// The inspector owns the mouse while the cursor is over it, and Ctrl
	// chords should not steer the camera.
	camIn := in
	if saving || (v.showInspector && v.mouseInInspector()) {
		camIn = uiFiltered{in}
	}
	v.controller.Apply(camIn, &v.CameraObj.Transform, dt)

	lookActive := v.controller.LookActive(camIn)
	if lookActive != v.lookWasActive {
		if lookActive {
			rl.DisableCursor()
		} else {
			rl.EnableCursor()
		}
		v.lookWasActive = lookActive
	}

	v.updateLights(in, elapsed)
	v.World.Renderer.SyncLight()

	v.World.Update(dt)

	v.drainWatcher()
}

// uiFiltered hides movement keys and the look button from the camera
// controller while the UI owns the input.
type uiFiltered struct {
	input.Source
}

func (uiFiltered) IsMouseButtonDown(rl.MouseButton) bool { return false }
func (uiFiltered) IsKeyDown(int32) bool                  { return false }

func (v *Viewer) drainWatcher() {
	if v.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case path, ok := <-v.watcher.Events:
			if !ok {
				return
			}
			log.Printf("scene changed on disk: %s", path)
			reload = true
		case err := <-v.watcher.Errors:
			log.Printf("scene watcher: %v", err)
		default:
			if reload {
				if err := v.World.ReloadScene(v.scenePath); err != nil {
					log.Printf("reload scene: %v", err)
				}
			}
			return
		}
	}
}
