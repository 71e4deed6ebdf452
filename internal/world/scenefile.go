package world

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/assets"
	"sceneview/internal/components"
	"sceneview/internal/engine"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type modelRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh,omitempty"`
	MeshSize []float32 `json:"meshSize,omitempty"`
	Model    string    `json:"model,omitempty"`
	Color    string    `json:"color"`
}

type directionalLightDef struct {
	Type       string      `json:"type"`
	Direction  [3]float32  `json:"direction,omitempty"`
	Intensity  float32     `json:"intensity,omitempty"`
	Shadows    bool        `json:"shadows,omitempty"`
	Projection *[6]float32 `json:"projection,omitempty"` // left,right,bottom,top,near,far
}

type cameraDef struct {
	Type   string  `json:"type"`
	FOV    float32 `json:"fov,omitempty"`
	IsMain bool    `json:"isMain,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// ParseSceneFile decodes scene JSON without touching GPU state, so it can
// run headless. Object construction happens in LoadScene.
func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	sf, err := ParseSceneFile(data)
	if err != nil {
		return err
	}

	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = rl.Vector3{X: objDef.Position[0], Y: objDef.Position[1], Z: objDef.Position[2]}
		g.Transform.Rotation = rl.Vector3{X: objDef.Rotation[0], Y: objDef.Rotation[1], Z: objDef.Rotation[2]}

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = rl.Vector3{X: objDef.Scale[0], Y: objDef.Scale[1], Z: objDef.Scale[2]}
		}

		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				continue
			}

			switch header.Type {
			case "ModelRenderer":
				w.loadModelRenderer(g, raw)
			case "DirectionalLight":
				w.loadDirectionalLight(g, raw)
			case "Camera":
				loadCamera(g, raw)
			case "Script":
				loadScript(g, raw)
			}
		}

		w.Scene.AddGameObject(g)
	}

	return nil
}

func (w *World) loadModelRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def modelRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}

	color := assets.LookupColor(def.Color)

	var renderer *components.ModelRenderer
	if def.Model != "" {
		renderer = components.NewModelRendererFromFile(def.Model, color)
	} else {
		var model rl.Model
		switch def.Mesh {
		case "cube":
			if len(def.MeshSize) < 3 {
				return
			}
			model = rl.LoadModelFromMesh(rl.GenMeshCube(def.MeshSize[0], def.MeshSize[1], def.MeshSize[2]))
		case "plane":
			if len(def.MeshSize) < 2 {
				return
			}
			model = rl.LoadModelFromMesh(rl.GenMeshPlane(def.MeshSize[0], def.MeshSize[1], 1, 1))
		case "sphere":
			if len(def.MeshSize) < 1 {
				return
			}
			model = rl.LoadModelFromMesh(rl.GenMeshSphere(def.MeshSize[0], 16, 16))
		default:
			return
		}
		renderer = components.NewModelRenderer(model, color)
		renderer.MeshType = def.Mesh
		renderer.MeshSize = def.MeshSize
		switch def.Mesh {
		case "cube":
			renderer.SetCullRadiusFromSize(def.MeshSize[0], def.MeshSize[1], def.MeshSize[2])
		case "sphere":
			renderer.CullRadius = def.MeshSize[0]
		}
	}

	renderer.SetShader(w.Renderer.Shader)
	g.AddComponent(renderer)
}

func (w *World) loadDirectionalLight(g *engine.GameObject, raw json.RawMessage) {
	var def directionalLightDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	light := components.NewDirectionalLight()
	if def.Direction != [3]float32{} {
		light.Direction = rl.Vector3Normalize(rl.Vector3{X: def.Direction[0], Y: def.Direction[1], Z: def.Direction[2]})
	}
	if def.Intensity > 0 {
		light.Intensity = def.Intensity
	}
	light.ShadowsEnabled = def.Shadows
	if def.Projection != nil {
		p := *def.Projection
		light.ShadowProjection = components.ShadowProjection{
			Left: p[0], Right: p[1],
			Bottom: p[2], Top: p[3],
			Near: p[4], Far: p[5],
		}
	}
	g.AddComponent(light)

	// Wire light to renderer
	w.Light = g
	w.Renderer.SetLight(light)
}

func loadCamera(g *engine.GameObject, raw json.RawMessage) {
	var def cameraDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	cam := components.NewCamera()
	if def.FOV > 0 {
		cam.FOV = def.FOV
	}
	cam.IsMain = def.IsMain
	g.AddComponent(cam)
}

func loadScript(g *engine.GameObject, raw json.RawMessage) {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	if comp := engine.CreateScript(def.Name, def.Props); comp != nil {
		g.AddComponent(comp)
	}
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		// Skip the viewer camera (code-managed)
		if engine.GetComponent[*components.CameraController](g) != nil {
			continue
		}

		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.ModelRenderer:
		d := modelRendererDef{
			Type:  "ModelRenderer",
			Color: assets.LookupColorName(comp.Color),
		}
		if comp.FilePath != "" {
			d.Model = comp.FilePath
		} else {
			d.Mesh = comp.MeshType
			d.MeshSize = comp.MeshSize
		}
		def = d

	case *components.DirectionalLight:
		p := comp.ShadowProjection
		proj := [6]float32{p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far}
		def = directionalLightDef{
			Type:       "DirectionalLight",
			Direction:  [3]float32{comp.Direction.X, comp.Direction.Y, comp.Direction.Z},
			Intensity:  comp.Intensity,
			Shadows:    comp.ShadowsEnabled,
			Projection: &proj,
		}

	case *components.Camera:
		def = cameraDef{
			Type:   "Camera",
			FOV:    comp.FOV,
			IsMain: comp.IsMain,
		}

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
