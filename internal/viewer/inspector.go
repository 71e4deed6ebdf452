package viewer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/components"
	"sceneview/internal/engine"
)

const inspectorWidth = int32(300)

var (
	colorBgPanel       = rl.NewColor(24, 24, 32, 240)
	colorBorder        = rl.NewColor(60, 60, 75, 255)
	colorTextPrimary   = rl.NewColor(230, 230, 235, 255)
	colorTextSecondary = rl.NewColor(150, 150, 165, 255)
	colorSelected      = rl.NewColor(50, 70, 110, 255)
)

func (v *Viewer) inspectorBounds() rl.Rectangle {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	return rl.Rectangle{X: screenW - float32(inspectorWidth), Y: 0, Width: float32(inspectorWidth), Height: screenH}
}

func (v *Viewer) mouseInInspector() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), v.inspectorBounds())
}

// drawInspector renders the world inspector panel: scene hierarchy with
// click selection, the selected object's transform, light and camera controls.
func (v *Viewer) drawInspector() {
	bounds := v.inspectorBounds()
	panelX := int32(bounds.X)
	panelW := inspectorWidth

	rl.DrawRectangle(panelX, 0, panelW, int32(bounds.Height), colorBgPanel)
	rl.DrawRectangle(panelX, 0, 2, int32(bounds.Height), colorBorder)

	y := int32(10)
	rl.DrawText("World Inspector", panelX+12, y, 20, colorTextPrimary)
	y += 30

	y = v.drawHierarchy(panelX, y, panelW)

	rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, colorBorder)
	y += 10

	if v.selected != nil {
		y = v.drawTransformSection(panelX, y)
		rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, colorBorder)
		y += 10
	}

	y = v.drawLightSection(panelX, y, panelW)

	rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, colorBorder)
	y += 10

	v.drawCameraSection(panelX, y, panelW)
}

func (v *Viewer) drawHierarchy(panelX, y, panelW int32) int32 {
	rl.DrawText("Scene", panelX+12, y, 18, colorTextSecondary)
	y += 24

	mousePos := rl.GetMousePosition()
	for _, g := range v.World.Scene.GameObjects {
		rowRect := rl.Rectangle{X: float32(panelX + 8), Y: float32(y - 2), Width: float32(panelW - 16), Height: 20}
		hovered := rl.CheckCollisionPointRec(mousePos, rowRect)

		if g == v.selected {
			rl.DrawRectangleRec(rowRect, colorSelected)
		} else if hovered {
			rl.DrawRectangleRec(rowRect, rl.NewColor(40, 40, 52, 255))
		}
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if v.selected == g {
				v.selected = nil
			} else {
				v.selected = g
			}
		}

		rl.DrawText(g.Name, panelX+16, y, 16, colorTextPrimary)
		y += 22
	}
	return y + 6
}

func (v *Viewer) drawTransformSection(panelX, y int32) int32 {
	g := v.selected
	rl.DrawText("Transform", panelX+12, y, 18, colorTextSecondary)
	y += 24

	p := g.Transform.Position
	r := g.Transform.Rotation
	s := g.Transform.Scale
	rl.DrawText(fmt.Sprintf("Pos  %6.2f %6.2f %6.2f", p.X, p.Y, p.Z), panelX+16, y, 16, colorTextPrimary)
	y += 20
	rl.DrawText(fmt.Sprintf("Rot  %6.1f %6.1f %6.1f", r.X, r.Y, r.Z), panelX+16, y, 16, colorTextPrimary)
	y += 20
	rl.DrawText(fmt.Sprintf("Scl  %6.2f %6.2f %6.2f", s.X, s.Y, s.Z), panelX+16, y, 16, colorTextPrimary)
	y += 24
	return y
}

func (v *Viewer) drawLightSection(panelX, y, panelW int32) int32 {
	light := v.World.ActiveLight()
	if light == nil {
		return y
	}

	rl.DrawText("Directional Light", panelX+12, y, 18, colorTextSecondary)
	y += 26

	light.ShadowsEnabled = gui.CheckBox(
		rl.Rectangle{X: float32(panelX + 16), Y: float32(y), Width: 16, Height: 16},
		"Shadows", light.ShadowsEnabled)
	y += 24

	v.animateLight = gui.CheckBox(
		rl.Rectangle{X: float32(panelX + 16), Y: float32(y), Width: 16, Height: 16},
		"Animate", v.animateLight)
	y += 28

	light.Intensity = gui.Slider(
		rl.Rectangle{X: float32(panelX + 80), Y: float32(y), Width: float32(panelW - 140), Height: 16},
		"Intensity", fmt.Sprintf("%.2f", light.Intensity), light.Intensity, 0, 3)
	y += 26

	d := light.Direction
	rl.DrawText(fmt.Sprintf("Dir  %5.2f %5.2f %5.2f", d.X, d.Y, d.Z), panelX+16, y, 16, colorTextPrimary)
	y += 20

	proj := light.ShadowProjection
	rl.DrawText(fmt.Sprintf("Frustum X %7.1f .. %7.1f", proj.Left, proj.Right), panelX+16, y, 16, colorTextPrimary)
	y += 18
	rl.DrawText(fmt.Sprintf("Frustum Y %7.1f .. %7.1f", proj.Bottom, proj.Top), panelX+16, y, 16, colorTextPrimary)
	y += 18
	rl.DrawText(fmt.Sprintf("Frustum Z %7.1f .. %7.1f", proj.Near, proj.Far), panelX+16, y, 16, colorTextPrimary)
	y += 24
	return y
}

func (v *Viewer) drawCameraSection(panelX, y, panelW int32) int32 {
	ctrl := engine.GetComponent[*components.CameraController](v.CameraObj)
	if ctrl == nil {
		return y
	}

	rl.DrawText("Fly Camera", panelX+12, y, 18, colorTextSecondary)
	y += 26

	sliderW := float32(panelW - 140)
	ctrl.WalkSpeed = gui.Slider(
		rl.Rectangle{X: float32(panelX + 80), Y: float32(y), Width: sliderW, Height: 16},
		"Walk", fmt.Sprintf("%.1f", ctrl.WalkSpeed), ctrl.WalkSpeed, 1, 30)
	y += 24

	ctrl.RunSpeed = gui.Slider(
		rl.Rectangle{X: float32(panelX + 80), Y: float32(y), Width: sliderW, Height: 16},
		"Run", fmt.Sprintf("%.1f", ctrl.RunSpeed), ctrl.RunSpeed, 1, 60)
	y += 24

	ctrl.Sensitivity = gui.Slider(
		rl.Rectangle{X: float32(panelX + 80), Y: float32(y), Width: sliderW, Height: 16},
		"Look", fmt.Sprintf("%.2f", ctrl.Sensitivity), ctrl.Sensitivity, 0.05, 2)
	y += 26

	vel := ctrl.Velocity
	rl.DrawText(fmt.Sprintf("Vel  %5.2f %5.2f %5.2f", vel.X, vel.Y, vel.Z), panelX+16, y, 16, colorTextPrimary)
	y += 20
	rl.DrawText("Ctrl+S saves the scene", panelX+16, y, 14, colorTextSecondary)
	y += 20
	return y
}
