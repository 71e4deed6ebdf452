package viewer

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (v *Viewer) draw() {
	camera := v.camera.GetRaylibCamera()

	// Shadow pass
	shadowStart := time.Now()
	v.World.Renderer.DrawShadowMap(v.World.Scene.GameObjects)
	v.shadowMs = float64(time.Since(shadowStart).Microseconds()) / 1000.0

	// Main render
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	v.World.Renderer.DrawWithShadows(camera, v.World.Scene.GameObjects)
	rl.EndMode3D()
	v.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	v.drawHelp()
	if v.showInspector {
		v.drawInspector()
	}

	rl.EndDrawing()
}

func (v *Viewer) drawHelp() {
	rl.DrawText("WASD move, E/Q up/down, Shift run, LMB/M mouse-look", 10, 10, 20, rl.DarkGray)
	rl.DrawText("L animate light, U shadows, 5-0 shadow frustum, F1 inspector", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	if v.showInspector {
		rl.DrawText(fmt.Sprintf("Shadows: %.2f ms", v.shadowMs), 10, 90, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", v.drawMs), 10, 110, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Culled:  %d", v.World.Renderer.Culled), 10, 130, 16, rl.Green)
	}
}
