package viewer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneview/internal/input"
)

// Per key press, each shadow frustum bound grows or shrinks by 10%.
const shadowScaleStep = 0.1

// Seconds per full turn of the animated light around the vertical axis.
const lightTurnPeriod = 30.0

// Fixed downward tilt of the animated light.
const lightTilt = -math.Pi / 4

// updateLights handles the light debug keys: 5/6, 7/8 and 9/0 scale the
// shadow frustum bounds per axis pair, U toggles shadow rendering, L toggles
// the light direction animation.
func (v *Viewer) updateLights(in input.Source, elapsed float32) {
	light := v.World.ActiveLight()
	if light == nil {
		return
	}

	sx, sy, sz := float32(1), float32(1), float32(1)
	switch {
	case in.IsKeyPressed(rl.KeyFive):
		sx -= shadowScaleStep
	case in.IsKeyPressed(rl.KeySix):
		sx += shadowScaleStep
	case in.IsKeyPressed(rl.KeySeven):
		sy -= shadowScaleStep
	case in.IsKeyPressed(rl.KeyEight):
		sy += shadowScaleStep
	case in.IsKeyPressed(rl.KeyNine):
		sz -= shadowScaleStep
	case in.IsKeyPressed(rl.KeyZero):
		sz += shadowScaleStep
	}
	if sx != 1 || sy != 1 || sz != 1 {
		light.ScaleShadowProjection(sx, sy, sz)
	}

	if in.IsKeyPressed(rl.KeyU) {
		light.ShadowsEnabled = !light.ShadowsEnabled
	}

	if in.IsKeyPressed(rl.KeyL) {
		v.animateLight = !v.animateLight
	}
	if v.animateLight {
		yaw := elapsed * 2 * math.Pi / lightTurnPeriod
		light.SetAngles(yaw, lightTilt)
	}
}
