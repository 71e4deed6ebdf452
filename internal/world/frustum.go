package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the 6 planes of a view frustum, used to cull renderers.
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane in the form ax + by + cz + d = 0
type plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D) Frustum {
	view := rl.GetCameraMatrix(camera)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, 0.1, 1000.0)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, 0.1, 1000.0)
	}

	vp := rl.MatrixMultiply(view, proj)

	// Rows of the VP matrix in column-major raylib layout.
	row1 := [4]float32{vp.M0, vp.M4, vp.M8, vp.M12}
	row2 := [4]float32{vp.M1, vp.M5, vp.M9, vp.M13}
	row3 := [4]float32{vp.M2, vp.M6, vp.M10, vp.M14}
	row4 := [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}

	var f Frustum
	f.planes[0] = planeFromRows(row4, row1, 1)  // left:   row4 + row1
	f.planes[1] = planeFromRows(row4, row1, -1) // right:  row4 - row1
	f.planes[2] = planeFromRows(row4, row2, 1)  // bottom: row4 + row2
	f.planes[3] = planeFromRows(row4, row2, -1) // top:    row4 - row2
	f.planes[4] = planeFromRows(row4, row3, 1)  // near:   row4 + row3
	f.planes[5] = planeFromRows(row4, row3, -1) // far:    row4 - row3
	return f
}

func planeFromRows(a, b [4]float32, sign float32) plane {
	p := plane{
		normal: rl.Vector3{
			X: a[0] + sign*b[0],
			Y: a[1] + sign*b[1],
			Z: a[2] + sign*b[2],
		},
		distance: a[3] + sign*b[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	p.normal = rl.Vector3Scale(p.normal, 1.0/length)
	p.distance /= length
	return p
}

// ContainsSphere reports whether a sphere intersects the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether a point is inside the frustum.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}
