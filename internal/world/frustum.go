package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the six clip planes of a camera: left, right, bottom, top,
// near, far. Normals point inward.
type Frustum struct {
	planes [6]plane
}

type plane struct {
	normal   rl.Vector3
	distance float32
}

// NewFrustum builds the frustum of a perspective or orthographic camera.
// Aspect is viewport width over height.
func NewFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraOrthographic {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	} else {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	}

	return frustumFromMatrix(rl.MatrixMultiply(view, proj))
}

// frustumFromMatrix extracts clip planes from a view-projection matrix
// (Gribb/Hartmann). Each plane is the w row plus or minus an axis row.
func frustumFromMatrix(vp rl.Matrix) Frustum {
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for axis := range 3 {
		for side, sign := range [2]float32{1, -1} {
			r := rows[axis]
			w := rows[3]
			f.planes[axis*2+side] = normalized(plane{
				normal:   rl.Vector3{X: w[0] + sign*r[0], Y: w[1] + sign*r[1], Z: w[2] + sign*r[2]},
				distance: w[3] + sign*r[3],
			})
		}
	}
	return f
}

func normalized(p plane) plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return plane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: p.distance / length,
	}
}

func (p plane) signedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.distance
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if p.signedDistance(center) < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
