package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector that pushes a out of b, or
// the zero vector when they do not overlap. Ties prefer X, then Y, then Z.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3{}
	}

	best := float32(math.MaxFloat32)
	var result rl.Vector3
	for i := 0; i < 3; i++ {
		up := axis(b.Max, i) - axis(a.Min, i)   // push a toward +axis
		down := axis(a.Max, i) - axis(b.Min, i) // push a toward -axis
		if up < best {
			best = up
			result = withAxis(i, up)
		}
		if down < best {
			best = down
			result = withAxis(i, -down)
		}
	}
	return result
}

// RayIntersect runs a slab test against the box. dir must be normalized.
// It returns the distance to the entry point (or the exit point when the
// origin is inside) and the outward normal of the face that was hit.
func (a AABB) RayIntersect(origin, dir rl.Vector3, maxDistance float32) (float32, rl.Vector3, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		o, d := axis(origin, i), axis(dir, i)
		lo, hi := axis(a.Min, i), axis(a.Max, i)
		if d == 0 {
			if o < lo || o > hi {
				return 0, rl.Vector3{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, enterAxis, enterSign = t1, i, sign
		}
		if t2 < tmax {
			tmax, exitAxis, exitSign = t2, i, -sign
		}
		if tmin > tmax {
			return 0, rl.Vector3{}, false
		}
	}

	if tmax < 0 {
		return 0, rl.Vector3{}, false
	}
	t, hitAxis, hitSign := tmin, enterAxis, enterSign
	if t < 0 {
		t, hitAxis, hitSign = tmax, exitAxis, exitSign
	}
	if t > maxDistance || hitAxis < 0 {
		return 0, rl.Vector3{}, false
	}
	return t, withAxis(hitAxis, hitSign), true
}

func axis(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func withAxis(i int, value float32) rl.Vector3 {
	switch i {
	case 0:
		return rl.Vector3{X: value}
	case 1:
		return rl.Vector3{Y: value}
	default:
		return rl.Vector3{Z: value}
	}
}
