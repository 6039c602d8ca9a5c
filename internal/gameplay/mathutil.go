package gameplay

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-5

// flatten projects v onto the ground plane and normalizes it. ok is false
// when the horizontal part is too short to define a direction.
func flatten(v rl.Vector3) (rl.Vector3, bool) {
	v.Y = 0
	l := rl.Vector3Length(v)
	if l < epsilon || math.IsNaN(float64(l)) {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(v, 1/l), true
}

// RotationArc returns the shortest rotation taking unit vector from onto unit
// vector to. Opposite vectors get a half turn about +Y, or about +X when the
// vectors are vertical.
func RotationArc(from, to rl.Vector3) rl.Quaternion {
	d := rl.Vector3DotProduct(from, to)
	if d >= 1-epsilon {
		return rl.QuaternionIdentity()
	}
	if d <= -1+epsilon {
		axis := rl.Vector3{Y: 1}
		if math.Abs(float64(from.Y)) > 0.9 {
			axis = rl.Vector3{X: 1}
		}
		return rl.QuaternionFromAxisAngle(axis, math.Pi)
	}
	c := rl.Vector3CrossProduct(from, to)
	return rl.QuaternionNormalize(rl.Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d})
}

// angleBetween returns the unsigned angle between two unit vectors.
func angleBetween(a, b rl.Vector3) float64 {
	d := float64(rl.Vector3DotProduct(a, b))
	return math.Acos(math.Max(-1, math.Min(1, d)))
}
