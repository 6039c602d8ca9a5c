package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

func NewTransform() Transform {
	return Transform{
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// TransformAt returns an identity-rotation, unit-scale transform at pos.
func TransformAt(pos rl.Vector3) Transform {
	t := NewTransform()
	t.Position = pos
	return t
}

// Forward is the local -Z axis in world space. Cameras look down it.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, t.Rotation)
}

// Back is the local +Z axis in world space. Character models face it.
func (t Transform) Back() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, t.Rotation)
}

// Matrix combines scale -> rotate -> translate.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.QuaternionToMatrix(t.Rotation)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}
