package components

import (
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.05,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

// GetRaylibCamera builds a raylib camera looking down the owner's world -Z.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	world := g.WorldTransform()
	up := rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, world.Rotation)

	return rl.Camera3D{
		Position:   world.Position,
		Target:     rl.Vector3Add(world.Position, world.Forward()),
		Up:         up,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
