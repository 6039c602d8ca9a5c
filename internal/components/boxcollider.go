package components

import (
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box. Object rotation is ignored; rotation is
// locked for every body in this game.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetCenter returns the collider center in world space.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the size scaled by the owner's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.WorldTransform().Scale
	return rl.Vector3{X: abs(b.Size.X * s.X), Y: abs(b.Size.Y * s.Y), Z: abs(b.Size.Z * s.Z)}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
