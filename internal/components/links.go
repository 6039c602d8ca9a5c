package components

import "floatme/internal/engine"

// Tags used to find the actors of the game.
const (
	TagPlayer     = "player"
	TagEnemy      = "enemy"
	TagViewTarget = "view_target"
	TagLevel      = "level"
)

// ControlViewTarget makes its owner a control source: every frame a ray is
// cast along the owner's forward axis and Target is moved to the hit point.
type ControlViewTarget struct {
	engine.BaseComponent
	Target engine.GameObjectRef
}

func NewControlViewTarget(target *engine.GameObject) *ControlViewTarget {
	return &ControlViewTarget{Target: engine.RefTo(target)}
}

// RenderPlayer makes its owner follow the eye pose of a logical player body.
type RenderPlayer struct {
	engine.BaseComponent
	Logical engine.GameObjectRef
}

func NewRenderPlayer(logical *engine.GameObject) *RenderPlayer {
	return &RenderPlayer{Logical: engine.RefTo(logical)}
}

// GunWobble bobs its owner vertically: y = Amplitude * sin(Frequency * t).
type GunWobble struct {
	engine.BaseComponent
	Amplitude float32
	Frequency float32
}

func NewGunWobble() *GunWobble {
	return &GunWobble{Amplitude: 0.002, Frequency: 6.0}
}
