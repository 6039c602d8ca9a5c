package world

import (
	"floatme/internal/engine"
	"floatme/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World ties the scene registry to the collision world. It is the
// engine.Raycaster handed to systems that query the level.
type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
}

func New(gravity float32) *World {
	p := physics.NewPhysicsWorld()
	p.Gravity = rl.Vector3{Y: -gravity}
	return &World{
		Scene:   engine.NewScene("Main"),
		Physics: p,
	}
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, filter engine.QueryFilter) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance, filter)
}

// StepPhysics advances the collision world by one frame.
func (w *World) StepPhysics(_ *engine.Scene, deltaTime float32) {
	w.Physics.Update(deltaTime)
}

// Unload releases every renderer's GPU resources. Shared models are skipped
// by the renderers themselves.
func (w *World) Unload() {
	for _, u := range engine.Query[unloader](w.Scene) {
		u.Unload()
	}
}

type unloader interface {
	Unload()
}

var _ engine.Raycaster = (*World)(nil)
