package physics

import (
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest box collider hit along the ray within
// maxDistance. Objects rejected by filter are ignored.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, filter engine.QueryFilter) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := engine.RaycastResult{Distance: maxDistance}
	hit := false
	visit := func(obj *engine.GameObject) {
		if !filter.Allows(obj) {
			return
		}
		box, ok := boundsOf(obj)
		if !ok {
			return
		}
		t, normal, ok := box.RayIntersect(origin, direction, closest.Distance)
		if !ok || (hit && t >= closest.Distance) {
			return
		}
		closest = engine.RaycastResult{
			GameObject: obj,
			Point:      rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
			Normal:     normal,
			Distance:   t,
		}
		hit = true
	}

	for _, obj := range p.Objects {
		visit(obj)
	}
	for _, obj := range p.Kinematics {
		visit(obj)
	}
	for _, obj := range p.Statics {
		visit(obj)
	}
	return closest, hit
}
