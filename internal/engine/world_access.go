package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// QueryFilter removes candidates from a scene query. An object is skipped if
// it is listed in Exclude or if Predicate is set and returns false for it.
type QueryFilter struct {
	Exclude   []*GameObject
	Predicate func(g *GameObject) bool
}

// Allows reports whether g survives the filter.
func (f QueryFilter) Allows(g *GameObject) bool {
	for _, ex := range f.Exclude {
		if ex == g {
			return false
		}
	}
	if f.Predicate != nil && !f.Predicate(g) {
		return false
	}
	return true
}

// Raycaster casts rays into the collision world.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, filter QueryFilter) (RaycastResult, bool)
}
