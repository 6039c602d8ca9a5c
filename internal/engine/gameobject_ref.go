package engine

// GameObjectRef is a back-reference to another GameObject by UID. Holding a
// ref instead of a pointer keeps the link valid-or-nil after the target is
// destroyed.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or an empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference in scene. Returns nil if the reference is empty
// or the target is no longer registered.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something. It does not
// check that the target still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
