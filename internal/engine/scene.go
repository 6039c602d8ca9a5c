package engine

// Scene is the entity registry. Objects are looked up by UID, name or tag.
//
// Spawns are buffered: AddGameObject queues the object (and its subtree) and
// Flush, called once at the start of a frame, publishes the queue as Added.
// Systems that need one-time initialisation read Added and see each object in
// exactly one frame.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
	pending     []*GameObject
	added       []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject registers g and all of its children. Already registered
// objects are ignored.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Walk(func(obj *GameObject) {
		if _, ok := s.uidMap[obj.UID]; ok {
			return
		}
		obj.Scene = s
		s.uidMap[obj.UID] = obj
		s.GameObjects = append(s.GameObjects, obj)
		s.pending = append(s.pending, obj)
	})
}

// RemoveGameObject removes g together with its whole subtree. Child lifetime
// is bound to the parent.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	doomed := make(map[*GameObject]bool)
	g.Walk(func(obj *GameObject) {
		doomed[obj] = true
		delete(s.uidMap, obj.UID)
		obj.Scene = nil
	})
	s.GameObjects = filterOut(s.GameObjects, doomed)
	s.pending = filterOut(s.pending, doomed)
	s.added = filterOut(s.added, doomed)
}

func filterOut(list []*GameObject, doomed map[*GameObject]bool) []*GameObject {
	kept := list[:0]
	for _, obj := range list {
		if !doomed[obj] {
			kept = append(kept, obj)
		}
	}
	return kept
}

// Flush publishes objects spawned since the previous Flush.
func (s *Scene) Flush() {
	s.added = s.pending
	s.pending = nil
}

// Added returns the objects published by the last Flush.
func (s *Scene) Added() []*GameObject {
	return s.added
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	if uid == 0 {
		return nil
	}
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Query returns the first component of type T from every object that has one,
// in registration order.
func Query[T any](s *Scene) []T {
	var result []T
	for _, g := range s.GameObjects {
		for _, c := range g.components {
			if typed, ok := c.(T); ok {
				result = append(result, typed)
				break
			}
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Start()
		g.Update(deltaTime)
	}
}
