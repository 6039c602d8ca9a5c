package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		Transform:  NewTransform(),
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component assignable to T, or the zero value.
// T may be a concrete pointer type or an interface.
func GetComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// HasComponent reports whether g carries a component assignable to T.
func HasComponent[T any](g *GameObject) bool {
	if g == nil {
		return false
	}
	for _, c := range g.components {
		if _, ok := c.(T); ok {
			return true
		}
	}
	return false
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddChild parents child under g. If g already belongs to a scene the child
// subtree is registered there too.
func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
	if g.Scene != nil && child.Scene != g.Scene {
		g.Scene.AddGameObject(child)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Walk visits g and every descendant depth-first.
func (g *GameObject) Walk(fn func(*GameObject)) {
	fn(g)
	for _, c := range g.Children {
		c.Walk(fn)
	}
}

func (g *GameObject) WorldMatrix() rl.Matrix {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return rl.Vector3Transform(g.Transform.Position, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.QuaternionMultiply(g.Parent.WorldRotation(), g.Transform.Rotation)
}

// WorldTransform flattens the hierarchy into a single transform. Scale is
// only exact for uniformly scaled parents.
func (g *GameObject) WorldTransform() Transform {
	if g.Parent == nil {
		return g.Transform
	}
	ps := g.Parent.WorldTransform().Scale
	return Transform{
		Position: g.WorldPosition(),
		Rotation: g.WorldRotation(),
		Scale: rl.Vector3{
			X: ps.X * g.Transform.Scale.X,
			Y: ps.Y * g.Transform.Scale.Y,
			Z: ps.Z * g.Transform.Scale.Z,
		},
	}
}
