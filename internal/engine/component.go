package engine

// Component is data or behaviour attached to a GameObject. Update is driven by
// Scene.Update once per frame for active objects; components that only carry
// data embed BaseComponent and leave it empty.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// PlayerController is implemented by components that move a kinematic body
// themselves. The physics world reports ground contact back through it.
type PlayerController interface {
	GetVelocity() (x, y, z float32)
	SetVelocityY(vy float32)
	Grounded() bool
	SetGrounded(grounded bool)
}

// CollisionHandler is implemented by components that want collision callbacks.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
