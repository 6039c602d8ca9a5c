package physics

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// groundNormalY is the minimum upward push that counts as standing on something.
const groundNormalY = 0.5

// CollisionPair represents two objects that are colliding, lower UID first.
type CollisionPair struct {
	A, B *engine.GameObject
}

func makePair(a, b *engine.GameObject) CollisionPair {
	if a.UID > b.UID {
		return CollisionPair{A: b, B: a}
	}
	return CollisionPair{A: a, B: b}
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (player)
	Statics    []*engine.GameObject // no rigidbody (level blocks)

	grid      *staticGrid
	gridDirty bool

	activeCollisions  map[CollisionPair]bool
	currentCollisions map[CollisionPair]bool
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{Y: -9.81},
		Objects:           make([]*engine.GameObject, 0),
		Kinematics:        make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		grid:              newStaticGrid(),
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair]bool),
	}
}

// AddObject sorts g into dynamic, kinematic or static by its Rigidbody.
// Objects without a BoxCollider take part in nothing but integration.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	switch {
	case rb == nil:
		p.Statics = append(p.Statics, g)
		p.gridDirty = true
	case rb.IsKinematic:
		p.Kinematics = append(p.Kinematics, g)
	default:
		p.Objects = append(p.Objects, g)
	}
	log.Debug("physics: object added", "name", g.Name, "uid", g.UID)
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	if list, ok := removeFrom(p.Objects, g); ok {
		p.Objects = list
	} else if list, ok := removeFrom(p.Kinematics, g); ok {
		p.Kinematics = list
	} else if list, ok := removeFrom(p.Statics, g); ok {
		p.Statics = list
		p.gridDirty = true
	}
	for pair := range p.activeCollisions {
		if pair.A == g || pair.B == g {
			delete(p.activeCollisions, pair)
		}
	}
}

func removeFrom(list []*engine.GameObject, g *engine.GameObject) ([]*engine.GameObject, bool) {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

func (p *PhysicsWorld) rebuildGrid() {
	p.grid.clear()
	for _, s := range p.Statics {
		if box, ok := boundsOf(s); ok {
			p.grid.insert(s, box)
		}
	}
	p.gridDirty = false
}

// boundsOf returns the world AABB of g's BoxCollider.
func boundsOf(g *engine.GameObject) (AABB, bool) {
	col := engine.GetComponent[*components.BoxCollider](g)
	if col == nil || !g.Active {
		return AABB{}, false
	}
	return NewAABBFromCenter(col.GetCenter(), col.GetWorldSize()), true
}

func (p *PhysicsWorld) Update(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	if p.gridDirty {
		p.rebuildGrid()
	}
	p.currentCollisions = make(map[CollisionPair]bool)

	// 1. Integrate forces, gravity and damping.
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping || !obj.Active {
			continue
		}
		accel := rl.Vector3Scale(rb.Force, 1/rb.Mass)
		if rb.UseGravity {
			accel = rl.Vector3Add(accel, p.Gravity)
		}
		rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(accel, deltaTime))
		if rb.LinearDamping > 0 {
			rb.Velocity = rl.Vector3Scale(rb.Velocity, 1/(1+deltaTime*rb.LinearDamping))
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))
		rb.TrySleep(deltaTime)
	}

	// 2. Dynamic vs dynamic.
	for i := 0; i < len(p.Objects); i++ {
		for j := i + 1; j < len(p.Objects); j++ {
			p.resolveCollision(p.Objects[i], p.Objects[j])
		}
	}

	// 3. Kinematic pushes dynamic.
	for _, kinematic := range p.Kinematics {
		for _, obj := range p.Objects {
			p.resolveKinematicCollision(kinematic, obj)
		}
	}

	// 4. Dynamic vs static.
	for _, obj := range p.Objects {
		box, ok := boundsOf(obj)
		if !ok {
			continue
		}
		for _, static := range p.grid.query(box) {
			p.resolveStaticCollision(obj, static, deltaTime)
		}
	}

	// 5. Kinematic vs static, with ground detection for controllers.
	for _, kinematic := range p.Kinematics {
		controller := engine.GetComponent[engine.PlayerController](kinematic)
		if controller != nil {
			controller.SetGrounded(false)
		}
		box, ok := boundsOf(kinematic)
		if !ok {
			continue
		}
		for _, static := range p.grid.query(box) {
			p.resolveKinematicStaticCollision(kinematic, static, controller)
		}
	}

	p.dispatchCollisionCallbacks()
}

// recordCollision marks a collision pair as active this frame and wakes sleeping objects
func (p *PhysicsWorld) recordCollision(a, b *engine.GameObject) {
	p.currentCollisions[makePair(a, b)] = true

	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA == nil || rbB == nil {
		return
	}
	// Settled stacks stay asleep under micro-contacts.
	relSpeed := rl.Vector3Length(rl.Vector3Subtract(rbA.Velocity, rbB.Velocity))
	if relSpeed > components.SleepVelocityThreshold*2 {
		rbA.Wake()
		rbB.Wake()
	}
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to handlers
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	for pair := range p.currentCollisions {
		if !p.activeCollisions[pair] {
			notify(pair.A, pair.B, true)
			notify(pair.B, pair.A, true)
		}
	}
	for pair := range p.activeCollisions {
		if !p.currentCollisions[pair] {
			notify(pair.A, pair.B, false)
			notify(pair.B, pair.A, false)
		}
	}
	p.activeCollisions = p.currentCollisions
}

func notify(obj, other *engine.GameObject, enter bool) {
	for _, comp := range obj.Components() {
		handler, ok := comp.(engine.CollisionHandler)
		if !ok {
			continue
		}
		if enter {
			handler.OnCollisionEnter(other)
		} else {
			handler.OnCollisionExit(other)
		}
	}
}

// pushOut returns the translation that moves a out of b and its unit normal.
func pushOut(a, b *engine.GameObject) (rl.Vector3, rl.Vector3, bool) {
	boxA, okA := boundsOf(a)
	boxB, okB := boundsOf(b)
	if !okA || !okB {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	push := boxA.Resolve(boxB)
	length := rl.Vector3Length(push)
	if length < 1e-6 {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	return push, rl.Vector3Scale(push, 1/length), true
}

func (p *PhysicsWorld) resolveCollision(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA == nil || rbB == nil || (rbA.IsSleeping && rbB.IsSleeping) {
		return
	}
	push, normal, ok := pushOut(a, b)
	if !ok {
		return
	}
	p.recordCollision(a, b)

	// Split the push based on mass ratio
	totalMass := rbA.Mass + rbB.Mass
	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(push, rbB.Mass/totalMass))
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(push, rbA.Mass/totalMass))

	velAlongNormal := rl.Vector3DotProduct(rl.Vector3Subtract(rbA.Velocity, rbB.Velocity), normal)
	if velAlongNormal > 0 {
		return
	}
	e := (rbA.Bounciness + rbB.Bounciness) / 2
	j := -(1 + e) * velAlongNormal / (1/rbA.Mass + 1/rbB.Mass)
	impulse := rl.Vector3Scale(normal, j)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, 1/rbA.Mass))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, 1/rbB.Mass))
}

func (p *PhysicsWorld) resolveStaticCollision(obj, static *engine.GameObject, deltaTime float32) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil {
		return
	}
	push, normal, ok := pushOut(obj, static)
	if !ok {
		return
	}
	p.recordCollision(obj, static)

	// Static doesn't move
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, push)

	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, (1+rb.Bounciness)*velAlongNormal))
	}
	if normal.Y > groundNormalY && rb.Friction > 0 {
		keep := 1 / (1 + deltaTime*rb.Friction*10)
		rb.Velocity.X *= keep
		rb.Velocity.Z *= keep
	}
}

// resolveKinematicCollision handles kinematic (player) pushing dynamic objects
func (p *PhysicsWorld) resolveKinematicCollision(kinematic, obj *engine.GameObject) {
	rbObj := engine.GetComponent[*components.Rigidbody](obj)
	if rbObj == nil {
		return
	}
	push, normal, ok := pushOut(kinematic, obj)
	if !ok {
		return
	}
	p.recordCollision(kinematic, obj)

	// Push the dynamic object fully out (kinematic doesn't move)
	obj.Transform.Position = rl.Vector3Subtract(obj.Transform.Position, push)
	rbObj.Wake()

	kinVel := kinematicVelocity(kinematic)
	if along := rl.Vector3DotProduct(kinVel, normal); along < 0 {
		// normal points from obj to kinematic; moving against it means pushing obj.
		rbObj.Velocity = rl.Vector3Add(rbObj.Velocity, rl.Vector3Scale(normal, along))
	}
}

func kinematicVelocity(g *engine.GameObject) rl.Vector3 {
	if pc := engine.GetComponent[engine.PlayerController](g); pc != nil {
		x, y, z := pc.GetVelocity()
		return rl.Vector3{X: x, Y: y, Z: z}
	}
	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		return rb.Velocity
	}
	return rl.Vector3{}
}

// resolveKinematicStaticCollision handles kinematic objects (player) colliding with static objects (walls)
func (p *PhysicsWorld) resolveKinematicStaticCollision(kinematic, static *engine.GameObject, controller engine.PlayerController) {
	push, normal, ok := pushOut(kinematic, static)
	if !ok {
		return
	}
	p.recordCollision(kinematic, static)

	kinematic.Transform.Position = rl.Vector3Add(kinematic.Transform.Position, push)
	if controller == nil {
		return
	}
	_, vy, _ := controller.GetVelocity()
	switch {
	case normal.Y > groundNormalY:
		controller.SetGrounded(true)
		if vy < 0 {
			controller.SetVelocityY(0)
		}
	case normal.Y < -groundNormalY && vy > 0:
		controller.SetVelocityY(0)
	}
}
