package components

import (
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.05 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.5  // seconds of low velocity before sleeping
)

// Rigidbody is a simulated body. Rotation is never integrated: bodies keep
// whatever orientation gameplay code gives them.
type Rigidbody struct {
	engine.BaseComponent
	Velocity      rl.Vector3
	Force         rl.Vector3 // external force, persists until changed
	Mass          float32
	LinearDamping float32 // v /= 1 + dt*damping each step
	Bounciness    float32 // 0 = no bounce, 1 = perfect bounce
	Friction      float32 // 0 = ice, 1 = stops immediately
	UseGravity    bool
	IsKinematic   bool // moves itself, pushes dynamics, is never pushed

	// Sleep state - sleeping objects skip integration
	IsSleeping bool
	CanSleep   bool
	sleepTimer float32
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		Bounciness: 0.1,
		Friction:   0.2,
		UseGravity: true,
		CanSleep:   true,
	}
}

// NewKinematicBody returns a body driven by its own controller.
func NewKinematicBody() *Rigidbody {
	rb := NewRigidbody()
	rb.IsKinematic = true
	rb.UseGravity = false
	rb.CanSleep = false
	return rb
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep puts the body to sleep after it has been slow for long enough.
// Bodies with an active force never sleep.
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}
	if rl.Vector3Length(r.Force) > 0 {
		r.sleepTimer = 0
		return
	}

	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}

// SetForce replaces the external force and wakes the body if it changed.
func (r *Rigidbody) SetForce(f rl.Vector3) {
	if f != r.Force {
		r.Wake()
	}
	r.Force = f
}
