package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRigidbodySleepsWhenSlow(t *testing.T) {
	rb := NewRigidbody()
	rb.Velocity = rl.Vector3{X: 0.01}

	for range 4 {
		rb.TrySleep(0.1)
	}
	if rb.IsSleeping {
		t.Fatal("body slept before the threshold time")
	}
	rb.TrySleep(0.2)
	if !rb.IsSleeping {
		t.Fatal("Expected body to sleep after 0.6s of low velocity")
	}
	if rb.Velocity != (rl.Vector3{}) {
		t.Errorf("Expected velocity zeroed on sleep, got %v", rb.Velocity)
	}
}

func TestRigidbodyNeverSleepsUnderForce(t *testing.T) {
	rb := NewRigidbody()
	rb.SetForce(rl.Vector3{X: 1})

	for range 20 {
		rb.TrySleep(0.1)
	}
	if rb.IsSleeping {
		t.Error("body with an active force fell asleep")
	}
}

func TestRigidbodySetForceWakes(t *testing.T) {
	rb := NewRigidbody()
	rb.IsSleeping = true

	rb.SetForce(rl.Vector3{})
	if !rb.IsSleeping {
		t.Error("unchanged force should not wake the body")
	}

	rb.SetForce(rl.Vector3{Z: 3})
	if rb.IsSleeping {
		t.Error("Expected new force to wake the body")
	}
	if rb.Force.Z != 3 {
		t.Errorf("Expected force Z=3, got %v", rb.Force.Z)
	}
}

func TestKinematicBody(t *testing.T) {
	rb := NewKinematicBody()
	if !rb.IsKinematic || rb.UseGravity || rb.CanSleep {
		t.Errorf("unexpected kinematic defaults: %+v", rb)
	}
}
