package gameplay

import (
	"math"

	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bodies is the part of the physics world spawned actors register with.
type Bodies interface {
	AddObject(g *engine.GameObject)
}

// Visuals builds render-only children. A nil builder adds nothing.
type Visuals struct {
	Gun        func() *engine.GameObject
	EnemyModel func() *engine.GameObject // expected to carry a components.Rig
}

// PlayerTuning holds the FPS controller settings applied on spawn.
type PlayerTuning struct {
	MoveSpeed    float32
	LookSpeed    float32
	JumpStrength float32
}

// PlayerSpawnSystem completes freshly spawned player objects: a kinematic
// body driven by an FPSController, plus a separate gun rig that follows the
// player's eye through a RenderPlayer link.
type PlayerSpawnSystem struct {
	Bodies    Bodies
	Visuals   Visuals
	Tuning    PlayerTuning
	Smoothing SmoothingTuning
	Sway      SwayTuning
}

// SmoothingTuning configures the DelayedTransform on the gun rig.
type SmoothingTuning struct {
	TranslationAlpha float32
	RotationAlpha    float32
	Mode             components.TrailMode
}

// SwayTuning configures the GunWobble on the gun rig.
type SwayTuning struct {
	Amplitude float32
	Frequency float32
}

func NewPlayerSpawnSystem(bodies Bodies, visuals Visuals) *PlayerSpawnSystem {
	fps := components.NewFPSController()
	wobble := components.NewGunWobble()
	return &PlayerSpawnSystem{
		Bodies:  bodies,
		Visuals: visuals,
		Tuning: PlayerTuning{
			MoveSpeed:    fps.MoveSpeed,
			LookSpeed:    fps.LookSpeed,
			JumpStrength: fps.JumpStrength,
		},
		Smoothing: SmoothingTuning{TranslationAlpha: 0, RotationAlpha: 0.75, Mode: components.TrailBlended},
		Sway:      SwayTuning{Amplitude: wobble.Amplitude, Frequency: wobble.Frequency},
	}
}

func (s *PlayerSpawnSystem) Update(scene *engine.Scene, deltaTime float32) {
	for _, g := range scene.Added() {
		if !g.HasTag(components.TagPlayer) || engine.HasComponent[*components.FPSController](g) {
			continue
		}
		g.AddComponent(components.NewKinematicBody())
		g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1.0, Y: 2.6, Z: 1.0}))

		fps := components.NewFPSController()
		fps.MoveSpeed = s.Tuning.MoveSpeed
		fps.LookSpeed = s.Tuning.LookSpeed
		fps.JumpStrength = s.Tuning.JumpStrength
		g.AddComponent(fps)
		s.Bodies.AddObject(g)

		scene.AddGameObject(s.buildGunRig(g))
		log.Info("player: spawned", "uid", g.UID)
	}
}

// buildGunRig returns rig -> offset -> wobble -> gun.
func (s *PlayerSpawnSystem) buildGunRig(player *engine.GameObject) *engine.GameObject {
	rig := engine.NewGameObject("GunRig")
	rig.AddComponent(components.NewRenderPlayer(player))
	smoothing := components.NewDelayedTransform()
	smoothing.TranslationAlpha = s.Smoothing.TranslationAlpha
	smoothing.RotationAlpha = s.Smoothing.RotationAlpha
	smoothing.Mode = s.Smoothing.Mode
	rig.AddComponent(smoothing)

	offset := engine.NewGameObject("GunOffset")
	offset.Transform.Position = rl.Vector3{X: 0.04, Y: -0.1, Z: -0.3}
	rig.AddChild(offset)

	wobble := engine.NewGameObject("GunWobble")
	gw := components.NewGunWobble()
	gw.Amplitude = s.Sway.Amplitude
	gw.Frequency = s.Sway.Frequency
	wobble.AddComponent(gw)
	offset.AddChild(wobble)

	if s.Visuals.Gun != nil {
		gun := s.Visuals.Gun()
		gun.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi)
		wobble.AddChild(gun)
	}
	return rig
}

// EnemyTuning holds the physical settings applied on spawn.
type EnemyTuning struct {
	LinearDamping float32
}

// EnemySpawnSystem gives freshly spawned enemies a dynamic body and a model
// child. The model child is registered one frame later, which is when its
// Rig shows up in Scene.Added for animation binding.
type EnemySpawnSystem struct {
	Bodies  Bodies
	Visuals Visuals
	Tuning  EnemyTuning
}

func NewEnemySpawnSystem(bodies Bodies, visuals Visuals) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		Bodies:  bodies,
		Visuals: visuals,
		Tuning:  EnemyTuning{LinearDamping: 4.0},
	}
}

func (s *EnemySpawnSystem) Update(scene *engine.Scene, deltaTime float32) {
	for _, g := range scene.Added() {
		if !g.HasTag(components.TagEnemy) || engine.HasComponent[*components.Rigidbody](g) {
			continue
		}
		rb := components.NewRigidbody()
		rb.LinearDamping = s.Tuning.LinearDamping
		rb.Friction = 0
		rb.Bounciness = 0
		rb.CanSleep = false
		g.AddComponent(rb)
		g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.6, Y: 2.2, Z: 0.6}))
		s.Bodies.AddObject(g)

		if s.Visuals.EnemyModel != nil {
			model := s.Visuals.EnemyModel()
			model.Transform.Position = rl.Vector3{Y: -1}
			model.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
			g.AddChild(model)
		}
		log.Info("enemy: spawned", "uid", g.UID)
	}
}
