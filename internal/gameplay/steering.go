package gameplay

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SteeringSystem turns every enemy toward the player and pushes it there with
// a constant force. The physics world's damping sets the terminal speed.
type SteeringSystem struct {
	TurnRate float32 // fraction of the remaining turn taken per frame
	Force    float32
}

func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{TurnRate: 0.03, Force: 10}
}

func (s *SteeringSystem) Update(scene *engine.Scene, deltaTime float32) {
	players := scene.FindByTag(components.TagPlayer)
	if len(players) != 1 {
		log.Debug("steering: skipped", "players", len(players))
		return
	}
	target := players[0].WorldPosition()

	for _, enemy := range scene.FindByTag(components.TagEnemy) {
		if !enemy.Active {
			continue
		}
		bearing, ok := flatten(rl.Vector3Subtract(target, enemy.WorldPosition()))
		if !ok {
			continue
		}
		s.turn(enemy, bearing)

		if rb := engine.GetComponent[*components.Rigidbody](enemy); rb != nil {
			rb.SetForce(rl.Vector3Scale(bearing, s.Force))
		}
	}
}

func (s *SteeringSystem) turn(enemy *engine.GameObject, bearing rl.Vector3) {
	rot := enemy.Transform.Rotation
	forward, ok := flatten(enemy.Transform.Back())
	if !ok {
		return
	}
	arc := RotationArc(forward, bearing)
	goal := rl.QuaternionMultiply(arc, rot)
	enemy.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionSlerp(rot, goal, s.TurnRate))
}
