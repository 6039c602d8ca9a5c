package game

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	cubeStart   = rl.Vector3{X: 7, Y: 5, Z: 7}
	playerStart = rl.Vector3{X: 0, Y: 2.6, Z: 0}
	enemyStarts = []rl.Vector3{{X: 5, Y: 2, Z: 5}, {X: 10, Y: 2, Z: 5}}
	markerColor = rl.NewColor(200, 10, 30, 255)
)

// startup populates the scene when play begins. Players and enemies are
// plain tagged objects here; the spawn systems complete them next frame.
func (g *Game) startup(scene *engine.Scene) error {
	if err := g.levels.Spawn(scene); err != nil {
		return err
	}

	cube := engine.NewGameObject("Cube")
	cube.Transform.Position = cubeStart
	rb := components.NewRigidbody()
	rb.Mass = 400
	rb.Friction = 0.99
	cube.AddComponent(rb)
	cube.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	cube.AddComponent(components.NewSharedModelRenderer(g.assets.Block, rl.White))
	scene.AddGameObject(cube)
	g.World.Physics.AddObject(cube)

	player := engine.NewGameObject("Player")
	player.Transform.Position = playerStart
	player.Tags = append(player.Tags, components.TagPlayer)
	scene.AddGameObject(player)

	marker := engine.NewGameObject("ViewTarget")
	marker.Tags = append(marker.Tags, components.TagViewTarget)
	marker.AddComponent(components.NewMeshRenderer(components.MeshSphere, markerColor, rl.Vector3{X: 0.2}))
	scene.AddGameObject(marker)

	camera := engine.NewGameObject("Camera")
	camera.AddComponent(components.NewRenderPlayer(player))
	camera.AddComponent(components.NewControlViewTarget(marker))
	camera.AddComponent(components.NewCamera())
	scene.AddGameObject(camera)

	for _, pos := range enemyStarts {
		enemy := engine.NewGameObject("Enemy")
		enemy.Transform.Position = pos
		enemy.Tags = append(enemy.Tags, components.TagEnemy)
		scene.AddGameObject(enemy)
	}

	log.Info("game: started", "objects", len(scene.GameObjects))
	return nil
}

func (g *Game) blockVisual(block *engine.GameObject) {
	block.AddComponent(components.NewSharedModelRenderer(g.assets.Block, rl.White))
}

func (g *Game) gunVisual() *engine.GameObject {
	gun := engine.NewGameObject("Gun")
	gun.AddComponent(components.NewSharedModelRenderer(g.assets.Gun, rl.White))
	return gun
}

func (g *Game) enemyVisual() *engine.GameObject {
	model := engine.NewGameObject("EnemyModel")
	model.AddComponent(components.NewSharedModelRenderer(g.assets.Enemy, rl.White))
	model.AddComponent(components.NewRig(g.assets.EnemyClips))
	return model
}
