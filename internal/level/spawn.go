package level

import (
	"fmt"

	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collisions is the part of the physics world the level registers blocks with.
type Collisions interface {
	AddObject(g *engine.GameObject)
	RemoveObject(g *engine.GameObject)
}

// BlockVisual attaches rendering components to a freshly built block.
type BlockVisual func(block *engine.GameObject)

// Spawn builds one static unit-cube collider per block under a single root
// tagged components.TagLevel. The root and its blocks are added to scene and
// every block is registered with collisions. visual may be nil.
func Spawn(scene *engine.Scene, collisions Collisions, grid *Grid, visual BlockVisual) *engine.GameObject {
	root := engine.NewGameObject("Level")
	root.Tags = append(root.Tags, components.TagLevel)

	blocks := grid.Blocks()
	for _, b := range blocks {
		block := engine.NewGameObject(fmt.Sprintf("Block_%d_%d_%d", b.X, b.Y, b.Z))
		block.Transform.Position = rl.Vector3{X: float32(b.X), Y: float32(b.Y), Z: float32(b.Z)}
		block.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
		if visual != nil {
			visual(block)
		}
		root.AddChild(block)
	}

	scene.AddGameObject(root)
	for _, block := range root.Children {
		collisions.AddObject(block)
	}
	log.Info("level: spawned", "rows", len(grid.Heights), "blocks", len(blocks))
	return root
}

// Clear removes a level previously returned by Spawn.
func Clear(scene *engine.Scene, collisions Collisions, root *engine.GameObject) {
	if root == nil {
		return
	}
	for _, block := range root.Children {
		collisions.RemoveObject(block)
	}
	scene.RemoveGameObject(root)
}
