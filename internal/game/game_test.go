package game

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"floatme/internal/assets"
	"floatme/internal/components"
	"floatme/internal/config"
	"floatme/internal/engine"
	"floatme/internal/level"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func writeLevel(t *testing.T, path, text string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestGame(t *testing.T, levelText string) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Level.Path = filepath.Join(t.TempDir(), "level.txt")
	writeLevel(t, cfg.Level.Path, levelText)

	g := New(cfg)
	g.assets = &assets.GameAssets{}
	return g
}

func TestStartupPopulatesScene(t *testing.T) {
	g := newTestGame(t, "11\n11")
	scene := g.World.Scene

	if err := g.startup(scene); err != nil {
		t.Fatal(err)
	}

	if n := len(scene.FindByTag(components.TagLevel)); n != 1 {
		t.Errorf("Expected 1 level root, got %d", n)
	}
	if n := len(g.World.Physics.Statics); n != 8 {
		t.Errorf("Expected 8 static blocks, got %d", n)
	}
	if n := len(g.World.Physics.Objects); n != 1 {
		t.Errorf("Expected only the cube as a dynamic body, got %d", n)
	}

	players := scene.FindByTag(components.TagPlayer)
	if len(players) != 1 || players[0].Transform.Position != playerStart {
		t.Fatalf("Expected one player at %v, got %v", playerStart, players)
	}
	if n := len(scene.FindByTag(components.TagEnemy)); n != 2 {
		t.Errorf("Expected 2 enemies, got %d", n)
	}

	markers := scene.FindByTag(components.TagViewTarget)
	if len(markers) != 1 {
		t.Fatalf("Expected one marker, got %d", len(markers))
	}
	if engine.HasComponent[*components.BoxCollider](markers[0]) {
		t.Error("marker must not be hit by its own ray")
	}

	camera := scene.FindByName("Camera")
	link := engine.GetComponent[*components.ControlViewTarget](camera)
	if link == nil || link.Target.Get(scene) != markers[0] {
		t.Error("Expected camera to drive the marker")
	}
	follow := engine.GetComponent[*components.RenderPlayer](camera)
	if follow == nil || follow.Logical.Get(scene) != players[0] {
		t.Error("Expected camera to follow the player")
	}

	cube := scene.FindByName("Cube")
	rb := engine.GetComponent[*components.Rigidbody](cube)
	if rb == nil || rb.Mass != 400 || rb.Friction != 0.99 {
		t.Errorf("Expected 400 kg cube with friction 0.99, got %+v", rb)
	}
}

func TestStartupFailsWithoutLevel(t *testing.T) {
	g := newTestGame(t, "")
	if err := g.startup(g.World.Scene); err == nil {
		t.Error("Expected empty level to fail startup")
	}
}

func TestLevelReloaderSwapsLevel(t *testing.T) {
	g := newTestGame(t, "1")
	scene := g.World.Scene
	r := g.levels
	if err := r.Spawn(scene); err != nil {
		t.Fatal(err)
	}
	first := r.Root

	changes := make(chan string, 1)
	r.changes = changes

	rig := engine.NewGameObject("GunRig")
	smoother := components.NewDelayedTransform()
	rig.AddComponent(smoother)
	scene.AddGameObject(rig)
	smoother.Apply(&rig.Transform)

	writeLevel(t, r.Path, "22")
	changes <- r.Path
	r.Update(scene, 0)

	if smoother.Initialized() {
		t.Error("Expected smoothing reset after the level swap")
	}

	if r.Root == first {
		t.Fatal("Expected a new level root")
	}
	if scene.FindByUID(first.UID) != nil {
		t.Error("Expected old level removed from scene")
	}
	if n := len(g.World.Physics.Statics); n != 6 {
		t.Errorf("Expected 6 blocks after reload, got %d", n)
	}
}

func TestLevelReloaderKeepsLevelOnError(t *testing.T) {
	g := newTestGame(t, "1")
	scene := g.World.Scene
	r := g.levels
	if err := r.Spawn(scene); err != nil {
		t.Fatal(err)
	}
	first := r.Root

	changes := make(chan string, 1)
	r.changes = changes
	writeLevel(t, r.Path, "1x")
	changes <- r.Path
	r.Update(scene, 0)

	if r.Root != first || scene.FindByUID(first.UID) == nil {
		t.Error("Expected current level to stay after a bad reload")
	}
	if n := len(g.World.Physics.Statics); n != 2 {
		t.Errorf("Expected 2 blocks to remain, got %d", n)
	}
}

func TestLevelReloaderIdleWithoutWatcher(t *testing.T) {
	g := newTestGame(t, "1")
	g.levels.Update(g.World.Scene, 0)
	if g.levels.Root != nil {
		t.Error("Expected no level without a change notification")
	}
}

func TestTrailMode(t *testing.T) {
	if trailMode("raw") != components.TrailRaw || trailMode("blended") != components.TrailBlended {
		t.Error("unexpected trail mode mapping")
	}
}

func TestShippedLevelHasFloorUnderSpawns(t *testing.T) {
	grid, err := level.Load(filepath.Join("..", "..", "level.txt"))
	if err != nil {
		t.Fatal(err)
	}

	spawns := map[string]rl.Vector3{"player": playerStart, "cube": cubeStart}
	for i, pos := range enemyStarts {
		spawns[fmt.Sprintf("enemy %d", i)] = pos
	}
	for name, pos := range spawns {
		x, z := int(math.Round(float64(pos.X))), int(math.Round(float64(pos.Z)))
		if level.StackSize(grid.Height(x, z)) == 0 {
			t.Errorf("%s at %v has no block column under it", name, pos)
		}
	}
}
