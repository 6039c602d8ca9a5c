package gameplay

import (
	"math"
	"testing"

	"floatme/internal/components"
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type bodyRecorder struct {
	added []*engine.GameObject
}

func (b *bodyRecorder) AddObject(g *engine.GameObject) { b.added = append(b.added, g) }

func testVisuals() Visuals {
	return Visuals{
		Gun: func() *engine.GameObject { return engine.NewGameObject("gun") },
		EnemyModel: func() *engine.GameObject {
			g := engine.NewGameObject("enemy_model")
			g.AddComponent(components.NewRig([]rl.ModelAnimation{{FrameCount: 48}}))
			return g
		},
	}
}

func TestPlayerSpawn(t *testing.T) {
	scene := engine.NewScene("test")
	bodies := &bodyRecorder{}
	sys := NewPlayerSpawnSystem(bodies, testVisuals())
	player := newActor(scene, "player", components.TagPlayer, rl.Vector3{Y: 2.6})

	scene.Flush()
	sys.Update(scene, 1.0/60)
	scene.Flush()
	sys.Update(scene, 1.0/60)

	if len(bodies.added) != 1 || bodies.added[0] != player {
		t.Fatalf("Expected player registered once, got %d", len(bodies.added))
	}
	rb := engine.GetComponent[*components.Rigidbody](player)
	if rb == nil || !rb.IsKinematic {
		t.Error("Expected a kinematic body")
	}
	col := engine.GetComponent[*components.BoxCollider](player)
	if col == nil || col.Size != (rl.Vector3{X: 1, Y: 2.6, Z: 1}) {
		t.Errorf("unexpected collider %+v", col)
	}
	fps := engine.GetComponent[*components.FPSController](player)
	if fps == nil || fps.InputEnabled {
		t.Error("Expected an FPS controller with input disabled")
	}
	if math.Abs(float64(fps.Yaw)-math.Pi*5/4) > 1e-5 || math.Abs(float64(fps.Pitch)+math.Pi/6) > 1e-5 {
		t.Errorf("unexpected initial look yaw=%v pitch=%v", fps.Yaw, fps.Pitch)
	}

	rigs := engine.Query[*components.RenderPlayer](scene)
	if len(rigs) != 1 {
		t.Fatalf("Expected one gun rig, got %d", len(rigs))
	}
	rig := rigs[0].GetGameObject()
	if rigs[0].Logical.Get(scene) != player || !engine.HasComponent[*components.DelayedTransform](rig) {
		t.Error("gun rig not linked to the player or not smoothed")
	}
	offset := rig.Children[0]
	if offset.Transform.Position != (rl.Vector3{X: 0.04, Y: -0.1, Z: -0.3}) {
		t.Errorf("unexpected offset %v", offset.Transform.Position)
	}
	wobble := offset.Children[0]
	if !engine.HasComponent[*components.GunWobble](wobble) || len(wobble.Children) != 1 {
		t.Fatal("Expected wobble node carrying the gun")
	}
	gunForward := wobble.Children[0].Transform.Forward()
	if math.Abs(float64(gunForward.Z-1)) > 1e-5 {
		t.Errorf("Expected gun turned half way round, forward %v", gunForward)
	}
}

func TestPlayerSpawnAppliesTuning(t *testing.T) {
	scene := engine.NewScene("test")
	sys := NewPlayerSpawnSystem(&bodyRecorder{}, Visuals{})
	sys.Tuning.MoveSpeed = 9
	sys.Smoothing.Mode = components.TrailRaw
	sys.Sway = SwayTuning{Amplitude: 0.5, Frequency: 2}
	player := newActor(scene, "player", components.TagPlayer, rl.Vector3{})

	scene.Flush()
	sys.Update(scene, 1.0/60)

	if fps := engine.GetComponent[*components.FPSController](player); fps.MoveSpeed != 9 {
		t.Errorf("Expected move speed 9, got %v", fps.MoveSpeed)
	}
	wobbles := engine.Query[*components.GunWobble](scene)
	if len(wobbles) != 1 || wobbles[0].Amplitude != 0.5 || wobbles[0].Frequency != 2 {
		t.Errorf("Expected tuned wobble, got %+v", wobbles)
	}
	smoothers := engine.Query[*components.DelayedTransform](scene)
	if len(smoothers) != 1 || smoothers[0].Mode != components.TrailRaw {
		t.Error("Expected raw trail on the gun rig")
	}
}

func TestEnemySpawnAndAnimationBinding(t *testing.T) {
	scene := engine.NewScene("test")
	bodies := &bodyRecorder{}
	spawn := NewEnemySpawnSystem(bodies, testVisuals())
	bind := NewAnimationBindSystem()
	enemy := newActor(scene, "enemy", components.TagEnemy, rl.Vector3{X: 5, Y: 2, Z: 5})

	frame := func() {
		scene.Flush()
		spawn.Update(scene, 1.0/60)
		bind.Update(scene, 1.0/60)
	}

	frame()
	rb := engine.GetComponent[*components.Rigidbody](enemy)
	if rb == nil || rb.IsKinematic || rb.LinearDamping != 4 {
		t.Fatalf("unexpected enemy body %+v", rb)
	}
	if col := engine.GetComponent[*components.BoxCollider](enemy); col == nil || col.Size != (rl.Vector3{X: 0.6, Y: 2.2, Z: 0.6}) {
		t.Errorf("unexpected enemy collider %+v", col)
	}
	if len(enemy.Children) != 1 {
		t.Fatalf("Expected a model child, got %d", len(enemy.Children))
	}
	model := enemy.Children[0]
	if model.Transform.Position != (rl.Vector3{Y: -1}) || model.Transform.Scale != (rl.Vector3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("unexpected model transform %+v", model.Transform)
	}
	if engine.HasComponent[*components.Animator](model) {
		t.Fatal("animation bound before the rig was published")
	}

	frame()
	anim := engine.GetComponent[*components.Animator](model)
	if anim == nil {
		t.Fatal("Expected animation bound once the rig was published")
	}
	if anim.Clip != 0 || anim.Speed != 2 || !anim.Looping || anim.Time != 0 || !anim.Playing {
		t.Errorf("unexpected animator %+v", anim)
	}
	if anim.Length != float32(48)/components.DefaultAnimationFrameRate {
		t.Errorf("Expected clip length from 48 frames, got %v", anim.Length)
	}

	frame()
	count := 0
	for _, c := range model.Components() {
		if _, ok := c.(*components.Animator); ok {
			count++
		}
	}
	if count != 1 || len(bodies.added) != 1 {
		t.Errorf("Expected exactly one animator and one body, got %d/%d", count, len(bodies.added))
	}
}

func TestAnimationBindSkipsRigWithoutClips(t *testing.T) {
	scene := engine.NewScene("test")
	g := engine.NewGameObject("model")
	g.AddComponent(components.NewRig(nil))
	scene.AddGameObject(g)

	scene.Flush()
	NewAnimationBindSystem().Update(scene, 1.0/60)

	if engine.HasComponent[*components.Animator](g) {
		t.Error("bound an animator to a rig with no clips")
	}
}
