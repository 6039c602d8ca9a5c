// Package game wires the floatme systems into a raylib frame loop.
package game

import (
	"fmt"

	"floatme/internal/assets"
	"floatme/internal/components"
	"floatme/internal/config"
	"floatme/internal/engine"
	"floatme/internal/gameplay"
	"floatme/internal/level"
	"floatme/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	World     *world.World
	Scheduler *Scheduler
	Cursor    *gameplay.CursorCapture

	manager  *assets.Manager
	assets   *assets.GameAssets
	levels   *LevelReloader
	watcher  *level.Watcher
	renderer *world.Renderer
	hud      *HUD
}

func New(cfg config.Config) *Game {
	g := &Game{
		Config:    cfg,
		World:     world.New(cfg.Physics.Gravity),
		Scheduler: NewScheduler(StateAssetLoading),
		Cursor:    gameplay.NewCursorCapture(rlPointer{}),
		manager:   assets.NewManager(),
		renderer:  world.NewRenderer(rl.NewColor(100, 149, 237, 255)),
	}
	g.hud = NewHUD(g.Cursor)
	g.levels = NewLevelReloader(cfg.Level.Path, g.World.Physics, g.blockVisual)
	return g
}

// Run opens the window and drives frames until it is closed. Errors from
// asset loading or startup end the loop.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	// Escape releases the cursor instead of closing the window.
	rl.SetExitKey(0)
	rl.SetTargetFPS(g.Config.Window.TargetFPS)

	defer g.shutdown()
	g.register()

	scene := g.World.Scene
	for !rl.WindowShouldClose() {
		scene.Flush()
		if err := g.Scheduler.Run(scene, rl.GetFrameTime()); err != nil {
			return err
		}
		g.renderer.Draw(scene, g.hud.Draw)
	}
	return nil
}

func (g *Game) register() {
	cfg := g.Config
	s := g.Scheduler

	s.OnEnter(StateAssetLoading, g.loadAssets)
	s.OnEnter(StatePlaying, g.startup)
	if cfg.Level.Watch {
		s.OnEnter(StatePlaying, g.watchLevel)
	}

	visuals := gameplay.Visuals{Gun: g.gunVisual, EnemyModel: g.enemyVisual}

	players := gameplay.NewPlayerSpawnSystem(g.World.Physics, visuals)
	players.Tuning = gameplay.PlayerTuning{
		MoveSpeed:    cfg.Player.MoveSpeed,
		LookSpeed:    cfg.Player.LookSpeed,
		JumpStrength: cfg.Player.JumpStrength,
	}
	players.Smoothing = gameplay.SmoothingTuning{
		TranslationAlpha: cfg.Smoothing.TranslationAlpha,
		RotationAlpha:    cfg.Smoothing.RotationAlpha,
		Mode:             trailMode(cfg.Smoothing.Trail),
	}
	players.Sway = gameplay.SwayTuning{Amplitude: cfg.Sway.Amplitude, Frequency: cfg.Sway.Frequency}

	enemies := gameplay.NewEnemySpawnSystem(g.World.Physics, visuals)
	enemies.Tuning.LinearDamping = cfg.Enemy.LinearDamping

	anims := gameplay.NewAnimationBindSystem()
	anims.Speed = cfg.Enemy.AnimSpeed

	steering := gameplay.NewSteeringSystem()
	steering.TurnRate = cfg.Enemy.TurnRate
	steering.Force = cfg.Enemy.Force

	views := gameplay.NewViewTargetSystem(g.World)
	views.OriginOffset = cfg.ViewTarget.OriginOffset
	views.MinDistance = cfg.ViewTarget.MinDistance
	views.MaxDistance = cfg.ViewTarget.MaxDistance

	s.Add(PhasePreUpdate, StatePlaying, NewInputSystem(g.Cursor))
	s.Add(PhasePreUpdate, StatePlaying, players)

	s.Add(PhaseUpdate, StatePlaying, enemies)
	s.Add(PhaseUpdate, StatePlaying, anims)
	s.Add(PhaseUpdate, StatePlaying, SystemFunc(func(scene *engine.Scene, dt float32) { scene.Update(dt) }))
	s.Add(PhaseUpdate, StatePlaying, SystemFunc(g.World.StepPhysics))
	s.Add(PhaseUpdate, StatePlaying, gameplay.NewRenderPlayerSystem())
	s.Add(PhaseUpdate, StatePlaying, steering)
	s.Add(PhaseUpdate, StatePlaying, views)
	s.Add(PhaseUpdate, StatePlaying, gameplay.NewSwaySystem())
	s.Add(PhaseUpdate, StatePlaying, g.levels)

	s.Add(PhasePostUpdate, StatePlaying, gameplay.NewSmoothingSystem())
}

func trailMode(name string) components.TrailMode {
	if name == "raw" {
		return components.TrailRaw
	}
	return components.TrailBlended
}

func (g *Game) loadAssets(scene *engine.Scene) error {
	loaded, err := assets.LoadGameAssets(g.manager, g.Config.Assets)
	if err != nil {
		return fmt.Errorf("game: assets: %w", err)
	}
	g.assets = loaded
	g.Scheduler.SetState(StatePlaying)
	return nil
}

func (g *Game) watchLevel(scene *engine.Scene) error {
	w, err := level.NewWatcher(g.Config.Level.Path)
	if err != nil {
		log.Warn("level: hot reload disabled", "err", err)
		return nil
	}
	g.watcher = w
	g.levels.Watch(w)
	log.Info("level: watching", "path", g.Config.Level.Path)
	return nil
}

func (g *Game) shutdown() {
	if g.watcher != nil {
		g.watcher.Close()
	}
	g.World.Unload()
	g.manager.Unload()
}
