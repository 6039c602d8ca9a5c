package game

import (
	"floatme/internal/components"
	"floatme/internal/engine"
	"floatme/internal/level"

	"github.com/charmbracelet/log"
)

// LevelReloader swaps the live level for a freshly parsed one whenever its
// source file changes. A file that fails to load is logged and the current
// level stays in place.
type LevelReloader struct {
	Path       string
	Collisions level.Collisions
	Visual     level.BlockVisual
	Root       *engine.GameObject

	changes <-chan string
	errs    <-chan error
}

func NewLevelReloader(path string, collisions level.Collisions, visual level.BlockVisual) *LevelReloader {
	return &LevelReloader{Path: path, Collisions: collisions, Visual: visual}
}

// Watch starts consuming change notifications from w.
func (r *LevelReloader) Watch(w *level.Watcher) {
	r.changes = w.Events
	r.errs = w.Errors
}

// Spawn loads the level file and replaces the current level with it.
func (r *LevelReloader) Spawn(scene *engine.Scene) error {
	grid, err := level.Load(r.Path)
	if err != nil {
		return err
	}
	level.Clear(scene, r.Collisions, r.Root)
	r.Root = level.Spawn(scene, r.Collisions, grid, r.Visual)
	resetSmoothing(scene)
	return nil
}

// resetSmoothing drops the trailing pose of every smoothed object so nothing
// blends across a level swap.
func resetSmoothing(scene *engine.Scene) {
	for _, d := range engine.Query[*components.DelayedTransform](scene) {
		if d.Initialized() {
			d.Reset()
			log.Debug("level: smoothing reset", "uid", d.GetGameObject().UID)
		}
	}
}

func (r *LevelReloader) Update(scene *engine.Scene, deltaTime float32) {
	select {
	case err, ok := <-r.errs:
		if ok {
			log.Warn("level: watch error", "err", err)
		}
	default:
	}

	select {
	case _, ok := <-r.changes:
		if !ok {
			r.changes = nil
			return
		}
		if err := r.Spawn(scene); err != nil {
			log.Error("level: reload failed, keeping current level", "path", r.Path, "err", err)
			return
		}
		log.Info("level: reloaded", "path", r.Path)
	default:
	}
}
