package gameplay

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
)

// AnimationBindSystem starts playback on every rig the first frame it is
// published in Scene.Added. Each rig is bound at most once.
type AnimationBindSystem struct {
	Clip    int
	Speed   float32
	Looping bool
}

func NewAnimationBindSystem() *AnimationBindSystem {
	return &AnimationBindSystem{Clip: 0, Speed: 2, Looping: true}
}

func (s *AnimationBindSystem) Update(scene *engine.Scene, deltaTime float32) {
	for _, g := range scene.Added() {
		rig := engine.GetComponent[*components.Rig](g)
		if rig == nil || engine.HasComponent[*components.Animator](g) {
			continue
		}
		clip, ok := rig.Clip(s.Clip)
		if !ok {
			log.Warn("animation: rig has no clip", "uid", g.UID, "clip", s.Clip, "clips", len(rig.Clips))
			continue
		}
		anim := components.NewAnimator(s.Clip, s.Speed, s.Looping)
		anim.SetClipLength(clip.FrameCount)
		g.AddComponent(anim)
		log.Debug("animation: bound", "uid", g.UID)
	}
}
