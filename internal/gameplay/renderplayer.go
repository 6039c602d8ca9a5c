package gameplay

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
)

// RenderPlayerSystem copies the logical player's eye pose onto every
// RenderPlayer object. It runs before smoothing so smoothed objects trail
// the fresh pose.
type RenderPlayerSystem struct{}

func NewRenderPlayerSystem() *RenderPlayerSystem {
	return &RenderPlayerSystem{}
}

func (s *RenderPlayerSystem) Update(scene *engine.Scene, deltaTime float32) {
	for _, rp := range engine.Query[*components.RenderPlayer](scene) {
		fps := engine.GetComponent[*components.FPSController](rp.Logical.Get(scene))
		if fps == nil {
			log.Debug("render player: logical player missing", "uid", rp.Logical.UID)
			continue
		}
		g := rp.GetGameObject()
		g.Transform.Position = fps.EyePosition()
		g.Transform.Rotation = fps.Orientation()
	}
}
