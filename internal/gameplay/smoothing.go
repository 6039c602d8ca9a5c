package gameplay

import (
	"floatme/internal/components"
	"floatme/internal/engine"
)

// SmoothingSystem applies every DelayedTransform to its owner's local
// transform. It must run after all gameplay writes of the frame.
type SmoothingSystem struct{}

func NewSmoothingSystem() *SmoothingSystem {
	return &SmoothingSystem{}
}

func (s *SmoothingSystem) Update(scene *engine.Scene, deltaTime float32) {
	for _, d := range engine.Query[*components.DelayedTransform](scene) {
		if g := d.GetGameObject(); g != nil && g.Active {
			d.Apply(&g.Transform)
		}
	}
}
