package gameplay

import (
	"math"

	"floatme/internal/components"
	"floatme/internal/engine"
)

// SwaySystem bobs every GunWobble object on a sine of elapsed time.
type SwaySystem struct {
	elapsed float64
}

func NewSwaySystem() *SwaySystem {
	return &SwaySystem{}
}

func (s *SwaySystem) Update(scene *engine.Scene, deltaTime float32) {
	s.elapsed += float64(deltaTime)
	for _, w := range engine.Query[*components.GunWobble](scene) {
		g := w.GetGameObject()
		g.Transform.Position.Y = w.Amplitude * float32(math.Sin(float64(w.Frequency)*s.elapsed))
	}
}
