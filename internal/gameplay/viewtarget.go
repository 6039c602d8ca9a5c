package gameplay

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ViewTargetSystem moves each control source's marker to the point the source
// is looking at. The ray skips the source itself and every FPS-controlled
// body, starts OriginOffset in front of the source and reaches MaxDistance.
type ViewTargetSystem struct {
	Raycaster    engine.Raycaster
	OriginOffset float32
	MinDistance  float32
	MaxDistance  float32

	warned map[[2]uint64]bool
}

func NewViewTargetSystem(raycaster engine.Raycaster) *ViewTargetSystem {
	return &ViewTargetSystem{
		Raycaster:    raycaster,
		OriginOffset: 1.0,
		MinDistance:  2.0,
		MaxDistance:  100,
		warned:       make(map[[2]uint64]bool),
	}
}

func notController(g *engine.GameObject) bool {
	return !engine.HasComponent[*components.FPSController](g)
}

func (s *ViewTargetSystem) Update(scene *engine.Scene, deltaTime float32) {
	claimed := make(map[uint64]uint64)
	for _, src := range engine.Query[*components.ControlViewTarget](scene) {
		source := src.GetGameObject()
		marker := src.Target.Get(scene)
		if source == nil || marker == nil {
			log.Debug("view target: no marker", "target", src.Target.UID)
			continue
		}
		if owner, ok := claimed[marker.UID]; ok && owner != source.UID {
			s.warnShared(marker, source)
			continue
		}
		claimed[marker.UID] = source.UID

		if pos, ok := s.place(source); ok {
			marker.Transform.Position = pos
		}
	}
}

// place returns where the marker for source should go, or false on a miss.
func (s *ViewTargetSystem) place(source *engine.GameObject) (rl.Vector3, bool) {
	world := source.WorldTransform()
	dir := world.Forward()
	origin := rl.Vector3Add(world.Position, rl.Vector3Scale(dir, s.OriginOffset))
	reach := s.MaxDistance - s.OriginOffset
	if reach <= 0 {
		return rl.Vector3{}, false
	}

	filter := engine.QueryFilter{
		Exclude:   []*engine.GameObject{source},
		Predicate: notController,
	}
	hit, ok := s.Raycaster.Raycast(origin, dir, reach, filter)
	if !ok {
		log.Debug("view target: no hit", "source", source.UID)
		return rl.Vector3{}, false
	}

	dist := s.OriginOffset + hit.Distance
	if dist < s.MinDistance {
		dist = s.MinDistance
	}
	return rl.Vector3Add(world.Position, rl.Vector3Scale(dir, dist)), true
}

func (s *ViewTargetSystem) warnShared(marker, source *engine.GameObject) {
	if s.warned == nil {
		s.warned = make(map[[2]uint64]bool)
	}
	key := [2]uint64{marker.UID, source.UID}
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	log.Warn("view target: marker already driven by another source", "marker", marker.UID, "source", source.UID)
}
