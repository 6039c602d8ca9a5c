package physics

import (
	"math"

	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CellSize is the edge length of a spatial grid cell.
const CellSize = 4.0

// CellKey identifies a grid cell.
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// staticGrid indexes static colliders by every cell their box touches.
type staticGrid struct {
	cells map[CellKey][]*engine.GameObject
}

func newStaticGrid() *staticGrid {
	return &staticGrid{cells: make(map[CellKey][]*engine.GameObject)}
}

func (s *staticGrid) clear() {
	clear(s.cells)
}

func (s *staticGrid) insert(g *engine.GameObject, box AABB) {
	lo, hi := posToCell(box.Min), posToCell(box.Max)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				key := CellKey{x, y, z}
				s.cells[key] = append(s.cells[key], g)
			}
		}
	}
}

// query returns every indexed object whose cells overlap box, each once.
func (s *staticGrid) query(box AABB) []*engine.GameObject {
	lo, hi := posToCell(box.Min), posToCell(box.Max)
	seen := make(map[uint64]bool)
	var result []*engine.GameObject
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				for _, g := range s.cells[CellKey{x, y, z}] {
					if seen[g.UID] {
						continue
					}
					seen[g.UID] = true
					result = append(result, g)
				}
			}
		}
	}
	return result
}
