package world

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Drawable is any component that renders itself in 3D mode.
type Drawable interface {
	engine.Component
	Draw()
}

// Renderer draws the scene from the first camera it finds. Objects with a
// collider are culled against the camera frustum by their bounding sphere;
// everything else is always drawn.
type Renderer struct {
	Background rl.Color
	Culled     int
	drawList   []Drawable
}

func NewRenderer(background rl.Color) *Renderer {
	return &Renderer{Background: background}
}

// Draw renders one frame. Overlay runs after 3D mode for HUD drawing.
func (r *Renderer) Draw(scene *engine.Scene, overlay func()) {
	rl.BeginDrawing()
	rl.ClearBackground(r.Background)

	if cam := ActiveCamera(scene); cam != nil {
		camera := cam.GetRaylibCamera()
		aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
		frustum := NewFrustum(camera, aspect, cam.Near, cam.Far)

		rl.BeginMode3D(camera)
		for _, d := range r.visible(scene, &frustum) {
			d.Draw()
		}
		rl.EndMode3D()
	}

	if overlay != nil {
		overlay()
	}
	rl.EndDrawing()
}

// ActiveCamera returns the first camera on an active object.
func ActiveCamera(scene *engine.Scene) *components.Camera {
	for _, cam := range engine.Query[*components.Camera](scene) {
		if g := cam.GetGameObject(); g != nil && g.Active {
			return cam
		}
	}
	return nil
}

func (r *Renderer) visible(scene *engine.Scene, f *Frustum) []Drawable {
	r.drawList = r.drawList[:0]
	r.Culled = 0

	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		d := engine.GetComponent[Drawable](g)
		if d == nil {
			continue
		}
		if center, radius, ok := boundingSphere(g); ok && !f.ContainsSphere(center, radius) {
			r.Culled++
			continue
		}
		r.drawList = append(r.drawList, d)
	}
	return r.drawList
}

func boundingSphere(g *engine.GameObject) (rl.Vector3, float32, bool) {
	box := engine.GetComponent[*components.BoxCollider](g)
	if box == nil {
		return rl.Vector3{}, 0, false
	}
	return box.GetCenter(), rl.Vector3Length(box.GetWorldSize()) / 2, true
}
