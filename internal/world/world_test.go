package world

import (
	"testing"

	"floatme/internal/components"
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func lookingDownZ() Frustum {
	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	return NewFrustum(camera, 1, 0.1, 100)
}

func TestFrustumContains(t *testing.T) {
	f := lookingDownZ()

	cases := []struct {
		name   string
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"ahead", rl.Vector3{Z: -10}, 0, true},
		{"behind", rl.Vector3{Z: 10}, 0, false},
		{"past far plane", rl.Vector3{Z: -200}, 0, false},
		{"outside left edge", rl.Vector3{X: -20, Z: -10}, 0, false},
		{"sphere overlapping edge", rl.Vector3{X: -20, Z: -10}, 20, true},
		{"above", rl.Vector3{Y: 20, Z: -10}, 1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := f.ContainsSphere(c.center, c.radius); got != c.want {
				t.Errorf("Expected %v, got %v", c.want, got)
			}
		})
	}

	if !f.ContainsPoint(rl.Vector3{Z: -50}) {
		t.Error("Expected point on the view axis to be inside")
	}
}

func TestOrthographicFrustum(t *testing.T) {
	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       10,
		Projection: rl.CameraOrthographic,
	}
	f := NewFrustum(camera, 1, 0.1, 100)

	if !f.ContainsPoint(rl.Vector3{X: 4, Z: -50}) {
		t.Error("Expected point inside the ortho box")
	}
	if f.ContainsPoint(rl.Vector3{X: 6, Z: -50}) {
		t.Error("Expected point outside the ortho box")
	}
}

func block(name string, pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.Gray, rl.Vector3{X: 1, Y: 1, Z: 1}))
	return g
}

func TestRendererCullsCollidersOutsideFrustum(t *testing.T) {
	scene := engine.NewScene("test")
	front := block("front", rl.Vector3{Z: -10})
	back := block("back", rl.Vector3{Z: 10})

	marker := engine.NewGameObject("marker")
	marker.Transform.Position = rl.Vector3{Z: 10}
	marker.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Red, rl.Vector3{X: 0.2}))

	hidden := block("hidden", rl.Vector3{Z: -5})
	hidden.Active = false

	for _, g := range []*engine.GameObject{front, back, marker, hidden} {
		scene.AddGameObject(g)
	}

	r := NewRenderer(rl.SkyBlue)
	f := lookingDownZ()
	drawn := r.visible(scene, &f)

	if len(drawn) != 2 {
		t.Fatalf("Expected 2 drawables, got %d", len(drawn))
	}
	if drawn[0].GetGameObject() != front || drawn[1].GetGameObject() != marker {
		t.Errorf("Expected front block and marker, got %s and %s",
			drawn[0].GetGameObject().Name, drawn[1].GetGameObject().Name)
	}
	if r.Culled != 1 {
		t.Errorf("Expected 1 culled object, got %d", r.Culled)
	}
}

func TestActiveCameraSkipsInactive(t *testing.T) {
	scene := engine.NewScene("test")
	if ActiveCamera(scene) != nil {
		t.Fatal("Expected no camera in empty scene")
	}

	off := engine.NewGameObject("off")
	off.Active = false
	off.AddComponent(components.NewCamera())
	on := engine.NewGameObject("on")
	cam := components.NewCamera()
	on.AddComponent(cam)
	scene.AddGameObject(off)
	scene.AddGameObject(on)

	if got := ActiveCamera(scene); got != cam {
		t.Errorf("Expected camera on active object, got %v", got)
	}
}

func TestWorldRaycastsThroughPhysics(t *testing.T) {
	w := New(9.81)
	if w.Physics.Gravity.Y != -9.81 {
		t.Errorf("Expected gravity -9.81, got %v", w.Physics.Gravity.Y)
	}

	b := block("Block_0_0_0", rl.Vector3{})
	w.Scene.AddGameObject(b)
	w.Physics.AddObject(b)

	hit, ok := w.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, engine.QueryFilter{})
	if !ok || hit.GameObject != b {
		t.Fatalf("Expected ray to hit the block, got %+v %v", hit, ok)
	}
	if _, ok := w.Raycast(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 10, engine.QueryFilter{Exclude: []*engine.GameObject{b}}); ok {
		t.Error("Expected excluded block to be skipped")
	}
}
