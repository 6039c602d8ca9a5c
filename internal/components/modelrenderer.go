package components

import (
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a raylib model at its owner's world transform.
// Shared models (level blocks, enemy instances) are owned by the asset
// manager and are not unloaded here.
type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Tint  rl.Color
	owned bool
}

// NewModelRenderer wraps a model owned by this renderer.
func NewModelRenderer(model rl.Model, tint rl.Color) *ModelRenderer {
	return &ModelRenderer{Model: model, Tint: tint, owned: true}
}

// NewSharedModelRenderer wraps a model owned elsewhere.
func NewSharedModelRenderer(model rl.Model, tint rl.Color) *ModelRenderer {
	return &ModelRenderer{Model: model, Tint: tint}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	if anim := engine.GetComponent[*Animator](g); anim != nil {
		if rig := engine.GetComponent[*Rig](g); rig != nil {
			if clip, ok := rig.Clip(anim.Clip); ok {
				rl.UpdateModelAnimation(m.Model, clip, anim.Frame(clip.FrameCount))
			}
		}
	}

	m.Model.Transform = g.WorldMatrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Tint)
}

func (m *ModelRenderer) Unload() {
	if m.owned {
		rl.UnloadModel(m.Model)
	}
}
