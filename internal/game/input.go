package game

import (
	"floatme/internal/components"
	"floatme/internal/engine"
	"floatme/internal/gameplay"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// rlPointer locks the OS cursor through raylib.
type rlPointer struct{}

func (rlPointer) Capture() { rl.DisableCursor() }
func (rlPointer) Release() { rl.EnableCursor() }

// InputSystem samples raylib input once per frame. It applies cursor edges
// and then hands movement intent to every FPSController.
type InputSystem struct {
	Cursor *gameplay.CursorCapture
}

func NewInputSystem(cursor *gameplay.CursorCapture) *InputSystem {
	return &InputSystem{Cursor: cursor}
}

func (s *InputSystem) Update(scene *engine.Scene, deltaTime float32) {
	s.Cursor.Apply(scene, gameplay.CursorEdges{
		Click:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Escape: rl.IsKeyPressed(rl.KeyEscape),
	})

	in := sampleController()
	for _, fps := range engine.Query[*components.FPSController](scene) {
		fps.SetInput(in)
	}
}

func sampleController() components.ControllerInput {
	var in components.ControllerInput
	if rl.IsKeyDown(rl.KeyW) {
		in.Move.Y++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Move.Y--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Move.X++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Move.X--
	}
	in.Look = rl.GetMouseDelta()
	in.Jump = rl.IsKeyPressed(rl.KeySpace)
	return in
}
