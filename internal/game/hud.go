package game

import (
	"fmt"

	"floatme/internal/gameplay"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD draws the capture hint while the cursor is free and an FPS counter.
type HUD struct {
	showHint bool
}

// NewHUD follows cursor capture through its Changed event.
func NewHUD(cursor *gameplay.CursorCapture) *HUD {
	h := &HUD{showHint: !cursor.Captured()}
	cursor.Changed.AddListener(func(captured bool) {
		h.showHint = !captured
	})
	return h
}

func (h *HUD) Draw() {
	if h.showHint {
		w := float32(rl.GetScreenWidth())
		ht := float32(rl.GetScreenHeight())
		bounds := rl.NewRectangle(w/2-140, ht/2-40, 280, 80)
		gui.Panel(bounds, "float_me_pls")
		gui.Label(rl.NewRectangle(bounds.X+20, bounds.Y+34, 240, 30), "Click to play / Esc to release")
	}
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 10, 10, 20, rl.DarkGray)
}
