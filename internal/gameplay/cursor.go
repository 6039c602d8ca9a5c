package gameplay

import (
	"floatme/internal/components"
	"floatme/internal/engine"

	"github.com/charmbracelet/log"
)

// Pointer performs the platform side of cursor capture.
type Pointer interface {
	Capture() // lock and hide
	Release() // free and show
}

// CursorEdges are the input edges seen this frame.
type CursorEdges struct {
	Click  bool // left mouse button pressed
	Escape bool // Escape pressed
}

// CursorCapture toggles between captured and released on input edges. While
// captured every FPSController accepts input. A click and an Escape in the
// same frame capture first and then release.
type CursorCapture struct {
	Changed engine.EventWithArg[bool]

	pointer  Pointer
	captured bool
}

func NewCursorCapture(pointer Pointer) *CursorCapture {
	return &CursorCapture{pointer: pointer}
}

func (c *CursorCapture) Captured() bool {
	return c.captured
}

// Apply handles this frame's edges and keeps controllers in step with the
// current state, including controllers spawned since the last transition.
func (c *CursorCapture) Apply(scene *engine.Scene, edges CursorEdges) {
	if edges.Click {
		c.set(true)
	}
	if edges.Escape {
		c.set(false)
	}
	for _, fps := range engine.Query[*components.FPSController](scene) {
		fps.InputEnabled = c.captured
	}
}

func (c *CursorCapture) set(captured bool) {
	if captured == c.captured {
		return
	}
	c.captured = captured
	if c.pointer != nil {
		if captured {
			c.pointer.Capture()
		} else {
			c.pointer.Release()
		}
	}
	log.Debug("cursor: state changed", "captured", captured)
	c.Changed.Invoke(captured)
}
