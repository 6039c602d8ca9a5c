package components

import (
	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TrailMode selects what the smoother remembers as "previous".
type TrailMode int

const (
	// TrailBlended keeps the blended output, so a step in the input decays
	// geometrically over several frames. This is the default: the remembered
	// pose is the one that was last drawn, which is how the gun has always
	// trailed the camera.
	TrailBlended TrailMode = iota
	// TrailRaw keeps the unblended input, so the output lags exactly one frame.
	TrailRaw
)

// DelayedTransform pulls its owner's transform back toward the previous
// frame's pose. Alpha 0 leaves the current value, alpha 1 freezes it.
type DelayedTransform struct {
	engine.BaseComponent
	TranslationAlpha float32
	RotationAlpha    float32
	Mode             TrailMode

	prev *engine.Transform
}

func NewDelayedTransform() *DelayedTransform {
	return &DelayedTransform{
		TranslationAlpha: 0.0,
		RotationAlpha:    0.75,
		Mode:             TrailBlended,
	}
}

// Initialized reports whether a previous pose has been recorded.
func (d *DelayedTransform) Initialized() bool {
	return d.prev != nil
}

// Reset drops the recorded pose; the next Apply passes its input through.
func (d *DelayedTransform) Reset() {
	d.prev = nil
}

// Apply smooths t in place. The first call only records t.
func (d *DelayedTransform) Apply(t *engine.Transform) {
	raw := *t
	if d.prev != nil {
		t.Position = rl.Vector3Lerp(t.Position, d.prev.Position, d.TranslationAlpha)
		t.Rotation = nlerp(t.Rotation, d.prev.Rotation, d.RotationAlpha)
	}

	snapshot := *t
	if d.Mode == TrailRaw {
		snapshot = raw
	}
	d.prev = &snapshot
}

// nlerp interpolates along the shorter arc and renormalizes.
func nlerp(a, b rl.Quaternion, amount float32) rl.Quaternion {
	if a.X*b.X+a.Y*b.Y+a.Z*b.Z+a.W*b.W < 0 {
		b = rl.Quaternion{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}
	}
	return rl.QuaternionNormalize(rl.QuaternionLerp(a, b, amount))
}
