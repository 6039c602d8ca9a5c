package components

import (
	"math"

	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultAnimationFrameRate matches the rate raylib samples glTF clips at.
const DefaultAnimationFrameRate = 60

// Rig marks a model instance whose skeleton can be animated. Its arrival in
// Scene.Added is the "rig ready" signal for animation binding.
type Rig struct {
	engine.BaseComponent
	Clips []rl.ModelAnimation
}

func NewRig(clips []rl.ModelAnimation) *Rig {
	return &Rig{Clips: clips}
}

func (r *Rig) Clip(i int) (rl.ModelAnimation, bool) {
	if i < 0 || i >= len(r.Clips) {
		return rl.ModelAnimation{}, false
	}
	return r.Clips[i], true
}

// Animator is the playback state of one clip on a Rig.
type Animator struct {
	engine.BaseComponent
	Clip      int
	Speed     float32
	Looping   bool
	Time      float32 // seconds of clip time
	FrameRate float32
	Length    float32 // clip duration in seconds, 0 if unknown
	Playing   bool
}

// NewAnimator returns an animator already playing clip from time zero.
func NewAnimator(clip int, speed float32, looping bool) *Animator {
	return &Animator{
		Clip:      clip,
		Speed:     speed,
		Looping:   looping,
		FrameRate: DefaultAnimationFrameRate,
		Playing:   true,
	}
}

func (a *Animator) Update(deltaTime float32) {
	if !a.Playing {
		return
	}
	a.Time += deltaTime * a.Speed
	if a.Looping && a.Length > 0 {
		a.Time = float32(math.Mod(float64(a.Time), float64(a.Length)))
		if a.Time < 0 {
			a.Time += a.Length
		}
	}
}

// SetClipLength records the duration of a clip with frameCount frames so
// looping playback time stays bounded.
func (a *Animator) SetClipLength(frameCount int32) {
	if frameCount <= 0 || a.FrameRate <= 0 {
		a.Length = 0
		return
	}
	a.Length = float32(frameCount) / a.FrameRate
}

// Frame maps the playback time onto a clip with frameCount frames.
func (a *Animator) Frame(frameCount int32) int32 {
	if frameCount <= 0 {
		return 0
	}
	frame := int32(a.Time * a.FrameRate)
	if frame < 0 {
		frame = 0
	}
	if a.Looping {
		return frame % frameCount
	}
	if frame >= frameCount {
		return frameCount - 1
	}
	return frame
}
