package components

import (
	"math"

	"floatme/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxPitch = math.Pi/2 - 0.01

// ControllerInput is one frame of player intent, gathered by the frame driver.
type ControllerInput struct {
	Move rl.Vector2 // X = strafe right, Y = forward; not normalized
	Look rl.Vector2 // mouse delta in pixels
	Jump bool
}

// FPSController provides first-person movement and mouse look for a
// kinematic body. Yaw and pitch are radians; yaw 0 looks down -Z.
type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	MoveSpeed    float32
	LookSpeed    float32 // radians per pixel
	Gravity      float32
	JumpStrength float32
	EyeHeight    float32 // camera height above the body origin
	Velocity     rl.Vector3
	InputEnabled bool

	input    ControllerInput
	grounded bool
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:          math.Pi * 2 * 5 / 8,
		Pitch:        -math.Pi * 2 / 12,
		MoveSpeed:    6.0,
		LookSpeed:    0.002,
		Gravity:      20.0,
		JumpStrength: 7.0,
		EyeHeight:    1.15,
	}
}

// SetInput stores the input for the next Update. Ignored while input is disabled.
func (f *FPSController) SetInput(in ControllerInput) {
	if !f.InputEnabled {
		f.input = ControllerInput{}
		return
	}
	f.input = in
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	in := f.input
	f.input = ControllerInput{}

	f.Yaw -= in.Look.X * f.LookSpeed
	f.Pitch -= in.Look.Y * f.LookSpeed
	if f.Pitch > maxPitch {
		f.Pitch = maxPitch
	}
	if f.Pitch < -maxPitch {
		f.Pitch = -maxPitch
	}

	forward, right := f.directions()
	moveDir := rl.Vector3Add(rl.Vector3Scale(forward, in.Move.Y), rl.Vector3Scale(right, in.Move.X))
	if l := rl.Vector3Length(moveDir); l > 0 {
		moveDir = rl.Vector3Scale(moveDir, 1/l)
	}
	f.Velocity.X = moveDir.X * f.MoveSpeed
	f.Velocity.Z = moveDir.Z * f.MoveSpeed

	if in.Jump && f.grounded {
		f.Velocity.Y = f.JumpStrength
		f.grounded = false
	}

	// Gravity always applies; ground contact cancels it in the physics step.
	f.Velocity.Y -= f.Gravity * deltaTime

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(f.Velocity, deltaTime))
	// Body rotation is yaw only; pitch lives on the camera.
	g.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, f.Yaw)
}

// directions returns the horizontal forward and right vectors for the current yaw.
func (f *FPSController) directions() (forward, right rl.Vector3) {
	s := float32(math.Sin(float64(f.Yaw)))
	c := float32(math.Cos(float64(f.Yaw)))
	forward = rl.Vector3{X: -s, Z: -c}
	right = rl.Vector3{X: c, Z: -s}
	return
}

// Orientation is the full look rotation: yaw about +Y, then pitch about local +X.
func (f *FPSController) Orientation() rl.Quaternion {
	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, f.Yaw)
	pitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, f.Pitch)
	return rl.QuaternionMultiply(yaw, pitch)
}

// EyePosition is where the camera sits in world space.
func (f *FPSController) EyePosition() rl.Vector3 {
	g := f.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return rl.Vector3Add(g.WorldPosition(), rl.Vector3{Y: f.EyeHeight})
}

func (f *FPSController) GetVelocity() (x, y, z float32) {
	return f.Velocity.X, f.Velocity.Y, f.Velocity.Z
}

func (f *FPSController) SetVelocityY(vy float32) {
	f.Velocity.Y = vy
}

func (f *FPSController) Grounded() bool {
	return f.grounded
}

func (f *FPSController) SetGrounded(grounded bool) {
	f.grounded = grounded
}
