package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 0.1
	farPlane  = 1000.0

	minFOV   = 1.0
	maxFOV   = 45.0
	maxPitch = 89.0
)

// Movement holds the six movement flags set by the input handler.
type Movement struct {
	Front, Back bool
	Left, Right bool
	Up, Down    bool
}

// Camera is a free-flying look-at camera. Speed is applied once per frame.
type Camera struct {
	Position    mgl32.Vec3
	Front       mgl32.Vec3
	Up          mgl32.Vec3
	Speed       float32
	FOV         float32 // degrees
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	Sensitivity float32
}

// NewCamera returns the camera at (0,0,3) looking down -Z.
func NewCamera() Camera {
	return Camera{
		Position:    mgl32.Vec3{0, 0, 3},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Speed:       0.05,
		FOV:         maxFOV,
		Yaw:         -90,
		Pitch:       0,
		Sensitivity: 0.1,
	}
}

// Right is the normalized camera right vector.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Integrate moves the camera by Speed along every active direction.
func (c *Camera) Integrate(m Movement) {
	if m.Front {
		c.Position = c.Position.Add(c.Front.Mul(c.Speed))
	}
	if m.Back {
		c.Position = c.Position.Sub(c.Front.Mul(c.Speed))
	}
	if m.Left {
		c.Position = c.Position.Sub(c.Right().Mul(c.Speed))
	}
	if m.Right {
		c.Position = c.Position.Add(c.Right().Mul(c.Speed))
	}
	if m.Up {
		c.Position = c.Position.Add(c.Up.Mul(c.Speed))
	}
	if m.Down {
		c.Position = c.Position.Sub(c.Up.Mul(c.Speed))
	}
}

// Look applies a mouse offset to yaw and pitch and recomputes Front.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, -maxPitch, maxPitch)

	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Zoom narrows the field of view for positive scroll offsets.
func (c *Camera) Zoom(dy float32) {
	c.FOV = mgl32.Clamp(c.FOV-dy, minFOV, maxFOV)
}

// View returns the look-at matrix for the current position and orientation.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection builds the perspective matrix. It depends only on its arguments.
func Projection(fovDegrees, aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
}
