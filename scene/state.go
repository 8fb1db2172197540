// Package scene holds the mutable scene record read by the renderer every frame.
package scene

import "github.com/go-gl/mathgl/mgl32"

// ColorSlots is the number of UI-editable colors.
const ColorSlots = 4

// State is the single mutable record shared by the input handler, the debug UI
// and the renderer. Everything runs on the main thread so it is not synchronized.
type State struct {
	Camera   Camera
	Movement Movement

	// Offset is uploaded as u_ModifiedCoords (x, y, 0).
	Offset          [2]float32
	DimensionScalar float32
	Colors          [ColorSlots][4]float32

	Width  int
	Height int

	// Focused means the camera owns the cursor (mouse look enabled).
	Focused bool
	ShowUI  bool
}

// NewState returns the startup scene record for a window of the given size.
func NewState(width, height int) *State {
	s := &State{
		Camera:          NewCamera(),
		DimensionScalar: 1.0,
		Width:           width,
		Height:          height,
		Focused:         true,
		ShowUI:          true,
	}
	for i := range s.Colors {
		s.Colors[i] = [4]float32{1, 1, 1, 1}
	}
	return s
}

// Aspect returns width/height, or 1 for a degenerate window.
func (s *State) Aspect() float32 {
	if s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Projection returns the projection for the current field of view and aspect.
func (s *State) Projection() mgl32.Mat4 {
	return Projection(s.Camera.FOV, s.Aspect())
}

func (s *State) ModifiedCoords() mgl32.Vec3 {
	return mgl32.Vec3{s.Offset[0], s.Offset[1], 0}
}

// Color returns the color in slot, wrapping out-of-range slots.
func (s *State) Color(slot int) mgl32.Vec4 {
	if slot < 0 {
		slot = -slot
	}
	return mgl32.Vec4(s.Colors[slot%ColorSlots])
}

// Step integrates the camera from the current movement flags.
func (s *State) Step() {
	s.Camera.Integrate(s.Movement)
}
