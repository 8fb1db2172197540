// Package input maps window events onto the scene record.
package input

import (
	"github.com/richinsley/gltemplate/scene"
)

// Key is a window-system independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyEscape
	KeyF1
)

// Handler mutates a scene.State in response to input events.
type Handler struct {
	state *scene.State

	firstMouse   bool
	lastX, lastY float64

	// OnFocusChange is called after Escape toggles the focus state.
	OnFocusChange func(focused bool)
}

func NewHandler(state *scene.State) *Handler {
	return &Handler{
		state:      state,
		firstMouse: true,
	}
}

// Key handles a key press (pressed=true) or release.
func (h *Handler) Key(k Key, pressed bool) {
	m := &h.state.Movement
	switch k {
	case KeyW:
		m.Front = pressed
	case KeyS:
		m.Back = pressed
	case KeyA:
		m.Left = pressed
	case KeyD:
		m.Right = pressed
	case KeySpace:
		m.Up = pressed
	case KeyLeftShift:
		m.Down = pressed
	case KeyEscape:
		if pressed {
			h.ToggleFocus()
		}
	case KeyF1:
		if pressed {
			h.state.ShowUI = !h.state.ShowUI
		}
	}
}

// ToggleFocus switches between camera control and free cursor.
func (h *Handler) ToggleFocus() {
	h.state.Focused = !h.state.Focused
	// the next cursor sample must not produce a jump
	h.firstMouse = true
	if !h.state.Focused {
		h.state.Movement = scene.Movement{}
	}
	if h.OnFocusChange != nil {
		h.OnFocusChange(h.state.Focused)
	}
}

// CursorPos handles an absolute cursor position in window coordinates.
func (h *Handler) CursorPos(x, y float64) {
	if !h.state.Focused {
		return
	}
	if h.firstMouse {
		h.lastX, h.lastY = x, y
		h.firstMouse = false
		return
	}
	dx := x - h.lastX
	dy := h.lastY - y // window y grows downwards
	h.lastX, h.lastY = x, y
	h.state.Camera.Look(float32(dx), float32(dy))
}

// Scroll handles a mouse wheel offset.
func (h *Handler) Scroll(dy float64) {
	if !h.state.Focused {
		return
	}
	h.state.Camera.Zoom(float32(dy))
}
