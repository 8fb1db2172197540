package app

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gltemplate/input"
)

var keyMap = map[glfw.Key]input.Key{
	glfw.KeyW:         input.KeyW,
	glfw.KeyA:         input.KeyA,
	glfw.KeyS:         input.KeyS,
	glfw.KeyD:         input.KeyD,
	glfw.KeySpace:     input.KeySpace,
	glfw.KeyLeftShift: input.KeyLeftShift,
	glfw.KeyEscape:    input.KeyEscape,
	glfw.KeyF1:        input.KeyF1,
}

func translateKey(key glfw.Key) input.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return input.KeyUnknown
}

// inputBridge forwards window events to the input handler. Presses are
// dropped while the overlay is editing a widget; releases always pass so no
// movement flag is left stuck.
type inputBridge struct {
	handler    *input.Handler
	uiCaptured func() bool
}

func (b *inputBridge) captured() bool {
	return b.uiCaptured != nil && b.uiCaptured()
}

func (b *inputBridge) Key(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	k := translateKey(key)
	if k == input.KeyUnknown {
		return
	}
	switch action {
	case glfw.Press:
		if k != input.KeyEscape && b.captured() {
			return
		}
		b.handler.Key(k, true)
	case glfw.Release:
		b.handler.Key(k, false)
	}
}

func (b *inputBridge) Char(r rune) {}

func (b *inputBridge) MouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
}

func (b *inputBridge) CursorPos(x, y float64) {
	b.handler.CursorPos(x, y)
}

func (b *inputBridge) Scroll(dx, dy float64) {
	b.handler.Scroll(dy)
}
