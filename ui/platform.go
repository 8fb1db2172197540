package ui

import (
	"math"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/richinsley/gltemplate/glfwcontext"
	"github.com/richinsley/gltemplate/scene"
)

const mouseButtonCount = 3

// glfwPlatform feeds window events into the imgui IO. It is registered on the
// window as a glfwcontext.EventHandler.
type glfwPlatform struct {
	io    imgui.IO
	ctx   *glfwcontext.Context
	state *scene.State

	time             float64
	mouseJustPressed [mouseButtonCount]bool
}

func newGLFWPlatform(io imgui.IO, ctx *glfwcontext.Context, state *scene.State) *glfwPlatform {
	p := &glfwPlatform{
		io:    io,
		ctx:   ctx,
		state: state,
	}
	p.setKeyMapping()
	ctx.AddHandler(p)
	return p
}

func (p *glfwPlatform) setKeyMapping() {
	// Keyboard mapping. ImGui will use those indices to peek into the io.KeysDown[] array.
	p.io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	p.io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	p.io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	p.io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	p.io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	p.io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	p.io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	p.io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	p.io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	p.io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	p.io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	p.io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	p.io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	p.io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	p.io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	p.io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	p.io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	p.io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	p.io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	p.io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	p.io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}

// displaySize returns the window size in screen coordinates.
func (p *glfwPlatform) displaySize() [2]float32 {
	w, h := p.ctx.GetWindowSize()
	return [2]float32{float32(w), float32(h)}
}

// framebufferSize returns the framebuffer size in pixels.
func (p *glfwPlatform) framebufferSize() [2]float32 {
	w, h := p.ctx.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// newFrame updates display size, timing and mouse state ahead of imgui.NewFrame.
func (p *glfwPlatform) newFrame() {
	size := p.displaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: size[0], Y: size[1]})

	now := p.ctx.Time()
	if p.time > 0 {
		p.io.SetDeltaTime(float32(now - p.time))
	}
	p.time = now

	if p.state.Focused {
		// The camera owns the cursor; keep it away from every widget.
		p.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
		for i := 0; i < mouseButtonCount; i++ {
			p.io.SetMouseButtonDown(i, false)
			p.mouseJustPressed[i] = false
		}
		return
	}

	x, y := p.ctx.CursorPos()
	p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i := 0; i < mouseButtonCount; i++ {
		down := p.mouseJustPressed[i] || p.ctx.MouseButtonDown(glfw.MouseButton(i))
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}

func (p *glfwPlatform) Key(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if key < 0 {
		return
	}
	if action == glfw.Press {
		p.io.KeyPress(int(key))
	}
	if action == glfw.Release {
		p.io.KeyRelease(int(key))
	}

	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *glfwPlatform) Char(r rune) {
	p.io.AddInputCharacters(string(r))
}

func (p *glfwPlatform) MouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && button >= 0 && int(button) < mouseButtonCount {
		p.mouseJustPressed[button] = true
	}
}

func (p *glfwPlatform) CursorPos(x, y float64) {}

func (p *glfwPlatform) Scroll(dx, dy float64) {
	if p.state.Focused {
		return
	}
	p.io.AddMouseWheelDelta(float32(dx), float32(dy))
}
