package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	options "github.com/richinsley/gltemplate/options"
)

// EventHandler receives the raw window events. Handlers are called in
// registration order.
type EventHandler interface {
	Key(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
	Char(r rune)
	MouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
	CursorPos(x, y float64)
	Scroll(dx, dy float64)
}

type Context struct {
	window   *glfw.Window
	handlers []EventHandler
}

// New creates a window with a 4.3 core, double-buffered context and a 24-bit
// depth buffer. Hidden windows are used for offscreen capture.
func New(visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, options.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, options.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, options.DepthBits)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(options.WindowWidth, options.WindowHeight, options.WindowTitle, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window: win,
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCharCallback(c.glfwCharCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetScrollCallback(c.glfwScrollCallback)

	return c, nil
}

// AddHandler registers h for all window events.
func (c *Context) AddHandler(h EventHandler) {
	c.handlers = append(c.handlers, h)
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	for _, h := range c.handlers {
		h.Key(key, action, mods)
	}
}

func (c *Context) glfwCharCallback(w *glfw.Window, char rune) {
	for _, h := range c.handlers {
		h.Char(char)
	}
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	for _, h := range c.handlers {
		h.MouseButton(button, action, mods)
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	for _, h := range c.handlers {
		h.CursorPos(x, y)
	}
}

func (c *Context) glfwScrollCallback(w *glfw.Window, dx, dy float64) {
	for _, h := range c.handlers {
		h.Scroll(dx, dy)
	}
}

// SetCursorCaptured hides and locks the cursor (relative mouse mode) or
// releases it back to the desktop.
func (c *Context) SetCursorCaptured(captured bool) {
	if captured {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		c.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// CursorPos returns the cursor position in window coordinates.
func (c *Context) CursorPos() (float64, float64) {
	return c.window.GetCursorPos()
}

// MouseButtonDown reports whether button is currently held.
func (c *Context) MouseButtonDown(button glfw.MouseButton) bool {
	return c.window.GetMouseButton(button) == glfw.Press
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// PollEvents dispatches pending window events to the registered handlers.
func (c *Context) PollEvents() {
	glfw.PollEvents()
}

// EndFrame presents the back buffer.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) GetWindowSize() (int, int) {
	return c.window.GetSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
