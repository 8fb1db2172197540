// Package ui draws the debug overlay that edits the scene record.
package ui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/richinsley/gltemplate/glfwcontext"
	"github.com/richinsley/gltemplate/scene"
)

// Overlay owns the imgui context together with its platform and GL backend.
type Overlay struct {
	context  *imgui.Context
	io       imgui.IO
	platform *glfwPlatform
	backend  *glBackend
	state    *scene.State
}

// New creates the overlay for ctx. The GL context must be current.
func New(ctx *glfwcontext.Context, state *scene.State) (*Overlay, error) {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	backend, err := newGLBackend(io)
	if err != nil {
		context.Destroy()
		return nil, fmt.Errorf("failed to create ui renderer: %w", err)
	}

	return &Overlay{
		context:  context,
		io:       io,
		platform: newGLFWPlatform(io, ctx, state),
		backend:  backend,
		state:    state,
	}, nil
}

// WantsKeyboard reports whether a widget is taking text input, in which case
// movement keys should not reach the camera.
func (o *Overlay) WantsKeyboard() bool {
	return o.io.WantCaptureKeyboard()
}

// Render builds and draws one overlay frame on top of the current framebuffer.
// Nothing is drawn while the panel is hidden.
func (o *Overlay) Render(frameTime float64) {
	o.platform.newFrame()
	imgui.NewFrame()
	if o.state.ShowUI {
		buildPanel(o.state, frameTime)
	}
	imgui.Render()
	o.backend.render(o.platform.displaySize(), o.platform.framebufferSize(), imgui.RenderedDrawData())
}

func (o *Overlay) Destroy() {
	o.backend.destroy()
	o.context.Destroy()
}
