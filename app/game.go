// Package app drives the window, scene, overlay and input through the
// initialize, run and reset phases.
package app

import (
	"fmt"
	"log"

	"github.com/richinsley/gltemplate/gfx"
	"github.com/richinsley/gltemplate/glfwcontext"
	"github.com/richinsley/gltemplate/input"
	options "github.com/richinsley/gltemplate/options"
	"github.com/richinsley/gltemplate/renderer"
	"github.com/richinsley/gltemplate/scene"
	"github.com/richinsley/gltemplate/startup"
	"github.com/richinsley/gltemplate/ui"
)

// Game owns every subsystem. Fields are populated by Initialize and released
// by Reset in reverse order.
type Game struct {
	opts  *options.AppOptions
	state *scene.State

	glfwReady bool
	context   *glfwcontext.Context
	renderer  *renderer.Renderer
	overlay   *ui.Overlay
	input     *input.Handler
}

func NewGame(opts *options.AppOptions) *Game {
	return &Game{
		opts:  opts,
		state: scene.NewState(options.WindowWidth, options.WindowHeight),
	}
}

// Initialize brings up every subsystem, stopping at the first failure. Reset
// must be called regardless of the result.
func (g *Game) Initialize() error {
	steps := []startup.Step{
		{Name: "GLFW", Run: g.initGLFW},
		{Name: "window", Run: g.initWindow},
		{Name: "OpenGL", Run: g.initGL},
		{Name: "scene resources", Run: g.initScene},
	}
	if !g.opts.Recording() {
		steps = append(steps,
			startup.Step{Name: "debug UI", Run: g.initUI},
			startup.Step{Name: "input handler", Run: g.initInput},
		)
	}
	return startup.Run(steps...)
}

func (g *Game) initGLFW() error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	g.glfwReady = true
	return nil
}

func (g *Game) initWindow() error {
	ctx, err := glfwcontext.New(!g.opts.Recording())
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	g.context = ctx
	if !g.opts.Recording() {
		// Offscreen capture keeps the fixed window size for the video frames.
		g.state.Width, g.state.Height = ctx.GetFramebufferSize()
	}
	return nil
}

func (g *Game) initGL() error {
	r, err := renderer.NewRenderer(g.context, g.state)
	if err != nil {
		return err
	}
	g.renderer = r
	return nil
}

func (g *Game) initScene() error {
	return g.renderer.InitScene(g.opts)
}

func (g *Game) initUI() error {
	overlay, err := ui.New(g.context, g.state)
	if err != nil {
		return err
	}
	g.overlay = overlay
	return nil
}

func (g *Game) initInput() error {
	g.input = input.NewHandler(g.state)
	g.input.OnFocusChange = g.context.SetCursorCaptured
	g.context.AddHandler(&inputBridge{
		handler:    g.input,
		uiCaptured: g.overlay.WantsKeyboard,
	})
	g.context.SetCursorCaptured(g.state.Focused)
	return nil
}

// Run executes the main loop until the window closes, or renders the capture
// when recording was requested.
func (g *Game) Run() error {
	if g.opts.Recording() {
		return g.renderer.RunOffscreen(g.opts)
	}

	log.Println("Starting interactive render loop...")
	last := g.context.Time()
	for !g.context.ShouldClose() {
		now := g.context.Time()
		frameTime := now - last
		last = now

		g.context.PollEvents()
		g.renderer.Update()
		g.renderer.RenderFrame(now)
		g.overlay.Render(frameTime)

		if *g.opts.GLDebug {
			if err := gfx.CheckError(); err != nil {
				log.Printf("frame error: %v", err)
			}
		}
		g.context.EndFrame()
	}
	return nil
}

// Reset releases whatever Initialize created, in reverse order.
func (g *Game) Reset() {
	g.input = nil
	if g.overlay != nil {
		g.overlay.Destroy()
		g.overlay = nil
	}
	if g.renderer != nil {
		g.renderer.Shutdown()
		g.renderer = nil
	}
	if g.context != nil {
		g.context.Shutdown()
		g.context = nil
	}
	if g.glfwReady {
		glfwcontext.TerminateGraphics()
		g.glfwReady = false
	}
}
