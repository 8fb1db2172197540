package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	PollEvents()
	EndFrame()
	GetFramebufferSize() (int, int)
	GetWindowSize() (int, int)
	Time() float64
}
