package options

import "flag"

// Fixed window and context attributes. These are not configurable at runtime.
const (
	WindowTitle  = "SDL OPEN_GL PRACTICE"
	WindowWidth  = 1280
	WindowHeight = 720

	GLMajor   = 4
	GLMinor   = 3
	DepthBits = 24

	DefaultTexturePath = "assets/pic.png"
	DefaultShaderPath  = "source.shader"
)

type AppOptions struct {
	Help        *bool
	TexturePath *string
	ShaderPath  *string
	ScenePath   *string // optional YAML layout overriding the built-in one
	GLDebug     *bool   // drain and log glGetError after every frame
	// Capture options
	OutputFile *string
	Duration   *float64
	FPS        *int
	FFMPEGPath *string
}

// Register binds the options to flags on fs.
func Register(fs *flag.FlagSet) *AppOptions {
	return &AppOptions{
		Help:        fs.Bool("help", false, "Show help message"),
		TexturePath: fs.String("texture", DefaultTexturePath, "Path to the cube texture"),
		ShaderPath:  fs.String("shader", DefaultShaderPath, "Path to the combined vertex/fragment shader file"),
		ScenePath:   fs.String("scene", "", "Optional YAML scene layout"),
		GLDebug:     fs.Bool("gldebug", false, "Check for OpenGL errors after every frame"),
		OutputFile:  fs.String("record", "", "Render offscreen and encode to this video file"),
		Duration:    fs.Float64("duration", 5.0, "Duration to record in seconds"),
		FPS:         fs.Int("fps", 30, "Frames per second for recording"),
		FFMPEGPath:  fs.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
}

// Recording reports whether the capture mode was requested.
func (o *AppOptions) Recording() bool {
	return o.OutputFile != nil && *o.OutputFile != ""
}
