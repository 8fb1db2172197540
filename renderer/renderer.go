package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/richinsley/gltemplate/assets"
	"github.com/richinsley/gltemplate/gfx"
	"github.com/richinsley/gltemplate/graphics"
	"github.com/richinsley/gltemplate/mesh"
	options "github.com/richinsley/gltemplate/options"
	"github.com/richinsley/gltemplate/scene"
	shader "github.com/richinsley/gltemplate/shader"
)

var glInitOnce sync.Once

// Renderer draws the cube scene described by a scene.State.
type Renderer struct {
	context graphics.Context
	state   *scene.State

	program *gfx.Shader
	vao     *gfx.VertexArray
	vbo     *gfx.VertexBuffer
	ebo     *gfx.ElementBuffer
	texture *gfx.Texture
	layout  *scene.Layout
}

// NewRenderer makes ctx current and loads the OpenGL function pointers.
func NewRenderer(ctx graphics.Context, state *scene.State) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		state:   state,
	}

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("GLSL version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return r, nil
}

// InitScene creates the program, cube buffers and texture, and sets the fixed
// pipeline state. Resources created before a failure are released by Shutdown.
func (r *Renderer) InitScene(opts *options.AppOptions) error {
	width, height := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	var err error
	r.program, err = gfx.CompileSource(assets.ReadShader(*opts.ShaderPath))
	if err != nil {
		return fmt.Errorf("failed to create scene program: %w", err)
	}

	r.vao = gfx.NewVertexArray()
	r.vbo = gfx.NewVertexBuffer(mesh.CubeVertices)
	r.vao.AddBuffer(r.vbo, mesh.Layout)
	r.ebo = gfx.NewElementBuffer(mesh.CubeIndices)
	r.vao.Unbind()

	r.texture, err = gfx.NewTexture(assets.LoadImage(*opts.TexturePath))
	if err != nil {
		return fmt.Errorf("failed to create texture: %w", err)
	}

	r.layout, err = scene.LoadLayout(*opts.ScenePath)
	if err != nil {
		return fmt.Errorf("failed to load scene layout: %w", err)
	}
	tw, th := r.texture.Size()
	log.Printf("Scene has %d objects, %d indices per cube, %dx%d texture", len(r.layout.Objects), r.ebo.Count(), tw, th)

	r.program.Use()
	r.program.SetInt(shader.UniformTexture, 0)
	return nil
}

// Update advances the camera one step and uploads the per-frame uniforms that
// do not depend on the object being drawn.
func (r *Renderer) Update() {
	r.state.Step()

	r.program.Use()
	r.program.SetMat4(shader.UniformProjection, r.state.Projection())
	r.program.SetVec3(shader.UniformModifiedCoords, r.state.ModifiedCoords())
	r.program.SetFloat(shader.UniformDimensionScalar, r.state.DimensionScalar)
}

// RenderFrame clears the bound framebuffer and draws every scene object at
// time t (seconds).
func (r *Renderer) RenderFrame(t float64) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	r.program.Use()
	r.program.SetMat4(shader.UniformView, r.state.Camera.View())
	r.texture.Bind(0)
	r.vao.Bind()

	for i := range r.layout.Objects {
		obj := &r.layout.Objects[i]
		r.program.SetMat4(shader.UniformModel, obj.Model(float32(t), r.layout.BaseScale))
		r.program.SetVec4(shader.UniformColor, r.state.Color(obj.Color))
		r.ebo.Draw()
	}

	r.vao.Unbind()
	r.texture.Unbind()
}

// Shutdown releases the scene resources in reverse creation order. The
// context itself is shut down by its owner.
func (r *Renderer) Shutdown() {
	if r.texture != nil {
		r.texture.Destroy()
		r.texture = nil
	}
	if r.ebo != nil {
		r.ebo.Destroy()
		r.ebo = nil
	}
	if r.vbo != nil {
		r.vbo.Destroy()
		r.vbo = nil
	}
	if r.vao != nil {
		r.vao.Destroy()
		r.vao = nil
	}
	if r.program != nil {
		r.program.Destroy()
		r.program = nil
	}
}
