package ui

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/richinsley/gltemplate/gfx"
)

const uiVertexShader = `#version 410 core
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main() {
    Frag_UV = UV;
    Frag_Color = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0.0, 1.0);
}
`

// The font atlas is uploaded as a single red channel holding coverage.
const uiFragmentShader = `#version 410 core
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main() {
    Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}
`

// glBackend draws imgui draw lists with an OpenGL 3+ core context.
type glBackend struct {
	program     *gfx.Shader
	fontTexture uint32
	vbo         uint32
	ebo         uint32

	attribPosition uint32
	attribUV       uint32
	attribColor    uint32
}

func newGLBackend(io imgui.IO) (*glBackend, error) {
	program, err := gfx.NewShader(uiVertexShader, uiFragmentShader, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui program: %w", err)
	}

	b := &glBackend{
		program:        program,
		attribPosition: uint32(gl.GetAttribLocation(program.ID, gl.Str("Position\x00"))),
		attribUV:       uint32(gl.GetAttribLocation(program.ID, gl.Str("UV\x00"))),
		attribColor:    uint32(gl.GetAttribLocation(program.ID, gl.Str("Color\x00"))),
	}
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	b.createFontTexture(io)
	return b, nil
}

func (b *glBackend) createFontTexture(io imgui.IO) {
	image := io.Fonts().TextureDataAlpha8()

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	gl.GenTextures(1, &b.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, b.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	io.Fonts().SetTextureID(imgui.TextureID(b.fontTexture))

	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
}

// render draws drawData into the default framebuffer.
func (b *glBackend) render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 || displayWidth <= 0 || displayHeight <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbWidth / displayWidth,
		Y: fbHeight / displayHeight,
	})

	// The scene sets its own state every frame; only the bits it relies on
	// across frames are restored here.
	var lastProgram, lastTexture int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	var lastViewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	lastEnableCullFace := gl.IsEnabled(gl.CULL_FACE)
	lastEnableDepthTest := gl.IsEnabled(gl.DEPTH_TEST)
	lastEnableScissorTest := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	orthoProjection := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	b.program.Use()
	b.program.SetInt("Texture", 0)
	gl.UniformMatrix4fv(b.program.Location("ProjMtx"), 1, false, &orthoProjection[0][0])
	gl.BindSampler(0, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	// Temporary VAO, deleted after the draw lists are submitted.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.EnableVertexAttribArray(b.attribPosition)
	gl.EnableVertexAttribArray(b.attribUV)
	gl.EnableVertexAttribArray(b.attribColor)

	vertexSize, vertexOffsetPos, vertexOffsetUV, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(b.attribPosition, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(b.attribUV, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUV))
	gl.VertexAttribPointerWithOffset(b.attribColor, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		var indexBufferOffset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbHeight)-int32(clipRect.W),
					int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, indexBufferOffset)
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &vao)

	gl.UseProgram(uint32(lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	setEnabled(gl.CULL_FACE, lastEnableCullFace)
	setEnabled(gl.DEPTH_TEST, lastEnableDepthTest)
	setEnabled(gl.SCISSOR_TEST, lastEnableScissorTest)
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func (b *glBackend) destroy() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
	if b.fontTexture != 0 {
		gl.DeleteTextures(1, &b.fontTexture)
		imgui.CurrentIO().Fonts().SetTextureID(0)
		b.fontTexture = 0
	}
	b.program.Destroy()
}
