package gfx

import (
	gl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/richinsley/gltemplate/mesh"
)

// VertexArray owns one vertex array object. It does not own the buffers it
// references.
type VertexArray struct {
	id uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

// AddBuffer describes vb as interleaved float attributes. layout[i] is the
// component count of attribute location i.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout []int32) {
	va.Bind()
	vb.Bind()

	stride := mesh.Stride(layout)

	var offset uintptr
	for i, size := range layout {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, stride, offset)
		offset += uintptr(size * bytesFloat32)
	}
	vb.Unbind()
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.id)
}

func (va *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

func (va *VertexArray) Destroy() {
	gl.DeleteVertexArrays(1, &va.id)
	va.id = 0
}
