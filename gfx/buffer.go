package gfx

import (
	gl "github.com/go-gl/gl/v4.3-core/gl"
)

const (
	bytesFloat32 = 4
	bytesUint32  = 4
)

// VertexBuffer owns one GL_ARRAY_BUFFER filled once at construction.
type VertexBuffer struct {
	id uint32
}

func NewVertexBuffer(data []float32) *VertexBuffer {
	vb := &VertexBuffer{}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*bytesFloat32, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vb
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
}

func (vb *VertexBuffer) Unbind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) Destroy() {
	gl.DeleteBuffers(1, &vb.id)
	vb.id = 0
}

// ElementBuffer owns one GL_ELEMENT_ARRAY_BUFFER of uint32 indices.
type ElementBuffer struct {
	id    uint32
	count int32
}

func NewElementBuffer(indices []uint32) *ElementBuffer {
	eb := &ElementBuffer{count: int32(len(indices))}
	gl.GenBuffers(1, &eb.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, eb.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*bytesUint32, gl.Ptr(indices), gl.STATIC_DRAW)
	return eb
}

// Count is the number of indices uploaded.
func (eb *ElementBuffer) Count() int32 {
	return eb.count
}

// Draw issues one indexed triangle draw over the whole buffer.
func (eb *ElementBuffer) Draw() {
	gl.DrawElements(gl.TRIANGLES, eb.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (eb *ElementBuffer) Destroy() {
	gl.DeleteBuffers(1, &eb.id)
	eb.id = 0
}
