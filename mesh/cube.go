package mesh

const (
	PositionSize = 3 // x,y,z
	TexCoordSize = 2 // u,v

	// FloatsPerVertex is the interleaved width of one cube vertex.
	FloatsPerVertex = PositionSize + TexCoordSize
	bytesFloat32    = 4
)

// Layout is the attribute layout of CubeVertices, one entry per attribute location.
var Layout = []int32{PositionSize, TexCoordSize}

// Stride returns the byte stride of an interleaved float32 layout.
func Stride(layout []int32) int32 {
	var n int32
	for _, size := range layout {
		n += size
	}
	return n * bytesFloat32
}

// CubeVertices is a box of 24 vertices, four per face so every face gets its own
// texture coordinates.
//
//	  v4------v5
//	 /|       /|
//	v0------v1 |
//	| v6-----|v7
//	|/       |/
//	v2------v3
var CubeVertices = []float32{
	// front
	-0.2, 0.11, 0.2, 0.0, 1.0,
	0.2, 0.11, 0.2, 1.0, 1.0,
	-0.2, -0.11, 0.2, 0.0, 0.0,
	0.2, -0.11, 0.2, 1.0, 0.0,

	// back
	-0.2, 0.11, -0.2, 0.0, 1.0,
	0.2, 0.11, -0.2, 1.0, 1.0,
	-0.2, -0.11, -0.2, 0.0, 0.0,
	0.2, -0.11, -0.2, 1.0, 0.0,

	// left
	-0.2, 0.11, -0.2, 0.0, 1.0,
	-0.2, 0.11, 0.2, 1.0, 1.0,
	-0.2, -0.11, -0.2, 0.0, 0.0,
	-0.2, -0.11, 0.2, 1.0, 0.0,

	// right
	0.2, 0.11, 0.2, 0.0, 1.0,
	0.2, 0.11, -0.2, 1.0, 1.0,
	0.2, -0.11, 0.2, 0.0, 0.0,
	0.2, -0.11, -0.2, 1.0, 0.0,

	// top
	-0.2, 0.11, -0.2, 0.0, 1.0,
	0.2, 0.11, -0.2, 1.0, 1.0,
	-0.2, 0.11, 0.2, 0.0, 0.0,
	0.2, 0.11, 0.2, 1.0, 0.0,

	// bottom
	-0.2, -0.11, 0.2, 0.0, 1.0,
	0.2, -0.11, 0.2, 1.0, 1.0,
	-0.2, -0.11, -0.2, 0.0, 0.0,
	0.2, -0.11, -0.2, 1.0, 0.0,
}

// CubeIndices holds two triangles per face.
var CubeIndices = []uint32{
	0, 1, 2,
	1, 2, 3,
	4, 5, 6,
	5, 6, 7,
	8, 9, 10,
	9, 10, 11,
	12, 13, 14,
	13, 14, 15,
	16, 17, 18,
	17, 18, 19,
	20, 21, 22,
	21, 22, 23,
}

// VertexCount returns the number of vertices in CubeVertices.
func VertexCount() int {
	return len(CubeVertices) / FloatsPerVertex
}

// TriangleCount returns the number of triangles drawn from CubeIndices.
func TriangleCount() int {
	return len(CubeIndices) / 3
}
