package mesh

import "testing"

func TestCubeCounts(t *testing.T) {
	if len(CubeVertices)%FloatsPerVertex != 0 {
		t.Fatalf("vertex data length %d is not a multiple of %d", len(CubeVertices), FloatsPerVertex)
	}
	if got := VertexCount(); got != 24 {
		t.Errorf("VertexCount() = %d, want 24", got)
	}
	if got := len(CubeIndices); got != 36 {
		t.Errorf("len(CubeIndices) = %d, want 36", got)
	}
	if got := TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}
}

func TestCubeIndicesInRange(t *testing.T) {
	n := uint32(VertexCount())
	for i, idx := range CubeIndices {
		if idx >= n {
			t.Errorf("index %d = %d out of range [0,%d)", i, idx, n)
		}
	}
}

func TestCubeTrianglesNotDegenerate(t *testing.T) {
	for tri := 0; tri < TriangleCount(); tri++ {
		a, b, c := CubeIndices[tri*3], CubeIndices[tri*3+1], CubeIndices[tri*3+2]
		if a == b || b == c || a == c {
			t.Errorf("triangle %d repeats a vertex: %d %d %d", tri, a, b, c)
		}
	}
}

func TestStride(t *testing.T) {
	if got := Stride(Layout); got != 20 {
		t.Errorf("Stride(Layout) = %d, want 20", got)
	}
	if got := Stride(nil); got != 0 {
		t.Errorf("Stride(nil) = %d, want 0", got)
	}
}
