package shader

import (
	"strings"
	"testing"
)

const combined = `// cube program
#shader vertex
#version 430 core
void main() { gl_Position = vec4(0.0); }

#shader fragment
#version 430 core
out vec4 c;
void main() { c = vec4(1.0); }
`

func TestParseCombined(t *testing.T) {
	src, err := Parse(strings.NewReader(combined))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.HasPrefix(src.Vertex, "#version 430 core\n") || !strings.Contains(src.Vertex, "gl_Position") {
		t.Errorf("vertex = %q", src.Vertex)
	}
	if strings.Contains(src.Vertex, "out vec4 c") {
		t.Error("fragment code leaked into vertex stage")
	}
	if !strings.Contains(src.Fragment, "c = vec4(1.0)") {
		t.Errorf("fragment = %q", src.Fragment)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no fragment", "#shader vertex\nvoid main(){}\n"},
		{"no vertex", "#shader fragment\nvoid main(){}\n"},
		{"unknown stage", "#shader geometry\n"},
		{"code before marker", "void main(){}\n#shader vertex\n#shader fragment\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.in)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestIsES(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"#version 300 es\nvoid main(){}", true},
		{"// header\n\n#version 300 es\n", true},
		{"#version 430 core\n", false},
		{"#version 410\n", false},
		{"void main(){}", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsES(tt.src); got != tt.want {
			t.Errorf("IsES(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestDefaultIsES(t *testing.T) {
	if !IsES(Default.Vertex) || !IsES(Default.Fragment) {
		t.Fatal("built-in program must be GLSL ES")
	}
	for _, name := range []string{UniformModel, UniformView, UniformProjection, UniformModifiedCoords, UniformDimensionScalar} {
		if !strings.Contains(Default.Vertex, name) {
			t.Errorf("vertex stage does not declare %s", name)
		}
	}
	for _, name := range []string{UniformColor, UniformTexture} {
		if !strings.Contains(Default.Fragment, name) {
			t.Errorf("fragment stage does not declare %s", name)
		}
	}
}
