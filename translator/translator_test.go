package translator

import (
	"strings"
	"testing"

	"github.com/richinsley/gltemplate/shader"
)

func TestTranslateDesktopPassThrough(t *testing.T) {
	src := shader.Source{
		Vertex:   "#version 430 core\nuniform mat4 u_Model;\nvoid main(){}\n",
		Fragment: "#version 430 core\nvoid main(){}\n",
	}
	p, err := Translate(src)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if p.Vertex.Code != src.Vertex || p.Fragment.Code != src.Fragment {
		t.Fatal("desktop sources were modified")
	}
	if len(p.Names()) != 0 {
		t.Fatalf("names = %v, want none", p.Names())
	}
}

func TestProgramNamesMerge(t *testing.T) {
	p := &Program{
		Vertex:   Stage{Names: map[string]string{"u_Model": "_uu_Model"}},
		Fragment: Stage{Names: map[string]string{"u_Color": "_uu_Color"}},
	}
	names := p.Names()
	if names["u_Model"] != "_uu_Model" || names["u_Color"] != "_uu_Color" || len(names) != 2 {
		t.Fatalf("names = %v", names)
	}
}

func TestTranslateDefaultProgram(t *testing.T) {
	p, err := Translate(shader.Default)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if shader.IsES(p.Vertex.Code) || shader.IsES(p.Fragment.Code) {
		t.Fatal("output is still GLSL ES")
	}

	code := p.Vertex.Code + p.Fragment.Code
	names := p.Names()
	for _, uniform := range []string{
		shader.UniformModel,
		shader.UniformView,
		shader.UniformProjection,
		shader.UniformModifiedCoords,
		shader.UniformDimensionScalar,
		shader.UniformColor,
		shader.UniformTexture,
	} {
		mapped, ok := names[uniform]
		if !ok || mapped == "" {
			t.Errorf("%s has no mapped name", uniform)
			continue
		}
		if !strings.Contains(code, mapped) {
			t.Errorf("%s mapped to %s, which the output does not declare", uniform, mapped)
		}
	}

	for _, loc := range []string{"layout(location = 0)", "layout(location = 1)"} {
		if !strings.Contains(p.Vertex.Code, loc) {
			t.Errorf("vertex output lost %q:\n%s", loc, p.Vertex.Code)
		}
	}
}
