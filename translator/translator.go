package translator

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/richinsley/gltemplate/shader"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// Stage is a compiled-ready shader stage plus the names its uniforms ended up
// with after translation.
type Stage struct {
	Code  string
	Names map[string]string
}

// Program is the translated pair of stages.
type Program struct {
	Vertex   Stage
	Fragment Stage
}

// Names merges the uniform name maps of both stages.
func (p *Program) Names() map[string]string {
	names := make(map[string]string, len(p.Vertex.Names)+len(p.Fragment.Names))
	for k, v := range p.Vertex.Names {
		names[k] = v
	}
	for k, v := range p.Fragment.Names {
		names[k] = v
	}
	return names
}

// Translate converts GLSL ES stages to desktop GLSL. Desktop stages pass
// through with an empty name map, meaning uniforms keep their declared names.
func Translate(src shader.Source) (*Program, error) {
	vs, err := translateStage(src.Vertex, "vertex")
	if err != nil {
		return nil, err
	}
	fs, err := translateStage(src.Fragment, "fragment")
	if err != nil {
		return nil, err
	}
	return &Program{Vertex: vs, Fragment: fs}, nil
}

func translateStage(code, stage string) (Stage, error) {
	if !shader.IsES(code) {
		return Stage{Code: code}, nil
	}

	t, err := GetTranslator()
	if err != nil {
		return Stage{}, fmt.Errorf("failed to create shader translator: %w", err)
	}

	out, err := t.TranslateShader(code, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return Stage{}, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}

	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	log.Printf("Translated %s shader (%d variables)", stage, len(names))
	return Stage{Code: out.Code, Names: names}, nil
}
