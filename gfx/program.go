package gfx

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	shader "github.com/richinsley/gltemplate/shader"
	xlate "github.com/richinsley/gltemplate/translator"
)

// Shader owns one linked program. Uniforms are addressed by the names declared
// in the source; names rewritten by translation are resolved through names.
type Shader struct {
	ID        uint32
	names     map[string]string
	locations map[string]int32
}

// CompileSource translates src when needed and links it.
func CompileSource(src shader.Source) (*Shader, error) {
	prog, err := xlate.Translate(src)
	if err != nil {
		return nil, err
	}
	return NewShader(prog.Vertex.Code, prog.Fragment.Code, prog.Names())
}

// NewShader compiles and links a program from desktop GLSL stages.
func NewShader(vertexShaderSource, fragmentShaderSource string, names map[string]string) (*Shader, error) {
	id, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	return &Shader{
		ID:        id,
		names:     names,
		locations: make(map[string]int32),
	}, nil
}

func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

func (s *Shader) Destroy() {
	gl.DeleteProgram(s.ID)
	s.ID = 0
}

// Location returns the uniform location for a declared name, or -1 when the
// program does not use it.
func (s *Shader) Location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	mapped := name
	if m, ok := s.names[name]; ok && m != "" {
		mapped = m
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(mapped+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := s.Location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := s.Location(name); loc != -1 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	if loc := s.Location(name); loc != -1 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (s *Shader) SetFloat(name string, f float32) {
	if loc := s.Location(name); loc != -1 {
		gl.Uniform1f(loc, f)
	}
}

func (s *Shader) SetInt(name string, i int32) {
	if loc := s.Location(name); loc != -1 {
		gl.Uniform1i(loc, i)
	}
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(logText))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("failed to compile %s shader: %v", stageName(shaderType), strings.TrimRight(logText, "\x00"))
	}
	return sh, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return "unknown"
	}
}
