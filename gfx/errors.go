package gfx

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.3-core/gl"
)

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	0x503:                            "GL_STACK_OVERFLOW",
	0x504:                            "GL_STACK_UNDERFLOW",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	0x507:                            "GL_CONTEXT_LOST",
}

// CheckError drains the GL error queue and reports the first error seen.
func CheckError() error {
	var first error
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == nil {
			name, ok := glErrorNames[code]
			if !ok {
				name = fmt.Sprintf("0x%x", code)
			}
			first = fmt.Errorf("GL error: %s", name)
		}
	}
	return first
}
