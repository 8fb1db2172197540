package shader

// The built-in cube program, used when the shader asset cannot be read. It is
// written against WebGL2 so it goes through the translator like user sources.

const defaultVertex = `#version 300 es
layout (location = 0) in vec3 a_Position;
layout (location = 1) in vec2 a_TexCoord;

uniform mat4  u_Model;
uniform mat4  u_View;
uniform mat4  u_Projection;
uniform vec3  u_ModifiedCoords;
uniform float u_DimensionScalar;

out vec2 v_TexCoord;

void main() {
    vec3 pos = a_Position * u_DimensionScalar + u_ModifiedCoords;
    gl_Position = u_Projection * u_View * u_Model * vec4(pos, 1.0);
    v_TexCoord = a_TexCoord;
}
`

const defaultFragment = `#version 300 es
precision mediump float;

in vec2 v_TexCoord;
out vec4 fragColor;

uniform sampler2D texture1;
uniform vec4      u_Color;

void main() {
    fragColor = texture(texture1, v_TexCoord) * u_Color;
}
`

// Default is the built-in program source.
var Default = Source{
	Vertex:   defaultVertex,
	Fragment: defaultFragment,
}

// Uniform names the cube program declares.
const (
	UniformModel           = "u_Model"
	UniformView            = "u_View"
	UniformProjection      = "u_Projection"
	UniformModifiedCoords  = "u_ModifiedCoords"
	UniformDimensionScalar = "u_DimensionScalar"
	UniformColor           = "u_Color"
	UniformTexture         = "texture1"
)
