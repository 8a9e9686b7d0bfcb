package gfx2d

// Names the pipeline resolves in its program.
const (
	AttrPosition  = "a_pos"
	UniformMatrix = "u_matrix"
	UniformColor  = "u_color"
)

// VertexShaderSource takes pixel positions straight to clip space. u_matrix
// already contains the pixel-to-clip projection.
const VertexShaderSource = `
#version 410 core
in vec2 a_pos;

uniform mat3 u_matrix;

void main() {
    vec2 clip = (u_matrix * vec3(a_pos, 1.0)).xy;
    gl_Position = vec4(clip, 0.0, 1.0);
}
`

// FragmentShaderSource fills every fragment with u_color.
const FragmentShaderSource = `
#version 410 core
uniform vec4 u_color;

out vec4 FragColor;

void main() {
    FragColor = u_color;
}
`
