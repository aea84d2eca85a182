// Package tri walks through the smallest useful OpenGL pipeline: one
// window, one shader program, one buffer of three vertices, and a frame
// loop that draws them until the window closes.
package tri

import (
	"golang.org/x/image/math/f32"

	"dasa.cc/tri/glw"
)

const vsrc glw.VertSrc = `#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}`

const fsrc glw.FragSrc = `#version 330 core
out vec4 FragColor;

void main() {
	FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}`

// Config carries the fixed inputs of setup; nothing is read from flags,
// environment, or files.
type Config struct {
	Width, Height int
	Title         string

	ClearColor f32.Vec4

	VertexShader   glw.VertSrc
	FragmentShader glw.FragSrc

	// Triangle holds the corners in normalized device coordinates.
	Triangle [3]f32.Vec3
}

// DefaultConfig returns the walkthrough constants: an 800x600 window, the
// orange-on-teal shader pair, and one triangle centered on the origin.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Title:          "Triangle",
		ClearColor:     f32.Vec4{0.2, 0.3, 0.3, 1.0},
		VertexShader:   vsrc,
		FragmentShader: fsrc,
		Triangle: [3]f32.Vec3{
			{-0.5, -0.5, 0.0},
			{+0.5, -0.5, 0.0},
			{+0.0, +0.5, 0.0},
		},
	}
}
