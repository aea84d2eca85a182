package glw

import "golang.org/x/mobile/gl"

// Context is the subset of gl.Context this package issues, phrased in the
// handle and enum types of golang.org/x/mobile/gl. The desktop build
// installed by Load satisfies it with go-gl calls; tests substitute their
// own recording implementations.
type Context interface {
	CreateShader(ty gl.Enum) gl.Shader
	ShaderSource(s gl.Shader, src string)
	CompileShader(s gl.Shader)
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string
	DeleteShader(s gl.Shader)

	CreateProgram() gl.Program
	AttachShader(p gl.Program, s gl.Shader)
	LinkProgram(p gl.Program)
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	UseProgram(p gl.Program)
	DeleteProgram(p gl.Program)

	CreateBuffer() gl.Buffer
	BindBuffer(target gl.Enum, b gl.Buffer)
	BufferData(target gl.Enum, src []byte, usage gl.Enum)
	BufferSubData(target gl.Enum, offset int, src []byte)
	DeleteBuffer(b gl.Buffer)

	CreateVertexArray() gl.VertexArray
	BindVertexArray(a gl.VertexArray)
	DeleteVertexArray(a gl.VertexArray)
	EnableVertexAttribArray(a gl.Attrib)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)

	DrawArrays(mode gl.Enum, first, count int)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask gl.Enum)
	Viewport(x, y, width, height int)
}

// ctx is the package context for wrapper types.
// TODO allow package to be used by multiple contexts in parallel.
var ctx Context

// With sets the package context used by wrapper types and returns it.
func With(glctx Context) Context { ctx = glctx; return glctx }
