package glw

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	mobile "golang.org/x/mobile/gl"
)

// Load resolves the OpenGL function table for the current context and
// installs the desktop-backed Context for package use. A context must be
// current on the calling thread.
func Load() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glw: load functions: %w", err)
	}
	return With(desktop{}), nil
}

// desktop issues Context calls through the go-gl bindings.
type desktop struct{}

func (desktop) CreateShader(ty mobile.Enum) mobile.Shader {
	return mobile.Shader{Value: gl.CreateShader(uint32(ty))}
}

func (desktop) ShaderSource(s mobile.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.Value, 1, csrc, nil)
	free()
}

func (desktop) CompileShader(s mobile.Shader) { gl.CompileShader(s.Value) }

func (desktop) GetShaderi(s mobile.Shader, pname mobile.Enum) int {
	var v int32
	gl.GetShaderiv(s.Value, uint32(pname), &v)
	return int(v)
}

func (desktop) GetShaderInfoLog(s mobile.Shader) string {
	var n int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &n)
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(s.Value, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (desktop) DeleteShader(s mobile.Shader) { gl.DeleteShader(s.Value) }

func (desktop) CreateProgram() mobile.Program {
	return mobile.Program{Init: true, Value: gl.CreateProgram()}
}

func (desktop) AttachShader(p mobile.Program, s mobile.Shader) { gl.AttachShader(p.Value, s.Value) }

func (desktop) LinkProgram(p mobile.Program) { gl.LinkProgram(p.Value) }

func (desktop) GetProgrami(p mobile.Program, pname mobile.Enum) int {
	var v int32
	gl.GetProgramiv(p.Value, uint32(pname), &v)
	return int(v)
}

func (desktop) GetProgramInfoLog(p mobile.Program) string {
	var n int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &n)
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(p.Value, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (desktop) UseProgram(p mobile.Program) { gl.UseProgram(p.Value) }

func (desktop) DeleteProgram(p mobile.Program) { gl.DeleteProgram(p.Value) }

func (desktop) CreateBuffer() mobile.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return mobile.Buffer{Value: b}
}

func (desktop) BindBuffer(target mobile.Enum, b mobile.Buffer) {
	gl.BindBuffer(uint32(target), b.Value)
}

func (desktop) BufferData(target mobile.Enum, src []byte, usage mobile.Enum) {
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (desktop) BufferSubData(target mobile.Enum, offset int, src []byte) {
	gl.BufferSubData(uint32(target), offset, len(src), gl.Ptr(src))
}

func (desktop) DeleteBuffer(b mobile.Buffer) { gl.DeleteBuffers(1, &b.Value) }

func (desktop) CreateVertexArray() mobile.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return mobile.VertexArray{Value: a}
}

func (desktop) BindVertexArray(a mobile.VertexArray) { gl.BindVertexArray(a.Value) }

func (desktop) DeleteVertexArray(a mobile.VertexArray) { gl.DeleteVertexArrays(1, &a.Value) }

func (desktop) EnableVertexAttribArray(a mobile.Attrib) {
	gl.EnableVertexAttribArray(uint32(a.Value))
}

func (desktop) VertexAttribPointer(dst mobile.Attrib, size int, ty mobile.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(dst.Value), int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (desktop) DrawArrays(mode mobile.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (desktop) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (desktop) Clear(mask mobile.Enum) { gl.Clear(uint32(mask)) }

func (desktop) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
