package glw

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/mobile/gl"
)

// stubContext records every Context call in order and scripts shader
// compile and program link status.
type stubContext struct {
	ops []string

	failCompile map[gl.Enum]bool
	failLink    bool
	infoLog     string

	nextName    uint32
	shaderTypes map[uint32]gl.Enum
}

func newStub() *stubContext {
	return &stubContext{
		failCompile: make(map[gl.Enum]bool),
		shaderTypes: make(map[uint32]gl.Enum),
		infoLog:     "0:1: stub info log",
	}
}

func (c *stubContext) record(format string, args ...interface{}) {
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

func (c *stubContext) name() uint32 { c.nextName++; return c.nextName }

func (c *stubContext) CreateShader(ty gl.Enum) gl.Shader {
	n := c.name()
	c.shaderTypes[n] = ty
	c.record("CreateShader(%v)", ty)
	return gl.Shader{Value: n}
}

func (c *stubContext) ShaderSource(s gl.Shader, src string) { c.record("ShaderSource(%v)", s.Value) }
func (c *stubContext) CompileShader(s gl.Shader)            { c.record("CompileShader(%v)", s.Value) }

func (c *stubContext) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && c.failCompile[c.shaderTypes[s.Value]] {
		return 0
	}
	return 1
}

func (c *stubContext) GetShaderInfoLog(s gl.Shader) string { return c.infoLog }
func (c *stubContext) DeleteShader(s gl.Shader)            { c.record("DeleteShader(%v)", s.Value) }

func (c *stubContext) CreateProgram() gl.Program {
	n := c.name()
	c.record("CreateProgram")
	return gl.Program{Init: true, Value: n}
}

func (c *stubContext) AttachShader(p gl.Program, s gl.Shader) {
	c.record("AttachShader(%v, %v)", p.Value, s.Value)
}

func (c *stubContext) LinkProgram(p gl.Program) { c.record("LinkProgram(%v)", p.Value) }

func (c *stubContext) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && c.failLink {
		return 0
	}
	return 1
}

func (c *stubContext) GetProgramInfoLog(p gl.Program) string { return c.infoLog }
func (c *stubContext) UseProgram(p gl.Program)               { c.record("UseProgram(%v)", p.Value) }
func (c *stubContext) DeleteProgram(p gl.Program)            { c.record("DeleteProgram(%v)", p.Value) }

func (c *stubContext) CreateBuffer() gl.Buffer {
	n := c.name()
	c.record("CreateBuffer")
	return gl.Buffer{Value: n}
}

func (c *stubContext) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.record("BindBuffer(%v, %v)", target, b.Value)
}

func (c *stubContext) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	c.record("BufferData(%v, %v, %v)", target, len(src), usage)
}

func (c *stubContext) BufferSubData(target gl.Enum, offset int, src []byte) {
	c.record("BufferSubData(%v, %v, %v)", target, offset, len(src))
}

func (c *stubContext) DeleteBuffer(b gl.Buffer) { c.record("DeleteBuffer(%v)", b.Value) }

func (c *stubContext) CreateVertexArray() gl.VertexArray {
	n := c.name()
	c.record("CreateVertexArray")
	return gl.VertexArray{Value: n}
}

func (c *stubContext) BindVertexArray(a gl.VertexArray) {
	c.record("BindVertexArray(%v)", a.Value)
}

func (c *stubContext) DeleteVertexArray(a gl.VertexArray) {
	c.record("DeleteVertexArray(%v)", a.Value)
}

func (c *stubContext) EnableVertexAttribArray(a gl.Attrib) {
	c.record("EnableVertexAttribArray(%v)", a.Value)
}

func (c *stubContext) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer(%v, %v, %v, %v, %v, %v)", dst.Value, size, ty, normalized, stride, offset)
}

func (c *stubContext) DrawArrays(mode gl.Enum, first, count int) {
	c.record("DrawArrays(%v, %v, %v)", mode, first, count)
}

func (c *stubContext) ClearColor(red, green, blue, alpha float32) {
	c.record("ClearColor(%v, %v, %v, %v)", red, green, blue, alpha)
}

func (c *stubContext) Clear(mask gl.Enum) { c.record("Clear(%v)", mask) }

func (c *stubContext) Viewport(x, y, width, height int) {
	c.record("Viewport(%v, %v, %v, %v)", x, y, width, height)
}

const (
	vsrc VertSrc = "void main() {}"
	fsrc FragSrc = "void main() {}"
)

func TestProgramBuild(t *testing.T) {
	stub := newStub()
	With(stub)

	var prg Program
	if err := prg.Build(vsrc, fsrc); err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{
		"CreateProgram",
		fmt.Sprintf("CreateShader(%v)", gl.Enum(gl.VERTEX_SHADER)),
		"ShaderSource(2)",
		"CompileShader(2)",
		"AttachShader(1, 2)",
		fmt.Sprintf("CreateShader(%v)", gl.Enum(gl.FRAGMENT_SHADER)),
		"ShaderSource(3)",
		"CompileShader(3)",
		"AttachShader(1, 3)",
		"LinkProgram(1)",
		"DeleteShader(3)",
		"DeleteShader(2)",
	}
	if have := stub.ops; !reflect.DeepEqual(want, have) {
		t.Fatalf("build sequence failed\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestCompileFailureNamesStage(t *testing.T) {
	tests := []struct {
		stage string
		typ   gl.Enum
	}{
		{"VertexShader", gl.VERTEX_SHADER},
		{"FragmentShader", gl.FRAGMENT_SHADER},
	}
	for _, tt := range tests {
		stub := newStub()
		stub.failCompile[tt.typ] = true
		With(stub)

		var prg Program
		err := prg.Build(vsrc, fsrc)
		if err == nil {
			t.Fatalf("%v: Build returned nil error", tt.stage)
		}
		if !strings.Contains(err.Error(), tt.stage) {
			t.Fatalf("error does not name stage\nwant: %v\nhave: %v\n", tt.stage, err)
		}
		if !strings.Contains(err.Error(), stub.infoLog) {
			t.Fatalf("error does not carry info log\nwant: %v\nhave: %v\n", stub.infoLog, err)
		}
	}
}

func TestLinkFailure(t *testing.T) {
	stub := newStub()
	stub.failLink = true
	With(stub)

	var prg Program
	err := prg.Build(vsrc, fsrc)
	if err == nil {
		t.Fatal("Build returned nil error")
	}
	if !strings.Contains(err.Error(), "LinkProgram") {
		t.Fatalf("error does not name link step\nhave: %v\n", err)
	}
}

func TestFloatBufferCreate(t *testing.T) {
	stub := newStub()
	With(stub)

	data := []float32{
		-0.5, -0.5, 0.0,
		+0.5, -0.5, 0.0,
		+0.0, +0.5, 0.0,
	}
	var buf FloatBuffer
	buf.Create(gl.STATIC_DRAW, data)

	want := []string{
		"CreateBuffer",
		fmt.Sprintf("BindBuffer(%v, 1)", gl.Enum(gl.ARRAY_BUFFER)),
		fmt.Sprintf("BufferData(%v, 36, %v)", gl.Enum(gl.ARRAY_BUFFER), gl.Enum(gl.STATIC_DRAW)),
	}
	if have := stub.ops; !reflect.DeepEqual(want, have) {
		t.Fatalf("create sequence failed\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestFloatBufferUpdateSubData(t *testing.T) {
	stub := newStub()
	With(stub)

	var buf FloatBuffer
	buf.Create(gl.STATIC_DRAW, make([]float32, 9))
	stub.ops = nil

	buf.Update(make([]float32, 6))
	want := []string{fmt.Sprintf("BufferSubData(%v, 0, 36)", gl.Enum(gl.ARRAY_BUFFER))}
	if have := stub.ops; !reflect.DeepEqual(want, have) {
		t.Fatalf("update sequence failed\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestVertexArrayPointer(t *testing.T) {
	stub := newStub()
	With(stub)

	var va VertexArray
	va.Create()
	va.Pointer(3)

	want := []string{
		"CreateVertexArray",
		"BindVertexArray(1)",
		"EnableVertexAttribArray(0)",
		fmt.Sprintf("VertexAttribPointer(0, 3, %v, false, 12, 0)", gl.Enum(gl.FLOAT)),
	}
	if have := stub.ops; !reflect.DeepEqual(want, have) {
		t.Fatalf("pointer sequence failed\nwant: %v\nhave: %v\n", want, have)
	}
}

func TestVertexArrayDraw(t *testing.T) {
	stub := newStub()
	With(stub)

	var buf FloatBuffer
	buf.Create(gl.STATIC_DRAW, make([]float32, 9))

	var va VertexArray
	va.Create()
	va.Pointer(3)
	stub.ops = nil

	va.Draw(gl.TRIANGLES, buf)
	want := []string{fmt.Sprintf("DrawArrays(%v, 0, 3)", gl.Enum(gl.TRIANGLES))}
	if have := stub.ops; !reflect.DeepEqual(want, have) {
		t.Fatalf("draw failed\nwant: %v\nhave: %v\n", want, have)
	}
}
