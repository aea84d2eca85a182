package glw

import (
	"math"

	"golang.org/x/mobile/gl"
)

// FloatBuffer is an array buffer of float32 data.
type FloatBuffer struct {
	gl.Buffer
	bin   []byte
	count int
	usage gl.Enum
}

// Create generates the buffer, binds it, and uploads data with the given
// usage hint.
func (buf *FloatBuffer) Create(usage gl.Enum, data []float32) {
	buf.usage = usage
	buf.Buffer = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

// Delete frees the memory and invalidates the name associated with the buffer.
func (buf FloatBuffer) Delete() { ctx.DeleteBuffer(buf.Buffer) }

// Bind binds the buffer to the array buffer target.
func (buf *FloatBuffer) Bind() { ctx.BindBuffer(gl.ARRAY_BUFFER, buf.Buffer) }

// Unbind clears the array buffer target.
func (buf FloatBuffer) Unbind() { ctx.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{Value: 0}) }

// Update uploads data to the bound buffer, reallocating GPU storage only
// when data no longer fits the previous allocation.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	subok := len(buf.bin) > 0 && len(data)*4 <= len(buf.bin)
	if !subok {
		buf.bin = make([]byte, len(data)*4)
	}
	for i, x := range data {
		u := math.Float32bits(x)
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	if subok {
		ctx.BufferSubData(gl.ARRAY_BUFFER, 0, buf.bin)
	} else {
		ctx.BufferData(gl.ARRAY_BUFFER, buf.bin, buf.usage)
	}
}
