package glw

import "golang.org/x/mobile/gl"

// VertexArray stores how the bytes of a bound FloatBuffer map onto the
// shader input attribute it feeds. The zero Attrib addresses location 0.
type VertexArray struct {
	gl.Attrib
	array gl.VertexArray
	size  int
}

// Create generates the vertex array and binds it; attribute pointer calls
// that follow are stored by it.
func (va *VertexArray) Create() {
	va.array = ctx.CreateVertexArray()
	va.Bind()
}

// Delete frees the memory and invalidates the name associated with the array.
func (va VertexArray) Delete() { ctx.DeleteVertexArray(va.array) }

// Bind binds the vertex array.
func (va VertexArray) Bind() { ctx.BindVertexArray(va.array) }

// Unbind clears the vertex array binding.
func (va VertexArray) Unbind() { ctx.BindVertexArray(gl.VertexArray{Value: 0}) }

// Pointer enables the attribute and stores the layout of the bound buffer:
// size contiguous floats per vertex, tightly packed, not normalized.
func (va *VertexArray) Pointer(size int) {
	va.size = size
	ctx.EnableVertexAttribArray(va.Attrib)
	ctx.VertexAttribPointer(va.Attrib, size, gl.FLOAT, false, size*4, 0)
}

// Draw submits one draw of every whole vertex in buf.
func (va VertexArray) Draw(mode gl.Enum, buf FloatBuffer) {
	ctx.DrawArrays(mode, 0, buf.count/va.size)
}
