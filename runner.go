package tri

import (
	"log"
	"os"

	"golang.org/x/mobile/gl"

	"dasa.cc/tri/glw"
)

var logger = log.New(os.Stdout, "tri: ", 0)

// Frame loop states. The runner leaves running exactly once, at the loop
// head after the close flag is observed.
const (
	running = iota
	closing
)

// Runner owns the handles created during setup and drives the frame loop.
// Teardown releases them in reverse order of creation.
type Runner struct {
	cfg   Config
	sfc   Surface
	glctx glw.Context

	prg glw.Program
	vbo glw.FloatBuffer
	vao glw.VertexArray

	state int
}

// NewRunner returns a Runner drawing to sfc through glctx.
func NewRunner(cfg Config, sfc Surface, glctx glw.Context) *Runner {
	return &Runner{cfg: cfg, sfc: sfc, glctx: glctx, state: running}
}

// Setup compiles and links the shader program, uploads the triangle, stores
// its layout at attribute location 0, and registers the resize handler. A
// compile or link failure is logged and setup carries on; the program
// handle stays valid for use and teardown either way.
func (r *Runner) Setup() {
	if err := r.prg.Build(r.cfg.VertexShader, r.cfg.FragmentShader); err != nil {
		logger.Print(err)
	}
	r.prg.Use()

	verts := make([]float32, 0, 3*len(r.cfg.Triangle))
	for _, v := range r.cfg.Triangle {
		verts = append(verts, v[0], v[1], v[2])
	}
	r.vbo.Create(gl.STATIC_DRAW, verts)

	r.vao.Create()
	r.vbo.Bind()
	r.vao.Pointer(3)
	r.vbo.Unbind()
	r.vao.Unbind()

	r.sfc.OnResize(r.resize)
	r.resize(r.sfc.FramebufferSize())
}

// resize keeps the viewport matched to the framebuffer.
func (r *Runner) resize(width, height int) {
	r.glctx.Viewport(0, 0, width, height)
}

// Run drives the frame loop until the surface reports close, then releases
// everything Setup created.
func (r *Runner) Run() {
	for r.state == running {
		if r.sfc.ShouldClose() {
			r.state = closing
			break
		}
		r.frame()
	}
	r.teardown()
}

// frame executes one iteration: input, clear and draw, present.
func (r *Runner) frame() {
	r.input()

	c := r.cfg.ClearColor
	r.glctx.ClearColor(c[0], c[1], c[2], c[3])
	r.glctx.Clear(gl.COLOR_BUFFER_BIT)

	r.prg.Use()
	r.vao.Bind()
	r.vao.Draw(gl.TRIANGLES, r.vbo)

	r.sfc.SwapBuffers()
	r.sfc.PollEvents()
}

// input requests close when escape is down.
func (r *Runner) input() {
	if r.sfc.Pressed(KeyEscape) {
		r.sfc.SetShouldClose(true)
	}
}

func (r *Runner) teardown() {
	r.vao.Delete()
	r.vbo.Delete()
	r.prg.Delete()
	r.sfc.Terminate()
}
