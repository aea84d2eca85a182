package tri

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key identifies a keyboard key polled through a Surface.
type Key int

// KeyEscape requests close when pressed during the input step.
const KeyEscape = Key(glfw.KeyEscape)

// Surface is the window and context surface the runner drives: close flag,
// key polling, buffer swap, event pump, and framebuffer-resize delivery.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(close bool)
	Pressed(key Key) bool
	SwapBuffers()
	PollEvents()
	FramebufferSize() (width, height int)
	OnResize(fn func(width, height int))
	Terminate()
}

// Window is the glfw-backed Surface.
type Window struct {
	win *glfw.Window
}

// Open initializes glfw, creates the window with a 3.3 core context, and
// makes that context current on the calling thread. The caller resolves the
// function table afterwards, see glw.Load.
func Open(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("tri: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("tri: create window: %w", err)
	}
	win.MakeContextCurrent()

	return &Window{win: win}, nil
}

func (w *Window) ShouldClose() bool          { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(close bool)  { w.win.SetShouldClose(close) }
func (w *Window) Pressed(key Key) bool       { return w.win.GetKey(glfw.Key(key)) == glfw.Press }
func (w *Window) SwapBuffers()               { w.win.SwapBuffers() }
func (w *Window) PollEvents()                { glfw.PollEvents() }
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

// OnResize registers fn for framebuffer-size changes, replacing any
// previously registered fn.
func (w *Window) OnResize(fn func(width, height int)) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// Terminate destroys the window and shuts glfw down.
func (w *Window) Terminate() { glfw.Terminate() }
