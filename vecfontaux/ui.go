//go:build !tinygo && cgo

package vecfontaux

import (
	"errors"
	"fmt"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/v4.1-core/glgl"
	"github.com/soypat/vecfont"
	"github.com/soypat/vecfont/glbuild"
)

// UI is a window with a current OpenGL context that draws line geometry.
type UI struct {
	window *glfw.Window
	prog   glgl.Program
	vao    uint32
	vbo    uint32
	cfg    UIConfig
}

var _ vecfont.LineDrawer = (*UI)(nil)

func newUI(cfg UIConfig) (*UI, error) {
	window, err := startGLFW(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return nil, err
	}
	tracer().Infof("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   cfg.Shaders.Vertex,
		Fragment: cfg.Shaders.Fragment,
	})
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("compiling line program: %w", err)
	}
	prog.Bind()
	ui := &UI{
		window: window,
		prog:   prog,
		cfg:    cfg,
	}
	gl.GenVertexArrays(1, &ui.vao)
	gl.BindVertexArray(ui.vao)
	c := cfg.ClearColor
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	err = glgl.Err()
	if err != nil {
		ui.Terminate()
		return nil, err
	}
	return ui, nil
}

// DrawLines uploads vb to a vertex buffer object, draws it as a line list and swaps
// the window buffers once.
func (ui *UI) DrawLines(vb vecfont.VertexBuffer) error {
	if vb.Segments <= 0 {
		return errors.New("no line segments to draw")
	} else if len(vb.Vertices) < 2*vb.Segments {
		return errors.New("vertex buffer shorter than segment count")
	}
	if ui.vbo == 0 {
		gl.GenBuffers(1, &ui.vbo)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, ui.vbo)
	size := int(unsafe.Sizeof(vecfont.Vertex{})) * len(vb.Vertices)
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vb.Vertices), gl.STATIC_DRAW)
	posAttrib, err := ui.prog.AttribLocation(glbuild.PositionAttrib + "\x00")
	if err != nil {
		return err
	}
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointerWithOffset(posAttrib, 3, gl.SHORT, true, 0, 0)

	gl.Clear(gl.COLOR_BUFFER_BIT)
	tracer().Debugf("GL_LINES element count: %d", vb.VertexCount())
	gl.DrawArrays(gl.LINES, 0, vb.VertexCount())
	err = glgl.Err()
	if err != nil {
		return fmt.Errorf("drawing lines: %w", err)
	}
	ui.window.SwapBuffers()
	ui.linger()
	return nil
}

// linger keeps the window responsive for the configured duration or until closed.
func (ui *UI) linger() {
	deadline := time.Now().Add(ui.cfg.Linger)
	for !ui.window.ShouldClose() {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		glfw.WaitEventsTimeout(remaining.Seconds())
	}
}

// Terminate releases GL resources and terminates GLFW.
func (ui *UI) Terminate() {
	if ui.vbo != 0 {
		gl.DeleteBuffers(1, &ui.vbo)
	}
	if ui.vao != 0 {
		gl.DeleteVertexArrays(1, &ui.vao)
	}
	ui.prog.Delete()
	glfw.Terminate()
}

func startGLFW(width, height int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	return window, nil
}
