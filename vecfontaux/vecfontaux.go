// Package vecfontaux puts vecfont geometry on screen or into image files.
package vecfontaux

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/soypat/vecfont"
	"github.com/soypat/vecfont/glbuild"
	"github.com/soypat/vecfont/glrender"
)

// tracer traces with key 'vecfont.gl'.
func tracer() tracing.Trace {
	return tracing.Select("vecfont.gl")
}

// UIConfig configures the window opened by [NewUI].
type UIConfig struct {
	Width, Height int
	Title         string
	// Shaders is the program used to draw lines. If zero the embedded
	// shaders of [glbuild.DefaultShaders] are used.
	Shaders    glbuild.ShaderPair
	ClearColor color.RGBA
	// Linger keeps the window open after drawing. Zero returns right after the buffer swap.
	Linger time.Duration
}

func (cfg UIConfig) withDefaults() (UIConfig, error) {
	if cfg.Width < 0 || cfg.Height < 0 {
		return cfg, errors.New("negative window dimension")
	}
	if cfg.Width == 0 {
		cfg.Width = 800
	}
	if cfg.Height == 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "vecfont"
	}
	if cfg.ClearColor == (color.RGBA{}) {
		cfg.ClearColor = color.RGBA{A: 255}
	}
	if cfg.Shaders == (glbuild.ShaderPair{}) {
		shaders, err := glbuild.DefaultShaders()
		if err != nil {
			return cfg, err
		}
		cfg.Shaders = shaders
	}
	return cfg, nil
}

// NewUI opens a window with a current OpenGL context and a bound line program.
// The caller must call [UI.Terminate] when done. NewUI must be called from the main
// OS thread, see [runtime.LockOSThread].
func NewUI(cfg UIConfig) (*UI, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	return newUI(cfg)
}

// RenderPNGFile rasterizes vb on the CPU over a black background and saves it to a PNG file.
func RenderPNGFile(filename string, vb vecfont.VertexBuffer, width, height int) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = WritePNG(fp, vb, width, height)
	if err != nil {
		return err
	}
	return fp.Sync()
}

// WritePNG rasterizes vb on the CPU over a black background and PNG encodes the result to w.
func WritePNG(w io.Writer, vb vecfont.VertexBuffer, width, height int) error {
	img, err := RenderImage(vb, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RenderImage rasterizes vb with white lines over a black background.
func RenderImage(vb vecfont.VertexBuffer, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	ir, err := glrender.NewImageRenderer(img, glrender.ImageConfig{})
	if err != nil {
		return nil, err
	}
	err = ir.DrawLines(vb)
	if err != nil {
		return nil, fmt.Errorf("rasterizing lines: %w", err)
	}
	tracer().Debugf("rasterized %d segments to %dx%d image", vb.Segments, width, height)
	return img, nil
}
