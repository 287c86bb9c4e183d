// Package glrender rasterizes vecfont line geometry on the CPU the same way
// a GL pipeline with a pass-through vertex shader would display it.
package glrender

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/golang/freetype/raster"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/vecfont"
	"golang.org/x/image/math/fixed"
)

// ImageConfig configures an [ImageRenderer].
type ImageConfig struct {
	// LineWidth is the stroke width in pixels. If zero 1.5 is used.
	LineWidth float32
	// Color of the lines. If nil white is used.
	Color color.Color
}

// ImageRenderer draws line segments onto an RGBA image. It implements [vecfont.LineDrawer].
type ImageRenderer struct {
	img     *image.RGBA
	rast    *raster.Rasterizer
	painter *raster.RGBAPainter
	width   fixed.Int26_6
	path    raster.Path
}

var _ vecfont.LineDrawer = (*ImageRenderer)(nil)

// NewImageRenderer returns an ImageRenderer that draws over img. The image bounds
// act as the GL viewport.
func NewImageRenderer(img *image.RGBA, cfg ImageConfig) (*ImageRenderer, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	bb := img.Bounds()
	if bb.Dx() <= 0 || bb.Dy() <= 0 {
		return nil, errors.New("empty image bounds")
	} else if bb.Min != (image.Point{}) {
		return nil, errors.New("image bounds must start at origin")
	}
	if cfg.LineWidth < 0 || math32.IsNaN(cfg.LineWidth) {
		return nil, errors.New("invalid line width")
	} else if cfg.LineWidth == 0 {
		cfg.LineWidth = 1.5
	}
	if cfg.Color == nil {
		cfg.Color = color.White
	}
	painter := raster.NewRGBAPainter(img)
	painter.SetColor(cfg.Color)
	rast := raster.NewRasterizer(bb.Dx(), bb.Dy())
	rast.UseNonZeroWinding = true
	return &ImageRenderer{
		img:     img,
		rast:    rast,
		painter: painter,
		width:   toFixed(cfg.LineWidth),
	}, nil
}

// DrawLines strokes every segment of vb. Vertices are interpreted as normalized
// signed shorts, as a 3 component SHORT vertex attribute with normalization enabled.
func (ir *ImageRenderer) DrawLines(vb vecfont.VertexBuffer) error {
	if len(vb.Vertices)%2 != 0 {
		return errors.New("odd number of line vertices")
	} else if len(vb.Vertices) < 2*vb.Segments {
		return errors.New("vertex buffer shorter than segment count")
	}
	bb := ir.img.Bounds()
	w, h := float32(bb.Dx()), float32(bb.Dy())
	for i := 0; i < vb.Segments; i++ {
		a := ir.pixel(NDC(vb.Vertices[2*i]), w, h)
		b := ir.pixel(NDC(vb.Vertices[2*i+1]), w, h)
		if a == b {
			continue
		}
		ir.path.Clear()
		ir.path.Start(a)
		ir.path.Add1(b)
		ir.rast.Clear()
		raster.Stroke(ir.rast, ir.path, ir.width, raster.ButtCapper, raster.BevelJoiner)
		ir.rast.Rasterize(ir.painter)
	}
	return nil
}

// pixel maps normalized device coordinates to the rasterizer's pixel space, Y down.
func (ir *ImageRenderer) pixel(ndc ms2.Vec, w, h float32) fixed.Point26_6 {
	return fixed.Point26_6{
		X: toFixed((ndc.X + 1) / 2 * w),
		Y: toFixed((1 - ndc.Y) / 2 * h),
	}
}

// NDC returns the normalized device coordinates of v as seen by a pass-through
// vertex shader reading a normalized SHORT attribute.
func NDC(v vecfont.Vertex) ms2.Vec {
	return ms2.Vec{X: normShort(v.X), Y: normShort(v.Y)}
}

func normShort(v int16) float32 {
	return math32.Max(float32(v)/math.MaxInt16, -1)
}

func toFixed(f float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(f * 64))
}
