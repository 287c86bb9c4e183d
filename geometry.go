package vecfont

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

const (
	// GlyphAdvance is the horizontal distance between glyph slots before scaling.
	GlyphAdvance = 4
	// GlyphBias is the horizontal offset of slot zero before scaling.
	GlyphBias = -20
)

// Vertex is a line segment endpoint in model space. Z is always zero.
// Vertex has the memory layout of three packed int16 so a []Vertex
// can be uploaded as is to a 3 component SHORT vertex attribute.
type Vertex struct {
	X, Y, Z int16
}

// VertexBuffer holds line-list geometry. Vertices come in pairs, one pair per segment.
type VertexBuffer struct {
	Vertices []Vertex
	Segments int
}

// VertexCount returns the number of vertices to submit to a line-list draw call.
func (vb VertexBuffer) VertexCount() int32 {
	return int32(2 * vb.Segments)
}

// Lines returns the segments of the buffer as vertex pairs.
func (vb VertexBuffer) Lines() [][2]Vertex {
	lines := make([][2]Vertex, 0, len(vb.Vertices)/2)
	for i := 0; i+1 < len(vb.Vertices); i += 2 {
		lines = append(lines, [2]Vertex{vb.Vertices[i], vb.Vertices[i+1]})
	}
	return lines
}

// Bounds returns the bounding box of all vertices. An empty buffer returns the zero Box.
func (vb VertexBuffer) Bounds() ms2.Box {
	if len(vb.Vertices) == 0 {
		return ms2.Box{}
	}
	bb := ms2.Box{
		Min: ms2.Vec{X: math32.Inf(1), Y: math32.Inf(1)},
		Max: ms2.Vec{X: math32.Inf(-1), Y: math32.Inf(-1)},
	}
	for _, v := range vb.Vertices {
		p := ms2.Vec{X: float32(v.X), Y: float32(v.Y)}
		bb.Min = ms2.MinElem(bb.Min, p)
		bb.Max = ms2.MaxElem(bb.Max, p)
	}
	return bb
}

// SegmentCount returns the number of line segments of g as (points-1) - 2*breaks,
// or zero if that is negative. The formula assumes breaks are isolated interior points:
// adjacent breaks or a break at either end of the glyph make it undercount.
func SegmentCount(g Glyph) int {
	n := g.Len()
	if n == 0 {
		return 0
	}
	return max(0, (n-1)-2*g.Breaks())
}

// AppendSegments appends the line segments of g placed at the zero-based slot
// and multiplied by scale to dst and returns the result. Pairs of points touching
// a LineBreak are skipped. If a resulting coordinate does not fit in an int16 an
// error wrapping [ErrCoordinateOverflow] is returned together with dst as it was
// before the call.
func AppendSegments(dst []Vertex, g Glyph, scale, slot int) ([]Vertex, error) {
	start := len(dst)
	if slot < 0 {
		return dst, fmt.Errorf("negative slot %d", slot)
	} else if slot > maxCoord {
		return dst, fmt.Errorf("slot %d: %w", slot, ErrCoordinateOverflow)
	}
	offset := GlyphAdvance*slot + GlyphBias
	for j := 0; j < len(g.points)-1; j++ {
		p0, p1 := g.points[j], g.points[j+1]
		if p0.IsBreak() || p1.IsBreak() {
			continue
		}
		a, err := makeVertex(p0, offset, scale)
		if err != nil {
			return dst[:start], fmt.Errorf("point %d: %w", j, err)
		}
		b, err := makeVertex(p1, offset, scale)
		if err != nil {
			return dst[:start], fmt.Errorf("point %d: %w", j+1, err)
		}
		dst = append(dst, a, b)
	}
	tracer().Debugf("slot %d: %d segments", slot, (len(dst)-start)/2)
	return dst, nil
}

// maxCoord bounds the magnitude of both factors of a coordinate product.
// A product with a non-zero factor beyond it cannot fit in an int16.
const maxCoord = math.MaxInt16 - math.MinInt16

func makeVertex(p Point, offset, scale int) (Vertex, error) {
	x, err := mulInt16(int(p.X)+offset, scale)
	if err != nil {
		return Vertex{}, fmt.Errorf("x: %w", err)
	}
	y, err := mulInt16(int(p.Y), scale)
	if err != nil {
		return Vertex{}, fmt.Errorf("y: %w", err)
	}
	return Vertex{X: x, Y: y}, nil
}

// mulInt16 returns a*b if the product fits in an int16. Factors are range checked
// before multiplying so the product never wraps.
func mulInt16(a, b int) (int16, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > maxCoord || a < -maxCoord || b > maxCoord || b < -maxCoord {
		return 0, fmt.Errorf("%d*%d: %w", a, b, ErrCoordinateOverflow)
	}
	v := a * b
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("%d: %w", v, ErrCoordinateOverflow)
	}
	return int16(v), nil
}
