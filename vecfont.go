// Package vecfont converts stroke font glyphs into line-list geometry of int16 vertices.
package vecfont

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing"
)

// LineBreak is the reserved X coordinate of a pen-up point. No segment is drawn
// between a LineBreak point and either of its neighbours.
const LineBreak = -9999

var (
	// ErrUndefinedGlyph is returned when a character has no glyph definition in a Font.
	ErrUndefinedGlyph = errors.New("glyph not found")
	// ErrCoordinateOverflow is returned when a scaled coordinate does not fit in an int16.
	ErrCoordinateOverflow = errors.New("coordinate overflows int16")
)

// tracer traces with key 'vecfont'.
func tracer() tracing.Trace {
	return tracing.Select("vecfont")
}

// Point is a single stroke point of a glyph.
type Point struct {
	X, Y int16
}

// IsBreak reports whether p is a pen-up marker.
func (p Point) IsBreak() bool { return p.X == LineBreak }

// GlyphDef is an entry of a static font definition table.
type GlyphDef struct {
	Char   byte
	Points []Point
}

// Glyph is the stroke path of a single character. A Glyph is immutable once created.
type Glyph struct {
	points []Point
}

// Len returns the number of points in the glyph, break markers included.
func (g Glyph) Len() int { return len(g.points) }

// At returns the i'th point of the glyph.
func (g Glyph) At(i int) Point { return g.points[i] }

// Breaks returns the number of pen-up markers in the glyph.
func (g Glyph) Breaks() (n int) {
	for _, p := range g.points {
		if p.IsBreak() {
			n++
		}
	}
	return n
}

// AppendPoints appends the glyph's points to dst and returns the result.
func (g Glyph) AppendPoints(dst []Point) []Point {
	return append(dst, g.points...)
}

// NewGlyph copies points into a new Glyph.
func NewGlyph(points []Point) Glyph {
	return Glyph{points: append([]Point(nil), points...)}
}

// Font is an immutable mapping of character codes 0..255 to glyphs.
// It is safe for concurrent use.
type Font struct {
	glyphs  [256]Glyph
	defined [256]bool
}

// NewFont builds a Font from a definition table. Every non-break point is multiplied
// by xscale and yscale and rounded to the nearest integer. A yscale of -1 flips
// definitions written with the Y axis pointing down. A break may not be the first
// or last point of a glyph nor follow another break.
func NewFont(defs []GlyphDef, xscale, yscale float32) (*Font, error) {
	if xscale == 0 || yscale == 0 || math32.IsNaN(xscale) || math32.IsNaN(yscale) {
		return nil, errors.New("font scale must be non-zero")
	}
	f := &Font{}
	for _, def := range defs {
		if f.defined[def.Char] {
			return nil, fmt.Errorf("duplicate definition for char %q", def.Char)
		}
		if err := checkBreaks(def.Points); err != nil {
			return nil, fmt.Errorf("char %q: %w", def.Char, err)
		}
		pts := make([]Point, len(def.Points))
		for i, p := range def.Points {
			if p.IsBreak() {
				pts[i] = Point{X: LineBreak, Y: LineBreak}
				continue
			}
			x, errx := scaleCoord(p.X, xscale)
			y, erry := scaleCoord(p.Y, yscale)
			if err := errors.Join(errx, erry); err != nil {
				return nil, fmt.Errorf("char %q point %d: %w", def.Char, i, err)
			}
			pts[i] = Point{X: x, Y: y}
		}
		f.glyphs[def.Char] = Glyph{points: pts}
		f.defined[def.Char] = true
	}
	tracer().Debugf("font built with %d glyphs", len(defs))
	return f, nil
}

// checkBreaks rejects break placements that make SegmentCount undercount.
func checkBreaks(pts []Point) error {
	for i, p := range pts {
		if !p.IsBreak() {
			continue
		}
		switch {
		case i == 0:
			return errors.New("leading break")
		case i == len(pts)-1:
			return errors.New("trailing break")
		case pts[i-1].IsBreak():
			return fmt.Errorf("adjacent breaks at point %d", i)
		}
	}
	return nil
}

func scaleCoord(v int16, scale float32) (int16, error) {
	s := math32.Round(float32(v) * scale)
	if s < math.MinInt16 || s > math.MaxInt16 {
		return 0, ErrCoordinateOverflow
	} else if int(s) == LineBreak {
		return 0, errors.New("scaled coordinate collides with LineBreak")
	}
	return int16(s), nil
}

// Glyph returns the glyph for character c. It returns an error wrapping
// [ErrUndefinedGlyph] if c has no definition.
func (f *Font) Glyph(c rune) (Glyph, error) {
	if !f.Defined(c) {
		return Glyph{}, fmt.Errorf("char %q: %w", c, ErrUndefinedGlyph)
	}
	return f.glyphs[c], nil
}

// Defined reports whether c has a glyph definition.
func (f *Font) Defined(c rune) bool {
	return c >= 0 && c < rune(len(f.defined)) && f.defined[c]
}

// Chars returns the defined character codes in ascending order.
func (f *Font) Chars() []byte {
	var chars []byte
	for c, ok := range f.defined {
		if ok {
			chars = append(chars, byte(c))
		}
	}
	return chars
}
