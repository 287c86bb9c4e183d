package vecfont

import (
	"fmt"
)

// LineDrawer consumes line-list geometry, i.e: a GPU upload followed by a LINES draw call
// of [VertexBuffer.VertexCount] vertices.
type LineDrawer interface {
	DrawLines(vb VertexBuffer) error
}

// TextLine returns the line segments of a single line of text. Glyphs are laid out
// left to right with a fixed advance of [GlyphAdvance] units before scaling.
// Every character of text must be defined in f. Empty text returns an empty buffer.
// The returned Segments is the number of emitted segments, which equals the sum of
// [SegmentCount] over the glyphs of text since [NewFont] rejects break placements
// the formula miscounts.
func (f *Font) TextLine(text string, scale int) (VertexBuffer, error) {
	total, err := f.textSegments(text)
	if err != nil {
		return VertexBuffer{}, err
	}
	tracer().Debugf("text %q needs %d segments", text, total)
	if text == "" {
		return VertexBuffer{}, nil
	}
	verts, err := f.AppendTextLine(make([]Vertex, 0, 2*total), text, scale)
	if err != nil {
		return VertexBuffer{}, err
	}
	if len(verts) != 2*total {
		tracer().Debugf("segment estimate %d differs from emitted %d for %q", total, len(verts)/2, text)
	}
	return VertexBuffer{Vertices: verts, Segments: len(verts) / 2}, nil
}

// AppendTextLine appends the vertices of text to dst and returns the result.
// On error dst is returned as it was before the call.
func (f *Font) AppendTextLine(dst []Vertex, text string, scale int) ([]Vertex, error) {
	start := len(dst)
	slot := 0
	for _, c := range text {
		g, err := f.Glyph(c)
		if err != nil {
			return dst[:start], fmt.Errorf("slot %d: %w", slot, err)
		}
		dst, err = AppendSegments(dst, g, scale, slot)
		if err != nil {
			return dst[:start], fmt.Errorf("slot %d: char %q: %w", slot, c, err)
		}
		slot++
	}
	return dst, nil
}

// textSegments sums SegmentCount over the glyphs of text.
func (f *Font) textSegments(text string) (total int, err error) {
	slot := 0
	for _, c := range text {
		g, err := f.Glyph(c)
		if err != nil {
			return 0, fmt.Errorf("slot %d: %w", slot, err)
		}
		n := SegmentCount(g)
		tracer().Debugf("glyph %q has %d segments", c, n)
		total += n
		slot++
	}
	return total, nil
}

// DrawText builds the geometry of text and hands it to d. The drawer is not called
// when text produces no segments. The built geometry is returned.
func DrawText(d LineDrawer, f *Font, text string, scale int) (VertexBuffer, error) {
	vb, err := f.TextLine(text, scale)
	if err != nil {
		return VertexBuffer{}, err
	}
	if vb.Segments == 0 {
		tracer().Infof("no segments for text %q, skipping draw", text)
		return vb, nil
	}
	tracer().Infof("drawing %d line vertices", vb.VertexCount())
	err = d.DrawLines(vb)
	if err != nil {
		return vb, fmt.Errorf("drawing text %q: %w", text, err)
	}
	return vb, nil
}
