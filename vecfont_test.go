package vecfont_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/soypat/vecfont"
	"github.com/soypat/vecfont/forge/asciifont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brk = vecfont.Point{X: vecfont.LineBreak, Y: vecfont.LineBreak}

func TestSegmentCountFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecfont")
	defer teardown()
	font := asciifont.Font()
	for _, c := range font.Chars() {
		g, err := font.Glyph(rune(c))
		require.NoError(t, err)
		want := max(0, (g.Len()-1)-2*g.Breaks())
		assert.Equal(t, want, vecfont.SegmentCount(g), "char %q", c)
		// Built-in glyphs only have isolated interior breaks so the formula is exact.
		verts, err := vecfont.AppendSegments(nil, g, 1000, 0)
		require.NoError(t, err, "char %q", c)
		assert.Len(t, verts, 2*want, "char %q", c)
	}
}

func TestEmptyGlyph(t *testing.T) {
	var g vecfont.Glyph
	assert.Zero(t, vecfont.SegmentCount(g))
	verts, err := vecfont.AppendSegments(nil, g, 1, 3)
	require.NoError(t, err)
	assert.Empty(t, verts)

	space, err := asciifont.Font().Glyph(' ')
	require.NoError(t, err)
	assert.Zero(t, space.Len())
	assert.Zero(t, vecfont.SegmentCount(space))
}

func TestBreakSkipping(t *testing.T) {
	g := vecfont.NewGlyph([]vecfont.Point{{0, 0}, brk, {1, 1}, {2, 2}})
	assert.Equal(t, 1, g.Breaks())
	assert.Equal(t, 1, vecfont.SegmentCount(g))
	verts, err := vecfont.AppendSegments(nil, g, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []vecfont.Vertex{{X: -19, Y: 1}, {X: -18, Y: 2}}, verts)
}

func TestSegmentCountApproximation(t *testing.T) {
	// Trailing break: one segment is emitted while the formula yields zero.
	g := vecfont.NewGlyph([]vecfont.Point{{0, 0}, {1, 1}, brk})
	assert.Zero(t, vecfont.SegmentCount(g))
	verts, err := vecfont.AppendSegments(nil, g, 1, 0)
	require.NoError(t, err)
	assert.Len(t, verts, 2)
	// Adjacent breaks make the formula negative, it is clamped.
	g = vecfont.NewGlyph([]vecfont.Point{{0, 0}, brk, brk, {1, 1}})
	assert.Zero(t, vecfont.SegmentCount(g))
}

func TestGlyphScenario(t *testing.T) {
	g := vecfont.NewGlyph([]vecfont.Point{{0, 0}, {5, 10}, {10, 0}})
	assert.Equal(t, 2, vecfont.SegmentCount(g))
	verts, err := vecfont.AppendSegments(nil, g, 1, 0)
	require.NoError(t, err)
	want := []vecfont.Vertex{{X: -20, Y: 0}, {X: -15, Y: 10}, {X: -15, Y: 10}, {X: -10, Y: 0}}
	assert.Equal(t, want, verts)
}

func TestSlotOffset(t *testing.T) {
	const scale = 7
	g, err := asciifont.Font().Glyph('A')
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		a, err := vecfont.AppendSegments(nil, g, scale, k)
		require.NoError(t, err)
		b, err := vecfont.AppendSegments(nil, g, scale, k+1)
		require.NoError(t, err)
		require.Equal(t, len(a), len(b))
		for i := range a {
			assert.Equal(t, int(a[i].X)+vecfont.GlyphAdvance*scale, int(b[i].X))
			assert.Equal(t, a[i].Y, b[i].Y)
			assert.Zero(t, b[i].Z)
		}
	}
}

func TestAppendSegmentsOverflow(t *testing.T) {
	g := vecfont.NewGlyph([]vecfont.Point{{0, 0}, {1, 1}})
	dst := []vecfont.Vertex{{X: 1, Y: 2}}
	got, err := vecfont.AppendSegments(dst, g, 2000, 0) // (0-20)*2000 = -40000.
	assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow)
	assert.Equal(t, dst, got)

	g = vecfont.NewGlyph([]vecfont.Point{{20, 100}, {21, 100}})
	_, err = vecfont.AppendSegments(nil, g, 1000, 0) // y = 100000.
	assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow)
}

func TestAppendSegmentsHugeScale(t *testing.T) {
	g := vecfont.NewGlyph([]vecfont.Point{{0, 0}, {0, 4}})
	for _, scale := range []int{math.MaxInt >> 1, math.MinInt >> 1, math.MaxInt, math.MinInt} {
		got, err := vecfont.AppendSegments(nil, g, scale, 0)
		assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow, "scale %d", scale)
		assert.Empty(t, got, "scale %d", scale)
	}
	_, err := vecfont.AppendSegments(nil, g, 1, math.MaxInt/2)
	assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow)
	_, err = vecfont.AppendSegments(nil, g, 1, -1)
	assert.Error(t, err)

	// A zero scale collapses every vertex onto the origin without overflowing.
	got, err := vecfont.AppendSegments(nil, g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []vecfont.Vertex{{}, {}}, got)

	font := asciifont.Font()
	for _, text := range []string{"[", "]", "Hello"} {
		vb, err := font.TextLine(text, math.MinInt)
		assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow, text)
		assert.Empty(t, vb.Vertices, text)
	}
}

func TestTextLineErrorContext(t *testing.T) {
	font := asciifont.Font()
	_, err := font.TextLine("ab\tc", 1)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "slot 2: char '\\t': "), err.Error())

	_, err = font.TextLine("--", 2000)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "slot 0: char '-': "), err.Error())
}

func TestTextLineSegmentsMatchEstimate(t *testing.T) {
	defs := []vecfont.GlyphDef{
		{Char: 'x', Points: []vecfont.Point{{0, 0}, {1, 1}, brk, {0, 1}, {1, 0}}},
		{Char: 'y', Points: []vecfont.Point{{0, 0}, {1, 1}}},
	}
	f, err := vecfont.NewFont(defs, 1, 1)
	require.NoError(t, err)
	vb, err := f.TextLine("xyx", 1)
	require.NoError(t, err)
	assert.Equal(t, 2+1+2, vb.Segments)
	assert.Len(t, vb.Vertices, 2*vb.Segments)
}

func TestTextLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vecfont")
	defer teardown()
	font := asciifont.Font()
	const text = "Hello World!"
	vb, err := font.TextLine(text, 1000)
	require.NoError(t, err)
	total := 0
	for _, c := range text {
		g, err := font.Glyph(c)
		require.NoError(t, err)
		total += vecfont.SegmentCount(g)
	}
	assert.Equal(t, total, vb.Segments)
	assert.Len(t, vb.Vertices, 2*total)
	assert.Equal(t, int32(2*total), vb.VertexCount())
	assert.Len(t, vb.Lines(), total)

	again, err := font.TextLine(text, 1000)
	require.NoError(t, err)
	assert.Equal(t, vb, again)

	bb := vb.Bounds()
	assert.Equal(t, float32(-20000), bb.Min.X) // 'H' starts at x=0 in slot 0.
	assert.Equal(t, float32(6000), bb.Max.Y)   // Cap height after Y flip.
}

func TestTextLineEmpty(t *testing.T) {
	vb, err := asciifont.Font().TextLine("", 1000)
	require.NoError(t, err)
	assert.Zero(t, vb.Segments)
	assert.Empty(t, vb.Vertices)
	assert.Zero(t, vb.Bounds())
}

func TestTextLineUndefinedGlyph(t *testing.T) {
	font := asciifont.Font()
	for _, text := range []string{"Hi\tthere", "héllo", "\x00"} {
		vb, err := font.TextLine(text, 1)
		assert.ErrorIs(t, err, vecfont.ErrUndefinedGlyph, text)
		assert.Empty(t, vb.Vertices)
	}
	_, err := font.Glyph(0x1F600)
	assert.ErrorIs(t, err, vecfont.ErrUndefinedGlyph)
	_, err = font.Glyph(-1)
	assert.ErrorIs(t, err, vecfont.ErrUndefinedGlyph)
}

func TestTextLineOverflow(t *testing.T) {
	font := asciifont.Font()
	_, err := font.TextLine("Hello World!", 2000)
	assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow)
	_, err = font.TextLine(strings.Repeat("-", 20), 1000)
	assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow)
}

func TestAppendTextLineKeepsDst(t *testing.T) {
	font := asciifont.Font()
	dst := make([]vecfont.Vertex, 2, 64)
	got, err := font.AppendTextLine(dst, "ab\x01", 1)
	assert.ErrorIs(t, err, vecfont.ErrUndefinedGlyph)
	assert.Len(t, got, 2)

	got, err = font.AppendTextLine(dst, "ab", 1)
	require.NoError(t, err)
	assert.Greater(t, len(got), 2)
}

func TestNewFont(t *testing.T) {
	defs := []vecfont.GlyphDef{
		{Char: 'a', Points: []vecfont.Point{{1, 2}, brk, {3, -4}}},
		{Char: 'b'},
	}
	f, err := vecfont.NewFont(defs, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b'}, f.Chars())
	assert.True(t, f.Defined('a'))
	assert.False(t, f.Defined('c'))
	g, err := f.Glyph('a')
	require.NoError(t, err)
	assert.Equal(t, []vecfont.Point{{2, -2}, brk, {6, 4}}, g.AppendPoints(nil))

	_, err = vecfont.NewFont(append(defs, vecfont.GlyphDef{Char: 'a'}), 1, 1)
	assert.Error(t, err)
	_, err = vecfont.NewFont(defs, 0, 1)
	assert.Error(t, err)
	_, err = vecfont.NewFont(defs, 20000, 1)
	assert.ErrorIs(t, err, vecfont.ErrCoordinateOverflow)

	// Break placements SegmentCount cannot account for are rejected.
	for _, pts := range [][]vecfont.Point{
		{brk, {0, 0}, {1, 1}},
		{{0, 0}, {1, 1}, brk},
		{{0, 0}, brk, brk, {1, 1}},
	} {
		_, err = vecfont.NewFont([]vecfont.GlyphDef{{Char: 'z', Points: pts}}, 1, 1)
		assert.Error(t, err, "%v", pts)
	}
}

func TestFontImmutable(t *testing.T) {
	pts := []vecfont.Point{{0, 0}, {1, 1}}
	g := vecfont.NewGlyph(pts)
	pts[0] = vecfont.Point{X: 9, Y: 9}
	assert.Equal(t, vecfont.Point{}, g.At(0))

	defs := asciifont.Definitions()
	defs[0].Char = 'x'
	assert.Equal(t, byte(' '), asciifont.Definitions()[0].Char)
}

type recordDrawer struct {
	calls []vecfont.VertexBuffer
	err   error
}

func (r *recordDrawer) DrawLines(vb vecfont.VertexBuffer) error {
	r.calls = append(r.calls, vb)
	return r.err
}

func TestDrawText(t *testing.T) {
	font := asciifont.Font()
	var d recordDrawer
	for _, text := range []string{"", "   "} {
		vb, err := vecfont.DrawText(&d, font, text, 1000)
		require.NoError(t, err)
		assert.Zero(t, vb.Segments)
	}
	assert.Empty(t, d.calls, "drawer must not be called without geometry")

	vb, err := vecfont.DrawText(&d, font, "Hello World!", 1000)
	require.NoError(t, err)
	require.Len(t, d.calls, 1)
	assert.Equal(t, vb, d.calls[0])

	_, err = vecfont.DrawText(&d, font, "\x7f", 1000)
	assert.ErrorIs(t, err, vecfont.ErrUndefinedGlyph)
	assert.Len(t, d.calls, 1)

	d.err = errors.New("lost context")
	_, err = vecfont.DrawText(&d, font, "ok", 1000)
	assert.ErrorIs(t, err, d.err)
}
