package asciifont

import (
	"sync"

	"github.com/soypat/vecfont"
)

const (
	firstBasic = ' '
	lastBasic  = '~'
)

var (
	fontOnce sync.Once
	font     *vecfont.Font
)

// Font returns the built-in printable ASCII stroke font with the Y axis pointing up.
// The returned Font is shared and immutable.
func Font() *vecfont.Font {
	fontOnce.Do(func() {
		var err error
		font, err = New(1, -1)
		if err != nil {
			panic("asciifont: " + err.Error()) // Built-in table is constant.
		}
	})
	return font
}

// New builds a new Font from the built-in definitions with the given scaling applied
// to each glyph point. Definitions are written with the Y axis pointing down so a
// yscale of -1 yields upright text.
func New(xscale, yscale float32) (*vecfont.Font, error) {
	return vecfont.NewFont(definitions, xscale, yscale)
}

// Definitions returns a copy of the built-in glyph definitions, one per printable
// ASCII character from ' ' to '~'.
func Definitions() []vecfont.GlyphDef {
	defs := make([]vecfont.GlyphDef, len(definitions))
	for i, def := range definitions {
		defs[i] = vecfont.GlyphDef{
			Char:   def.Char,
			Points: append([]vecfont.Point(nil), def.Points...),
		}
	}
	return defs
}
