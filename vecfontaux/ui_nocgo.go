//go:build tinygo || !cgo

package vecfontaux

import (
	"errors"

	"github.com/soypat/vecfont"
)

// UI is unavailable without cgo.
type UI struct{}

func newUI(cfg UIConfig) (*UI, error) {
	return nil, errors.New("require cgo for UI rendering")
}

func (ui *UI) DrawLines(vb vecfont.VertexBuffer) error {
	return errors.New("require cgo for UI rendering")
}

func (ui *UI) Terminate() {}
