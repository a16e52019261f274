package compose

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

// boldFace returns the bundled Go Bold font at `size` pixels. Faces
// keep a glyph cache and are not safe to share, so each render gets
// its own.
func boldFace(size float64) (font.Face, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	if boldErr != nil {
		return nil, boldErr
	}
	return truetype.NewFace(boldFont, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone}), nil
}
