package compose

import (
	"fmt"
	"image"
	"math"
)

// Rect is a rectangle in canvas coordinates, kept in floats until the
// last moment so cell edges don't accumulate rounding.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string { return fmt.Sprintf("[%.1f,%.1f %.1fx%.1f]", r.X, r.Y, r.W, r.H) }

// Inset shrinks the rectangle by d on all four sides. It never goes
// below zero size.
func (r Rect) Inset(d float64) Rect {
	w, h := math.Max(0, r.W-2*d), math.Max(0, r.H-2*d)
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Letterbox returns where an image with bounds `src` should be drawn
// inside r, keeping its aspect ratio. With fitWidth, the image always
// spans r's width and is centered vertically, even if that makes it
// taller than r. Otherwise it is scaled to fit wholly inside r and
// centered on the other axis.
func (r Rect) Letterbox(src image.Rectangle, fitWidth bool) Rect {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw <= 0 || sh <= 0 || r.W <= 0 || r.H <= 0 {
		return Rect{X: r.X, Y: r.Y}
	}

	scale := r.W / sw
	if !fitWidth {
		scale = math.Min(r.W/sw, r.H/sh)
	}

	w, h := sw*scale, sh*scale
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Pixels rounds the rectangle out to integer pixel coords.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	)
}
