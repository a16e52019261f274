package filter

import (
	"image"
	"math"

	"github.com/abworrall/photostrip/pkg/emath"
)

// A PixelFunc maps one RGB pixel to another. Pixel funcs never see
// the pixel's position or alpha.
type PixelFunc func(r, g, b uint8) (uint8, uint8, uint8)

var (
	// The usual sepia tone matrix.
	SepiaMatrix = emath.Mat3{
		0.393, 0.769, 0.189,
		0.349, 0.686, 0.168,
		0.272, 0.534, 0.131,
	}

	BrightBoost = 30
	CoolBoost   = 20 // blue only
	WarmBoostR  = 20
	WarmBoostG  = 10
)

// GrayscalePixel uses the plain average of the three channels, not a
// luma weighting.
func GrayscalePixel(r, g, b uint8) (uint8, uint8, uint8) {
	avg := emath.ToByte((float64(r) + float64(g) + float64(b)) / 3.0)
	return avg, avg, avg
}

func SepiaPixel(r, g, b uint8) (uint8, uint8, uint8) {
	return SepiaMatrix.ApplyRGB(r, g, b)
}

func BrightPixel(r, g, b uint8) (uint8, uint8, uint8) {
	return emath.AddByte(r, BrightBoost), emath.AddByte(g, BrightBoost), emath.AddByte(b, BrightBoost)
}

func CoolPixel(r, g, b uint8) (uint8, uint8, uint8) {
	return r, g, emath.AddByte(b, CoolBoost)
}

func WarmPixel(r, g, b uint8) (uint8, uint8, uint8) {
	return emath.AddByte(r, WarmBoostR), emath.AddByte(g, WarmBoostG), b
}

// VignetteWeight is the darkening factor for a pixel `d` away from the
// center, where R is the center-to-corner distance. It is 1.0 at the
// center and falls to 0.4 at the corners; it never brightens.
func VignetteWeight(d, R float64) float64 {
	if R == 0 {
		return 1.0
	}
	return 0.7 + 0.3*math.Cos(math.Pi*d/R)
}

// VignetteGrid holds the vignette weight for every pixel of a w*h
// image.
func VignetteGrid(w, h int) emath.FloatGrid {
	return emath.NewRadialGrid(w, h, VignetteWeight)
}

// VintageFilter is sepia, followed by a radial vignette over the whole
// image.
func VintageFilter(img *image.NRGBA) {
	ForPixels(SepiaPixel)(img)

	b := img.Bounds()
	weights := VignetteGrid(b.Dx(), b.Dy())

	for y := 0; y < b.Dy(); y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < b.Dx(); x++ {
			w := weights.Get(x, y)
			img.Pix[i+0] = emath.ToByte(float64(img.Pix[i+0]) * w)
			img.Pix[i+1] = emath.ToByte(float64(img.Pix[i+1]) * w)
			img.Pix[i+2] = emath.ToByte(float64(img.Pix[i+2]) * w)
			i += 4
		}
	}
}
