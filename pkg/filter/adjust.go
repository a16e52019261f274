package filter

import (
	"image"

	"github.com/abworrall/photostrip/pkg/emath"
)

const (
	DefaultBrightness = 100
	DefaultContrast   = 100
	MinAdjustment     = 0
	MaxAdjustment     = 200
)

// AdjustIsIdentity is true when neither slider has moved off its
// default; in that case the adjustment is skipped entirely.
func AdjustIsIdentity(brightness, contrast int) bool {
	return brightness == DefaultBrightness && contrast == DefaultContrast
}

// AdjustPixel returns the brightness/contrast PixelFunc. Brightness is
// an offset of (b-100)*2.55; contrast uses the classic
// 259(c+255)/(255(259-c)) factor about mid-gray. Brightness is stored
// back as a byte before contrast reads it. Both values are clamped
// to [0,200].
func AdjustPixel(brightness, contrast int) PixelFunc {
	brightness = emath.ClampInt(brightness, MinAdjustment, MaxAdjustment)
	contrast = emath.ClampInt(contrast, MinAdjustment, MaxAdjustment)

	offset := float64(brightness-DefaultBrightness) * 2.55
	factor := (259.0 * float64(contrast+255)) / (255.0 * float64(259-contrast))

	channel := func(v uint8) uint8 {
		bright := emath.ToByte(float64(v) + offset)
		return emath.ToByte(factor*(float64(bright)-128.0) + 128.0)
	}

	return func(r, g, b uint8) (uint8, uint8, uint8) {
		return channel(r), channel(g), channel(b)
	}
}

// Adjust applies brightness then contrast in place, unless both are at
// their defaults.
func Adjust(img *image.NRGBA, brightness, contrast int) {
	if AdjustIsIdentity(brightness, contrast) {
		return
	}
	ForPixels(AdjustPixel(brightness, contrast))(img)
}
