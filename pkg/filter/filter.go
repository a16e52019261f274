// Package filter is the bank of named colour filters that can be laid
// over a finished strip, plus the brightness/contrast adjustment.
//
// Filters work on straight (non-premultiplied) RGBA; alpha is passed
// through untouched. After each stage the channels are stored back as
// bytes (clamped, rounded half to even), so multi-stage filters see
// quantized intermediate values.
package filter

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// ID names one of the filters. Exactly one is active at a time.
type ID int

const (
	Normal ID = iota
	Grayscale
	Sepia
	Vintage
	Bright
	Cool
	Warm
)

var names = []string{"Normal", "Grayscale", "Sepia", "Vintage", "Bright", "Cool", "Warm"}

func (id ID) String() string {
	if id < 0 || int(id) >= len(names) {
		return fmt.Sprintf("Filter(%d)", int(id))
	}
	return names[id]
}

// All lists the filters in the order they are offered.
func All() []ID {
	ids := []ID{}
	for i := range names {
		ids = append(ids, ID(i))
	}
	return ids
}

// Parse looks a filter up by name, ignoring case.
func Parse(name string) (ID, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return ID(i), nil
		}
	}
	return Normal, fmt.Errorf("no filter named '%s', wanted one of %v", name, names)
}

func (id ID) MarshalYAML() (interface{}, error) { return id.String(), nil }

func (id *ID) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// A Filter transforms an image in place.
type Filter func(img *image.NRGBA)

// Filter returns the transform for the id. Normal (and anything we
// don't recognize) is the identity.
func (id ID) Filter() Filter {
	switch id {
	case Grayscale:
		return ForPixels(GrayscalePixel)
	case Sepia:
		return ForPixels(SepiaPixel)
	case Vintage:
		return VintageFilter
	case Bright:
		return ForPixels(BrightPixel)
	case Cool:
		return ForPixels(CoolPixel)
	case Warm:
		return ForPixels(WarmPixel)
	default:
		return func(*image.NRGBA) {}
	}
}

// IsIdentity is true for the filter that leaves pixels alone.
func (id ID) IsIdentity() bool { return id == Normal }

// Apply returns a filtered copy of src; src is never modified.
func Apply(id ID, src image.Image) *image.NRGBA {
	dst := Clone(src)
	id.Filter()(dst)
	return dst
}

// Clone copies any image into a fresh NRGBA with the same bounds.
func Clone(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// ForPixels lifts a PixelFunc into a Filter over every pixel.
func ForPixels(f PixelFunc) Filter {
	return func(img *image.NRGBA) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				p := img.Pix[i : i+3 : i+3]
				p[0], p[1], p[2] = f(p[0], p[1], p[2])
				i += 4
			}
		}
	}
}
