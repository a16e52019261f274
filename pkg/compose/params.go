package compose

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/photostrip/pkg/emath"
	"github.com/abworrall/photostrip/pkg/filter"
	"github.com/abworrall/photostrip/pkg/sticker"
)

const (
	MinBorderWidth     = 5
	MaxBorderWidth     = 30
	DefaultBorderWidth = 15
)

var (
	// The border colors on offer; any other hex color works too.
	BorderPalette = map[string]string{
		"green":  "#9ACD32",
		"white":  "#FFFFFF",
		"black":  "#000000",
		"pink":   "#FF69B4",
		"purple": "#9370DB",
		"blue":   "#4169E1",
		"red":    "#FF0000",
		"gold":   "#FFD700",
	}

	DefaultBorderColor = color.RGBA{0x9A, 0xCD, 0x32, 0xFF}
)

// Adjustment is the pair of brightness/contrast sliders; 100 means no
// change.
type Adjustment struct {
	Brightness int
	Contrast   int
}

func DefaultAdjustment() Adjustment {
	return Adjustment{Brightness: filter.DefaultBrightness, Contrast: filter.DefaultContrast}
}

// Clamp pulls both values back into [0,200].
func (a Adjustment) Clamp() Adjustment {
	return Adjustment{
		Brightness: emath.ClampInt(a.Brightness, filter.MinAdjustment, filter.MaxAdjustment),
		Contrast:   emath.ClampInt(a.Contrast, filter.MinAdjustment, filter.MaxAdjustment),
	}
}

func (a Adjustment) IsIdentity() bool { return filter.AdjustIsIdentity(a.Brightness, a.Contrast) }

// Border is painted around and between the photos. The color is always
// opaque.
type Border struct {
	Color color.RGBA
	Width int
}

func DefaultBorder() Border {
	return Border{Color: DefaultBorderColor, Width: DefaultBorderWidth}
}

// Clamp pulls the width back into [5,30], and makes the color opaque.
func (b Border) Clamp() Border {
	b.Width = emath.ClampInt(b.Width, MinBorderWidth, MaxBorderWidth)
	b.Color.A = 0xFF
	return b
}

func (b Border) String() string {
	return fmt.Sprintf("%s/%dpx", HexColor(b.Color), b.Width)
}

// Params is everything about a render that the user can change. It
// is a plain value, and can be compared with ==.
type Params struct {
	Filter     filter.ID
	Adjustment Adjustment
	Theme      string // A sticker.Theme ID
	Border     Border
}

// DefaultParams is the untouched state a session starts in.
func DefaultParams() Params {
	return Params{
		Filter:     filter.Normal,
		Adjustment: DefaultAdjustment(),
		Theme:      sticker.NoneID,
		Border:     DefaultBorder(),
	}
}

// Clamp returns a copy with every value inside its documented range.
// Unknown themes become "none".
func (p Params) Clamp() Params {
	p.Adjustment = p.Adjustment.Clamp()
	p.Border = p.Border.Clamp()
	p.Theme = sticker.Lookup(p.Theme).ID
	return p
}

func (p Params) String() string {
	return fmt.Sprintf("Params[%s, b=%d c=%d, theme=%s, border=%s]",
		p.Filter, p.Adjustment.Brightness, p.Adjustment.Contrast, p.Theme, p.Border)
}

// ParseColor accepts a palette name ("green") or a hex color ("#9acd32",
// "9acd32", "#fff").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, exists := BorderPalette[s]; exists {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color '%s': %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xFF}, nil
}

// HexColor formats a color as "#rrggbb".
func HexColor(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// PaletteNames lists the named border colors, sorted.
func PaletteNames() []string {
	names := []string{}
	for n := range BorderPalette {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
