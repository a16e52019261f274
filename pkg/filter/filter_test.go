package filter

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func noise(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rng.Read(img.Pix)
	return img
}

func TestNormalIsIdentity(t *testing.T) {
	src := noise(17, 9, 1)
	got := Apply(Normal, src)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Errorf("Normal changed pixels")
	}
}

func TestApplyDoesNotAlias(t *testing.T) {
	src := noise(8, 8, 2)
	orig := append([]byte(nil), src.Pix...)
	for _, id := range All() {
		out := Apply(id, src)
		if !bytes.Equal(src.Pix, orig) {
			t.Fatalf("%s modified its input", id)
		}
		if len(out.Pix) > 0 && &out.Pix[0] == &src.Pix[0] {
			t.Fatalf("%s returned its input buffer", id)
		}
	}
}

func TestAlphaPassesThrough(t *testing.T) {
	src := noise(6, 5, 3)
	for _, id := range All() {
		out := Apply(id, src)
		for i := 3; i < len(src.Pix); i += 4 {
			if out.Pix[i] != src.Pix[i] {
				t.Fatalf("%s changed alpha at %d", id, i)
			}
		}
	}
}

func TestGrayscale(t *testing.T) {
	out := Apply(Grayscale, solid(2, 2, color.NRGBA{255, 0, 0, 255}))
	if c := out.NRGBAAt(0, 0); c != (color.NRGBA{85, 85, 85, 255}) {
		t.Errorf("red -> %v, want unweighted mean 85", c)
	}

	src := noise(20, 10, 4)
	once := Apply(Grayscale, src)
	twice := Apply(Grayscale, once)
	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Errorf("grayscale is not idempotent")
	}
}

func TestSepiaRed(t *testing.T) {
	out := Apply(Sepia, solid(3, 3, color.NRGBA{255, 0, 0, 255}))
	want := color.NRGBA{100, 89, 69, 255}
	if c := out.NRGBAAt(1, 1); c != want {
		t.Errorf("sepia(red) = %v, want %v", c, want)
	}

	out = Apply(Sepia, solid(1, 1, color.NRGBA{255, 255, 255, 255}))
	if c := out.NRGBAAt(0, 0); c != (color.NRGBA{255, 255, 239, 255}) {
		t.Errorf("sepia(white) = %v", c)
	}
}

func TestVintageOnlyDarkensSepia(t *testing.T) {
	src := noise(31, 23, 5)
	sepia := Apply(Sepia, src)
	vintage := Apply(Vintage, src)

	for i := 0; i < len(sepia.Pix); i++ {
		if i%4 == 3 {
			continue
		}
		if vintage.Pix[i] > sepia.Pix[i] {
			t.Fatalf("vintage brighter than sepia at byte %d: %d > %d", i, vintage.Pix[i], sepia.Pix[i])
		}
	}

	// The center pixel has a weight of 1.0, so it's pure sepia.
	white := Apply(Vintage, solid(10, 10, color.NRGBA{255, 255, 255, 255}))
	if c := white.NRGBAAt(5, 5); c != (color.NRGBA{255, 255, 239, 255}) {
		t.Errorf("vintage center = %v", c)
	}
	if c := white.NRGBAAt(0, 0); c != (color.NRGBA{102, 102, 96, 255}) {
		t.Errorf("vintage corner = %v", c)
	}
}

func TestVignetteWeight(t *testing.T) {
	if w := VignetteWeight(0, 10); w != 1.0 {
		t.Errorf("center weight %f", w)
	}
	if w := VignetteWeight(10, 10); w < 0.399 || w > 0.401 {
		t.Errorf("corner weight %f", w)
	}
	for d := 0.0; d <= 10; d += 0.25 {
		if w := VignetteWeight(d, 10); w > 1.0 {
			t.Errorf("weight %f at d=%f brightens", w, d)
		}
	}
}

func TestTints(t *testing.T) {
	c := color.NRGBA{240, 100, 245, 200}
	tests := []struct {
		id   ID
		want color.NRGBA
	}{
		{Bright, color.NRGBA{255, 130, 255, 200}},
		{Cool, color.NRGBA{240, 100, 255, 200}},
		{Warm, color.NRGBA{255, 110, 245, 200}},
	}
	for _, tt := range tests {
		if got := Apply(tt.id, solid(1, 1, c)).NRGBAAt(0, 0); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestAdjustDefaultsAreIdentity(t *testing.T) {
	src := noise(13, 7, 6)
	out := Clone(src)
	Adjust(out, 100, 100)
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Errorf("Adjust(100,100) changed pixels")
	}
}

func TestAdjustPixel(t *testing.T) {
	// Contrast 0 gives a factor of exactly 1, isolating brightness.
	f := AdjustPixel(110, 0)
	if r, g, b := f(100, 10, 250); r != 126 || g != 36 || b != 255 {
		t.Errorf("brightness 110: got %d,%d,%d", r, g, b)
	}

	f = AdjustPixel(0, 0)
	if r, _, _ := f(200, 0, 0); r != 0 {
		t.Errorf("brightness 0: got %d", r)
	}

	// At the contrast slider's midpoint the factor is ~2.27 about 128.
	f = AdjustPixel(100, 100)
	if r, g, b := f(128, 140, 100); r != 128 || g != 155 || b != 65 {
		t.Errorf("contrast 100: got %d,%d,%d", r, g, b)
	}

	// Out of range values clamp rather than fail.
	if r, _, _ := AdjustPixel(-50, 0)(200, 0, 0); r != 0 {
		t.Errorf("brightness clamp: got %d", r)
	}
	if r, _, _ := AdjustPixel(500, 0)(0, 0, 0); r != 255 {
		t.Errorf("brightness clamp: got %d", r)
	}
}

func TestParse(t *testing.T) {
	for _, id := range All() {
		got, err := Parse(id.String())
		if err != nil || got != id {
			t.Errorf("Parse(%q) = %v, %v", id.String(), got, err)
		}
	}
	if got, err := Parse(" sepia "); err != nil || got != Sepia {
		t.Errorf("Parse(sepia) = %v, %v", got, err)
	}
	if _, err := Parse("lomo"); err == nil {
		t.Errorf("expected error for unknown filter")
	}
}
