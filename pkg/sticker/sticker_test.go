package sticker

import (
	"image"
	"image/color"
	"testing"

	"github.com/fogleman/gg"
)

func TestLookup(t *testing.T) {
	for _, id := range IDs() {
		th, exists := Find(id)
		if !exists || th.ID != id {
			t.Errorf("Find(%q) = %s, %v", id, th, exists)
		}
	}

	if th := Lookup("pirates"); th.ID != NoneID || !th.IsNone() {
		t.Errorf("unknown theme gave %s", th)
	}
	if th := Lookup("none"); !th.IsNone() {
		t.Errorf("none theme has placements")
	}
	if th := Lookup(" Stars "); th.ID != "stars" {
		t.Errorf("Lookup is not forgiving about case: %s", th)
	}
}

func TestEverySymbolIsDrawable(t *testing.T) {
	for _, th := range Themes() {
		if !Known(th.Symbol) {
			t.Errorf("theme %s uses unknown picker symbol %q", th.ID, th.Symbol)
		}
		for _, p := range th.Placements {
			if !Known(p.Symbol) {
				t.Errorf("theme %s uses unknown symbol %q", th.ID, p.Symbol)
			}
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				t.Errorf("theme %s has placement outside its cell: %+v", th.ID, p)
			}
		}
	}
}

func TestStarsAnchorsOn2x2(t *testing.T) {
	th := Lookup("stars")
	got := th.Anchors(2, 200, 100)

	want := []Anchor{
		{Placement: Placement{Star, 0.85, 0.15, 0, 1}, Cell: 0, X: 170, Y: 15},
		{Placement: Placement{Star, 0.15, 0.85, 0, 1}, Cell: 1, X: 30, Y: 185},
		{Placement: Placement{Sparkle, 0.15, 0.15, 0, 1}, Cell: 0, X: 30, Y: 15},
		{Placement: Placement{Sparkle, 0.85, 0.85, 0, 1}, Cell: 1, X: 170, Y: 185},
		{Placement: Placement{Sparkle, 0.5, 0.5, 0, 1.5}, Cell: 1, X: 100, Y: 150},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d anchors, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Symbol != w.Symbol || g.Cell != w.Cell || !near(g.X, w.X) || !near(g.Y, w.Y) {
			t.Errorf("anchor %d = %+v, want %+v", i, g, w)
		}
	}

	// Sparkles are drawn after stars.
	lastStar, firstSparkle := -1, -1
	for i, a := range got {
		if a.Symbol == Star {
			lastStar = i
		}
		if a.Symbol == Sparkle && firstSparkle < 0 {
			firstSparkle = i
		}
	}
	if lastStar > firstSparkle {
		t.Errorf("sparkle drawn before star")
	}
}

func TestAnchorsClampToLastRow(t *testing.T) {
	for _, a := range Lookup("love").Anchors(1, 100, 100) {
		if a.Cell != 0 {
			t.Errorf("single row grid put %s in cell %d", a.Symbol, a.Cell)
		}
	}
}

func near(a, b float64) bool { return a-b < 1e-9 && b-a < 1e-9 }

func TestDrawPaintsNearAnchors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	dc := gg.NewContextForRGBA(img)
	Draw(dc, Lookup("stars"), 2, 200, 100, BaseSize)

	for _, a := range Lookup("stars").Anchors(2, 200, 100) {
		if img.RGBAAt(int(a.X), int(a.Y)).A == 0 {
			t.Errorf("nothing drawn at anchor %+v", a)
		}
	}
	if img.RGBAAt(100, 60).A != 0 {
		t.Errorf("paint found well away from every anchor")
	}
}

func TestDrawNoneIsANoop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	dc := gg.NewContextForRGBA(img)
	Draw(dc, None, 3, 50, 16, BaseSize)
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatalf("none theme drew something")
		}
	}
}

func TestEachSymbolDraws(t *testing.T) {
	for sym := range symbols {
		img := image.NewRGBA(image.Rect(0, 0, 40, 40))
		dc := gg.NewContextForRGBA(img)
		DrawAt(dc, Anchor{Placement: Placement{Symbol: sym, Scale: 1}, X: 20, Y: 20}, BaseSize)

		painted := 0
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				if img.RGBAAt(x, y) != (color.RGBA{}) {
					painted++
				}
			}
		}
		if painted < 20 {
			t.Errorf("symbol %s painted only %d pixels", sym, painted)
		}
	}
}
