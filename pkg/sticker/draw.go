package sticker

import (
	"math"

	"github.com/fogleman/gg"
)

// BaseSize is the nominal height, in pixels, of a sticker at scale 1.
const BaseSize = 30.0

// A symbolFunc draws a symbol centered on the origin, roughly `size`
// pixels across.
type symbolFunc func(dc *gg.Context, size float64)

var symbols = map[Symbol]symbolFunc{
	Cross:      drawCross,
	Star:       drawStar,
	Sparkle:    drawSparkle,
	Heart:      drawHeart,
	TwoHearts:  drawTwoHearts,
	Bunny:      drawBunny,
	Popper:     drawPopper,
	Balloon:    drawBalloon,
	Sunglasses: drawSunglasses,
	Fire:       drawFire,
	ThumbsUp:   drawThumbsUp,
	Blossom:    drawBlossom,
	Leaf:       drawLeaf,
}

// Known reports whether we have a drawing for the symbol.
func Known(s Symbol) bool {
	_, exists := symbols[s]
	return exists
}

// Draw paints the theme's stickers onto dc, in theme order, so later
// placements land on top of earlier ones.
func Draw(dc *gg.Context, t Theme, rows int, cellW, cellH, size float64) {
	for _, a := range t.Anchors(rows, cellW, cellH) {
		DrawAt(dc, a, size)
	}
}

// DrawAt draws one anchored sticker: translated to the anchor, then
// rotated and scaled about it.
func DrawAt(dc *gg.Context, a Anchor, size float64) {
	f, exists := symbols[a.Symbol]
	if !exists {
		return
	}

	dc.Push()
	dc.Translate(a.X, a.Y)
	dc.Rotate(gg.Radians(a.Rotation))
	dc.Scale(a.Scale, a.Scale)
	f(dc, size)
	dc.Pop()
}

// starPath traces an n-pointed star, alternating between the outer
// and inner radius, with the first point straight up.
func starPath(dc *gg.Context, n int, outer, inner float64) {
	dc.NewSubPath()
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := -math.Pi/2 + float64(i)*math.Pi/float64(n)
		dc.LineTo(r*math.Cos(theta), r*math.Sin(theta))
	}
	dc.ClosePath()
}

// heartPath traces a heart whose widest part is `w` across, centered
// on (cx,cy).
func heartPath(dc *gg.Context, cx, cy, w float64) {
	s := w / 2
	dc.NewSubPath()
	dc.MoveTo(cx, cy+0.9*s)
	dc.CubicTo(cx-1.3*s, cy+0.1*s, cx-0.7*s, cy-1.0*s, cx, cy-0.35*s)
	dc.CubicTo(cx+0.7*s, cy-1.0*s, cx+1.3*s, cy+0.1*s, cx, cy+0.9*s)
	dc.ClosePath()
}

func drawCross(dc *gg.Context, size float64) {
	r := size * 0.35
	dc.SetLineWidth(size * 0.15)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetHexColor("#E53935")
	dc.DrawLine(-r, -r, r, r)
	dc.DrawLine(-r, r, r, -r)
	dc.Stroke()
}

func drawStar(dc *gg.Context, size float64) {
	starPath(dc, 5, size/2, size/2*0.45)
	dc.SetHexColor("#FFCC33")
	dc.FillPreserve()
	dc.SetHexColor("#E0A000")
	dc.SetLineWidth(size * 0.04)
	dc.Stroke()
}

func drawSparkle(dc *gg.Context, size float64) {
	dc.SetHexColor("#FFE680")
	starPath(dc, 4, size/2, size/2*0.22)
	dc.Fill()

	dc.Push()
	dc.Translate(size*0.3, -size*0.3)
	starPath(dc, 4, size/6, size/6*0.22)
	dc.Fill()
	dc.Pop()
}

func drawHeart(dc *gg.Context, size float64) {
	heartPath(dc, 0, 0, size)
	dc.SetHexColor("#E8344E")
	dc.Fill()
}

func drawTwoHearts(dc *gg.Context, size float64) {
	dc.SetHexColor("#FF6FA8")
	heartPath(dc, -size*0.15, size*0.1, size*0.65)
	dc.Fill()
	dc.SetHexColor("#FF3D87")
	heartPath(dc, size*0.2, -size*0.15, size*0.5)
	dc.Fill()
}

func drawBunny(dc *gg.Context, size float64) {
	r := size / 2

	for _, side := range []float64{-1, 1} {
		dc.Push()
		dc.Translate(side*r*0.35, -r*0.55)
		dc.Rotate(gg.Radians(side * 12))
		dc.DrawEllipse(0, 0, r*0.2, r*0.5)
		dc.SetHexColor("#FFFFFF")
		dc.FillPreserve()
		dc.SetHexColor("#9E9E9E")
		dc.SetLineWidth(size * 0.03)
		dc.Stroke()
		dc.DrawEllipse(0, r*0.05, r*0.09, r*0.32)
		dc.SetHexColor("#F8A5C2")
		dc.Fill()
		dc.Pop()
	}

	dc.DrawCircle(0, r*0.2, r*0.6)
	dc.SetHexColor("#FFFFFF")
	dc.FillPreserve()
	dc.SetHexColor("#9E9E9E")
	dc.SetLineWidth(size * 0.03)
	dc.Stroke()

	dc.SetHexColor("#333333")
	dc.DrawCircle(-r*0.22, r*0.1, r*0.07)
	dc.DrawCircle(r*0.22, r*0.1, r*0.07)
	dc.Fill()
	dc.SetHexColor("#F48FB1")
	dc.DrawCircle(0, r*0.32, r*0.08)
	dc.Fill()
}

func drawPopper(dc *gg.Context, size float64) {
	r := size / 2

	dc.MoveTo(-r*0.8, r*0.8)
	dc.LineTo(-r*0.2, -r*0.3)
	dc.LineTo(r*0.3, r*0.2)
	dc.ClosePath()
	dc.SetHexColor("#F9A825")
	dc.Fill()

	confetti := []struct {
		x, y float64
		hex  string
	}{
		{0.1, -0.6, "#E91E63"},
		{0.5, -0.4, "#2196F3"},
		{0.7, 0.0, "#4CAF50"},
		{0.3, -0.85, "#9C27B0"},
		{0.8, -0.7, "#FF5722"},
	}
	for _, c := range confetti {
		dc.SetHexColor(c.hex)
		dc.DrawCircle(c.x*r, c.y*r, r*0.1)
		dc.Fill()
	}
}

func drawBalloon(dc *gg.Context, size float64) {
	r := size / 2

	dc.SetHexColor("#555555")
	dc.SetLineWidth(size * 0.03)
	dc.MoveTo(0, r*0.45)
	dc.QuadraticTo(-r*0.2, r*0.75, 0, r)
	dc.Stroke()

	dc.DrawEllipse(0, -r*0.2, r*0.5, r*0.65)
	dc.SetHexColor("#E53935")
	dc.Fill()

	dc.MoveTo(0, r*0.42)
	dc.LineTo(-r*0.08, r*0.55)
	dc.LineTo(r*0.08, r*0.55)
	dc.ClosePath()
	dc.Fill()

	dc.SetRGBA(1, 1, 1, 0.6)
	dc.DrawEllipse(-r*0.18, -r*0.45, r*0.1, r*0.18)
	dc.Fill()
}

func drawSunglasses(dc *gg.Context, size float64) {
	r := size / 2

	dc.DrawCircle(0, 0, r*0.9)
	dc.SetHexColor("#FFCA28")
	dc.Fill()

	dc.SetHexColor("#212121")
	dc.DrawRoundedRectangle(-r*0.72, -r*0.32, r*0.62, r*0.38, r*0.12)
	dc.DrawRoundedRectangle(r*0.1, -r*0.32, r*0.62, r*0.38, r*0.12)
	dc.Fill()
	dc.SetLineWidth(size * 0.05)
	dc.DrawLine(-r*0.12, -r*0.22, r*0.12, -r*0.22)
	dc.Stroke()

	dc.SetHexColor("#6D4C41")
	dc.SetLineWidth(size * 0.05)
	dc.DrawArc(0, r*0.2, r*0.4, gg.Radians(25), gg.Radians(155))
	dc.Stroke()
}

func drawFire(dc *gg.Context, size float64) {
	r := size / 2

	dc.MoveTo(0, -r)
	dc.CubicTo(r*0.5, -r*0.4, r*0.9, 0, r*0.6, r*0.6)
	dc.CubicTo(r*0.4, r, -r*0.4, r, -r*0.6, r*0.6)
	dc.CubicTo(-r*0.9, 0, -r*0.2, -r*0.2, 0, -r)
	dc.SetHexColor("#FF5722")
	dc.Fill()

	dc.MoveTo(0, -r*0.2)
	dc.CubicTo(r*0.3, r*0.1, r*0.45, r*0.4, r*0.3, r*0.65)
	dc.CubicTo(r*0.15, r*0.85, -r*0.15, r*0.85, -r*0.3, r*0.65)
	dc.CubicTo(-r*0.45, r*0.4, -r*0.1, r*0.1, 0, -r*0.2)
	dc.SetHexColor("#FFC107")
	dc.Fill()
}

func drawThumbsUp(dc *gg.Context, size float64) {
	r := size / 2

	dc.SetHexColor("#FFCA28")
	dc.DrawRoundedRectangle(-r*0.45, -r*0.1, r*0.9, r*0.85, r*0.15)
	dc.Fill()
	dc.DrawRoundedRectangle(-r*0.35, -r*0.9, r*0.3, r*0.9, r*0.15)
	dc.Fill()

	dc.SetHexColor("#1E88E5")
	dc.DrawRectangle(-r*0.8, -r*0.05, r*0.32, r*0.8)
	dc.Fill()

	dc.SetHexColor("#E0A000")
	dc.SetLineWidth(size * 0.025)
	for _, y := range []float64{0.15, 0.35, 0.55} {
		dc.DrawLine(-r*0.1, y*r, r*0.45, y*r)
	}
	dc.Stroke()
}

func drawBlossom(dc *gg.Context, size float64) {
	r := size / 2

	dc.SetHexColor("#F8BBD0")
	for i := 0; i < 5; i++ {
		theta := -math.Pi/2 + float64(i)*2*math.Pi/5
		dc.DrawCircle(r*0.45*math.Cos(theta), r*0.45*math.Sin(theta), r*0.4)
	}
	dc.FillPreserve()
	dc.SetHexColor("#EC407A")
	dc.SetLineWidth(size * 0.02)
	dc.Stroke()

	dc.SetHexColor("#FFD54F")
	dc.DrawCircle(0, 0, r*0.25)
	dc.Fill()
}

func drawLeaf(dc *gg.Context, size float64) {
	r := size / 2

	dc.MoveTo(0, -r)
	dc.QuadraticTo(r*0.8, 0, 0, r)
	dc.QuadraticTo(-r*0.8, 0, 0, -r)
	dc.SetHexColor("#43A047")
	dc.Fill()

	dc.SetHexColor("#1B5E20")
	dc.SetLineWidth(size * 0.03)
	dc.DrawLine(0, -r*0.85, 0, r*0.95)
	dc.Stroke()
}
