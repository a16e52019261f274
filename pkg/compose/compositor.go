// Package compose renders a set of raw photos into one finished strip:
// photos letterboxed into a grid of cells over a border color, then a
// filter and brightness/contrast over the whole thing, then stickers,
// then the watermark.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/abworrall/photostrip/pkg/filter"
	"github.com/abworrall/photostrip/pkg/layout"
	"github.com/abworrall/photostrip/pkg/sticker"
)

var (
	ErrNoPhotos = errors.New("no photos to compose")

	// If no photo can be decoded, size the strip as if it held 1280x720
	// captures.
	DefaultAspect = 720.0 / 1280.0

	WatermarkColor = color.White
)

// A DecodeError records a photo that couldn't be decoded; its cell is
// left blank.
type DecodeError struct {
	Index int
	Name  string
	Err   error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("photo #%d (%s): %v", e.Index, e.Name, e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// RenderStats describes what a render actually did.
type RenderStats struct {
	Canvas   image.Rectangle
	Cells    int           // How many cells the layout has
	Drawn    int           // How many photos made it onto the strip
	Failed   []DecodeError // Photos whose cells were left blank
	Filtered bool          // Whether the filter/adjust pass ran
}

func (s RenderStats) String() string {
	return fmt.Sprintf("Render[%dx%d, %d/%d cells drawn, %d decode failures, filtered=%v]",
		s.Canvas.Dx(), s.Canvas.Dy(), s.Drawn, s.Cells, len(s.Failed), s.Filtered)
}

// The Compositor renders strips. It holds no state between renders,
// so the same inputs always give the same pixels.
type Compositor struct {
	Config
}

func NewCompositor(cfg Config) Compositor {
	if err := cfg.Finalize(); err != nil {
		log.Printf("compose: %v, using the default width\n", err)
		cfg.CanvasWidth = NewConfig().CanvasWidth
		cfg.Finalize()
	}
	return Compositor{Config: cfg}
}

// Render draws the strip. The photos are only read, never modified.
func (c Compositor) Render(photos []*RawPhoto, geo layout.Geometry, p Params) (*image.RGBA, error) {
	img, _, err := c.RenderWithStats(photos, geo, p)
	return img, err
}

// RenderWithStats is Render, also returning a description of the
// render.
func (c Compositor) RenderWithStats(photos []*RawPhoto, geo layout.Geometry, p Params) (*image.RGBA, RenderStats, error) {
	stats := RenderStats{Cells: geo.Cells()}

	if len(photos) == 0 {
		return nil, stats, ErrNoPhotos
	}
	if geo.Rows < 1 || geo.Cols < 1 {
		geo = layout.Default
		stats.Cells = geo.Cells()
	}
	p = p.Clamp()

	n := len(photos)
	if n > geo.Cells() {
		n = geo.Cells()
	}

	// Every photo must be decoded before anything is drawn; the filter
	// and sticker passes operate on the finished grid.
	decoded := c.decodeAll(photos[:n])

	// Step 1: size the canvas, and flood it with the border color.
	img := image.NewRGBA(c.canvasBounds(decoded, geo))
	stats.Canvas = img.Bounds()
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Border.Color), image.Point{}, draw.Src)

	cellW := float64(img.Bounds().Dx()) / float64(geo.Cols)
	cellH := float64(img.Bounds().Dy()) / float64(geo.Rows)

	// Step 2: letterbox each photo into its cell, row-major.
	for i, d := range decoded {
		if d.err != nil {
			stats.Failed = append(stats.Failed, DecodeError{Index: i, Name: photos[i].Name, Err: d.err})
			log.Printf("compose: leaving cell %d blank: %v\n", i, d.err)
			continue
		}

		row, col := i/geo.Cols, i%geo.Cols
		cell := Rect{X: float64(col) * cellW, Y: float64(row) * cellH, W: cellW, H: cellH}
		dr := cell.Inset(float64(p.Border.Width)).Letterbox(d.img.Bounds(), geo.IsPortrait())

		draw.CatmullRom.Scale(img, dr.Pixels(), d.img, d.img.Bounds(), draw.Over, nil)
		stats.Drawn++
	}

	// Step 3: the filter, then brightness/contrast, over the whole canvas.
	if !p.Filter.IsIdentity() || !p.Adjustment.IsIdentity() {
		view := nrgbaView(img)
		p.Filter.Filter()(view)
		filter.Adjust(view, p.Adjustment.Brightness, p.Adjustment.Contrast)
		stats.Filtered = true

		if c.Verbosity > 1 {
			logFilter(p.Filter, img.Bounds())
		}
	}

	dc := gg.NewContextForRGBA(img)

	// Step 4: stickers, on top of the filtered photos.
	if theme := sticker.Lookup(p.Theme); !theme.IsNone() {
		sticker.Draw(dc, theme, geo.Rows, cellW, cellH, c.StickerSize)
	}

	// Step 5: the watermark goes on last, so nothing covers it.
	if err := c.drawWatermark(dc); err != nil {
		return nil, stats, err
	}

	if c.Verbosity > 1 {
		log.Printf("compose: %s %s %s\n", geo, p, stats)
	}

	return img, stats, nil
}

// logFilter dumps the numbers behind the matrix filters.
func logFilter(id filter.ID, b image.Rectangle) {
	switch id {
	case filter.Sepia:
		log.Printf("compose: sepia matrix:-\n%s", filter.SepiaMatrix)
	case filter.Vintage:
		vg := filter.VignetteGrid(b.Dx(), b.Dy())
		log.Printf("compose: sepia matrix:-\n%s", filter.SepiaMatrix)
		log.Printf("compose: vignette %s\n", vg.Stats())
	}
}

func (c Compositor) drawWatermark(dc *gg.Context) error {
	if c.Watermark == "" {
		return nil
	}

	face, err := boldFace(c.WatermarkSize)
	if err != nil {
		return fmt.Errorf("watermark font: %w", err)
	}
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(WatermarkColor)
	dc.DrawStringAnchored(c.Watermark, float64(dc.Width())/2, float64(dc.Height())-c.WatermarkOffset, 0.5, 0)
	return nil
}

// canvasBounds sizes the strip from the first photo that decoded: each
// row of a portrait strip is as tall as that photo would be at the
// canvas width; a landscape grid as a whole has that photo's aspect.
func (c Compositor) canvasBounds(decoded []decodedPhoto, geo layout.Geometry) image.Rectangle {
	aspect := DefaultAspect
	for _, d := range decoded {
		if d.err == nil {
			b := d.img.Bounds()
			aspect = float64(b.Dy()) / float64(b.Dx())
			break
		}
	}

	w := float64(c.CanvasWidth)
	h := w * aspect
	if geo.IsPortrait() {
		h *= float64(geo.Rows)
	}

	return image.Rect(0, 0, c.CanvasWidth, int(math.Max(1, math.Floor(h))))
}

type decodedPhoto struct {
	img image.Image
	err error
}

type decodeJob struct {
	index int
	photo *RawPhoto
}

// decodeAll decodes the photos with a small pool of goroutines. The
// results come back in the same order as the photos.
func (c Compositor) decodeAll(photos []*RawPhoto) []decodedPhoto {
	results := make([]decodedPhoto, len(photos))

	var wg sync.WaitGroup
	jobsChan := make(chan decodeJob, len(photos))

	nWorkers := c.DecodeWorkers
	if nWorkers < 1 {
		nWorkers = 1
	}
	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobsChan {
				img, err := job.photo.Decode()
				results[job.index] = decodedPhoto{img, err} // each index is written by one worker
			}
		}()
	}

	for i, photo := range photos {
		jobsChan <- decodeJob{i, photo}
	}
	close(jobsChan)
	wg.Wait()

	return results
}
