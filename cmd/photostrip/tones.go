package main

import (
	"image"

	"github.com/skypies/util/histogram"
)

// toneHistogram buckets the strip's pixels by luma, for a quick look
// at how a filter or adjustment has shifted things.
func toneHistogram(img *image.RGBA) *histogram.Histogram {
	h := &histogram.Histogram{NumBuckets: 256, ValMin: 0, ValMax: 256}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
			h.Add(histogram.ScalarVal(luma))
		}
	}

	return h
}
