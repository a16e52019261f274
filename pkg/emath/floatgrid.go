package emath

import (
	"fmt"
	"math"
)

// A FloatGrid is a grid of floats, with some operations
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) FloatGrid {
	return FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (fg *FloatGrid) Set(x, y int, v float64) { fg.values[fg.stride*y+x] = v }
func (fg *FloatGrid) Get(x, y int) float64    { return fg.values[fg.stride*y+x] }
func (fg *FloatGrid) Dx() int                 { return fg.stride }
func (fg *FloatGrid) Dy() int {
	if fg.stride == 0 {
		return 0
	}
	return len(fg.values) / fg.stride
}

// NewRadialGrid fills a w*h grid with f(d, R), where d is the distance
// of each pixel from the center of the grid (w/2, h/2) and R is the
// distance from the center to a corner.
func NewRadialGrid(w, h int, f func(d, R float64) float64) FloatGrid {
	fg := NewFloatGrid(w, h)
	cx, cy := float64(w)/2.0, float64(h)/2.0
	R := math.Sqrt(cx*cx + cy*cy)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			fg.Set(x, y, f(math.Sqrt(dx*dx+dy*dy), R))
		}
	}
	return fg
}

func (fg *FloatGrid) Stats() string {
	min := math.MaxFloat64
	max := -1.0 * min

	for i := 0; i < len(fg.values); i++ {
		if fg.values[i] > max {
			max = fg.values[i]
		}
		if fg.values[i] < min {
			min = fg.values[i]
		}
	}
	return fmt.Sprintf("fg[%dx%d, vals{%f,%f}]", fg.Dx(), fg.Dy(), min, max)
}
