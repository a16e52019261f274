// Package layout maps the layout picked at capture time onto a grid
// of cells for the compositor.
package layout

import (
	"fmt"
	"strings"
)

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// A Geometry is the grid that photos are placed into, row-major.
type Geometry struct {
	Rows        int
	Cols        int
	Orientation Orientation
}

func (g Geometry) Cells() int       { return g.Rows * g.Cols }
func (g Geometry) IsPortrait() bool { return g.Orientation == Portrait }

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d %s", g.Rows, g.Cols, g.Orientation)
}

// A Layout is one of the preset strips a user can pick.
type Layout struct {
	ID          string
	DisplayName string
	Rows        int
	Cols        int

	// Some layouts only make sense one way round, whatever the capture
	// page said.
	FixedOrientation *Orientation
}

var (
	landscape = Landscape

	// In the order they're offered to the user.
	layouts = []Layout{
		{ID: "classic", DisplayName: "Classic Strip", Rows: 3, Cols: 1},
		{ID: "grid2x2", DisplayName: "2×2 Grid", Rows: 2, Cols: 2, FixedOrientation: &landscape},
		{ID: "double", DisplayName: "Double Strip", Rows: 2, Cols: 1},
		{ID: "triple", DisplayName: "Triple Strip", Rows: 3, Cols: 1},
		{ID: "quad", DisplayName: "Quad Strip", Rows: 4, Cols: 1},
	}

	Default = Geometry{Rows: 3, Cols: 1, Orientation: Portrait}
)

// All returns the preset layouts.
func All() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

// Lookup finds a layout by id.
func Lookup(id string) (Layout, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, l := range layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

// Geometry resolves the layout for a capture orientation.
func (l Layout) Geometry(portrait bool) Geometry {
	g := Geometry{Rows: l.Rows, Cols: l.Cols, Orientation: Landscape}
	if portrait {
		g.Orientation = Portrait
	}
	if l.FixedOrientation != nil {
		g.Orientation = *l.FixedOrientation
	}
	return g
}

// Resolve never fails: an unknown id gets the 3x1 portrait default.
func Resolve(id string, portrait bool) Geometry {
	if l, exists := Lookup(id); exists {
		return l.Geometry(portrait)
	}
	return Default
}

// IDs returns the known layout ids, in display order.
func IDs() []string {
	ids := []string{}
	for _, l := range layouts {
		ids = append(ids, l.ID)
	}
	return ids
}
