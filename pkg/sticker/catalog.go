// Package sticker holds the preset sticker themes that can be laid
// over a strip, and knows how to draw each sticker symbol.
package sticker

import (
	"fmt"
	"strings"
)

// A Symbol is one of the sticker shapes we know how to draw.
type Symbol string

const (
	Cross      Symbol = "cross"
	Star       Symbol = "star"
	Sparkle    Symbol = "sparkle"
	Heart      Symbol = "heart"
	TwoHearts  Symbol = "two-hearts"
	Bunny      Symbol = "bunny"
	Popper     Symbol = "party-popper"
	Balloon    Symbol = "balloon"
	Sunglasses Symbol = "sunglasses"
	Fire       Symbol = "fire"
	ThumbsUp   Symbol = "thumbs-up"
	Blossom    Symbol = "blossom"
	Leaf       Symbol = "leaf"
)

// A Placement puts one symbol on the strip. X and Y are fractions of
// a cell; Rotation is in degrees, clockwise.
type Placement struct {
	Symbol   Symbol
	X, Y     float64
	Rotation float64
	Scale    float64
}

type Theme struct {
	ID          string
	DisplayName string
	Symbol      Symbol // What the theme picker shows
	Placements  []Placement
}

const NoneID = "none"

func (t Theme) IsNone() bool { return len(t.Placements) == 0 }

func (t Theme) String() string {
	return fmt.Sprintf("Theme[%s %q, %d placements]", t.ID, t.DisplayName, len(t.Placements))
}

var (
	None = Theme{ID: NoneID, DisplayName: "None", Symbol: Cross}

	themes = []Theme{
		None,
		{
			ID: "bunny", DisplayName: "Bunny", Symbol: Bunny,
			Placements: []Placement{
				{Bunny, 0.85, 0.15, 0, 1.2}, // top right of the first photo
				{Bunny, 0.15, 0.85, 0, 1.2}, // bottom left of the second
				{Heart, 0.15, 0.15, -15, 0.8},
				{Heart, 0.85, 0.5, 15, 0.8},
			},
		},
		{
			ID: "party", DisplayName: "Party", Symbol: Popper,
			Placements: []Placement{
				{Popper, 0.85, 0.15, 15, 1},
				{Popper, 0.15, 0.85, -15, 1},
				{Balloon, 0.15, 0.15, -10, 0.9},
				{Balloon, 0.85, 0.85, 10, 0.9},
			},
		},
		{
			ID: "love", DisplayName: "Love", Symbol: Heart,
			Placements: []Placement{
				{Heart, 0.85, 0.15, 15, 1},
				{Heart, 0.15, 0.5, -15, 0.8},
				{Heart, 0.5, 0.85, 0, 1.2},
				{TwoHearts, 0.15, 0.15, -10, 0.9},
				{TwoHearts, 0.85, 0.5, 10, 0.9},
			},
		},
		{
			ID: "stars", DisplayName: "Stars", Symbol: Star,
			Placements: []Placement{
				{Star, 0.85, 0.15, 0, 1},
				{Star, 0.15, 0.85, 0, 1},
				{Sparkle, 0.15, 0.15, 0, 1},
				{Sparkle, 0.85, 0.85, 0, 1},
				{Sparkle, 0.5, 0.5, 0, 1.5},
			},
		},
		{
			ID: "cool", DisplayName: "Cool", Symbol: Sunglasses,
			Placements: []Placement{
				{Sunglasses, 0.85, 0.15, 0, 1.2},
				{Fire, 0.15, 0.85, 0, 1},
				{ThumbsUp, 0.15, 0.15, -15, 0.9},
			},
		},
		{
			ID: "flowers", DisplayName: "Flowers", Symbol: Blossom,
			Placements: []Placement{
				{Blossom, 0.85, 0.15, 0, 1},
				{Blossom, 0.15, 0.85, 0, 1},
				{Leaf, 0.15, 0.15, -30, 0.9},
				{Leaf, 0.85, 0.85, 30, 0.9},
			},
		},
	}
)

// Themes lists the presets, "none" first.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Lookup finds a theme by id; anything unknown gets the empty "none"
// theme.
func Lookup(id string) Theme {
	t, _ := Find(id)
	return t
}

// Find is Lookup, but also says whether the id was known.
func Find(id string) (Theme, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return None, false
}

// IDs returns the known theme ids.
func IDs() []string {
	ids := []string{}
	for _, t := range themes {
		ids = append(ids, t.ID)
	}
	return ids
}

// An Anchor is a placement resolved onto the strip, in pixels.
type Anchor struct {
	Placement
	Cell int
	X, Y float64
}

// Anchors resolves the theme's placements onto a grid with `rows`
// rows of cellW x cellH pixels, in draw order. Each symbol's
// placements go to consecutive cells (the first into cell 0, the next
// into cell 1, ...), with any extras piling up in the last row.
func (t Theme) Anchors(rows int, cellW, cellH float64) []Anchor {
	anchors := []Anchor{}
	seen := map[Symbol]int{}

	for _, p := range t.Placements {
		cell := seen[p.Symbol]
		seen[p.Symbol]++
		if cell > rows-1 {
			cell = rows - 1
		}
		if cell < 0 {
			cell = 0
		}

		anchors = append(anchors, Anchor{
			Placement: p,
			Cell:      cell,
			X:         p.X * cellW,
			Y:         (float64(cell) + p.Y) * cellH,
		})
	}

	return anchors
}
