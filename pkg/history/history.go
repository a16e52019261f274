// Package history keeps the sequence of edits made to a strip, and
// drives re-renders as the user moves through it.
package history

import (
	"fmt"

	"github.com/abworrall/photostrip/pkg/compose"
)

// A Snapshot is one recorded edit state: the photos, plus every
// parameter of the render. Snapshots are values; they are never
// modified once recorded.
type Snapshot struct {
	Photos []*compose.RawPhoto
	Params compose.Params
}

// Equal compares by photo identity and parameter value.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.Photos) != len(o.Photos) || s.Params != o.Params {
		return false
	}
	for i := range s.Photos {
		if s.Photos[i] != o.Photos[i] {
			return false
		}
	}
	return true
}

func (s Snapshot) String() string { return fmt.Sprintf("%d photos, %s", len(s.Photos), s.Params) }

// History is a non-empty list of snapshots with a cursor. Recording
// after an undo discards the undone snapshots.
type History struct {
	snapshots []Snapshot
	cursor    int
}

func New(initial Snapshot) *History {
	return &History{snapshots: []Snapshot{initial}}
}

// Record drops everything after the cursor, and appends s.
func (h *History) Record(s Snapshot) {
	h.snapshots = append(h.snapshots[:h.cursor+1:h.cursor+1], s)
	h.cursor = len(h.snapshots) - 1
}

// Undo steps back one snapshot. At the first snapshot it does nothing,
// and returns false.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Reset jumps back to the first snapshot. Nothing is discarded until
// the next Record.
func (h *History) Reset() { h.cursor = 0 }

func (h *History) Current() Snapshot { return h.snapshots[h.cursor] }
func (h *History) Len() int          { return len(h.snapshots) }
func (h *History) Cursor() int       { return h.cursor }
func (h *History) At(i int) Snapshot { return h.snapshots[i] }
func (h *History) CanUndo() bool     { return h.cursor > 0 }

func (h *History) String() string {
	s := fmt.Sprintf("History[%d snapshots, cursor=%d]\n", len(h.snapshots), h.cursor)
	for i, snap := range h.snapshots {
		mark := " "
		if i == h.cursor {
			mark = "*"
		}
		s += fmt.Sprintf(" %s%3d: %s\n", mark, i, snap)
	}
	return s
}
