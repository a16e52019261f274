package history

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/abworrall/photostrip/pkg/compose"
	"github.com/abworrall/photostrip/pkg/layout"
)

var (
	ErrMissingSource   = errors.New("no photos captured; capture photos first")
	ErrNothingRendered = errors.New("nothing has been rendered yet")
)

// SessionStore is everything the edit session needs from outside: the
// captured photos, the layout picked for them, and somewhere to put the
// finished strip.
type SessionStore interface {
	RawPhotos() []*compose.RawPhoto
	LayoutSelection() (id string, portrait bool)
	EmitComposite(img image.Image) error
}

// A Session is one round of editing a strip. It isn't safe for
// concurrent use; each call renders synchronously, and the most recent
// render is what's displayed.
type Session struct {
	store      SessionStore
	compositor compose.Compositor
	geo        layout.Geometry
	hist       *History

	displayed       *image.RGBA
	displayedParams compose.Params
	lastStats       compose.RenderStats
}

// Start opens a session over the store's photos, with everything at
// its defaults, and renders the untouched strip.
func Start(store SessionStore, c compose.Compositor) (*Session, error) {
	photos := store.RawPhotos()
	if len(photos) == 0 {
		return nil, ErrMissingSource
	}

	id, portrait := store.LayoutSelection()
	s := &Session{
		store:      store,
		compositor: c,
		geo:        layout.Resolve(id, portrait),
		hist:       New(Snapshot{Photos: photos, Params: compose.DefaultParams()}),
	}

	if c.Verbosity > 0 {
		log.Printf("session: %d photos, layout '%s' -> %s\n", len(photos), id, s.geo)
	}

	if err := s.render(s.hist.Current().Params); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) render(p compose.Params) error {
	img, stats, err := s.compositor.RenderWithStats(s.hist.Current().Photos, s.geo, p)
	if err != nil {
		return fmt.Errorf("render %s: %w", p, err)
	}
	s.displayed, s.displayedParams, s.lastStats = img, p, stats
	return nil
}

// Preview renders params without recording them; this is for sliders
// while they're being dragged.
func (s *Session) Preview(p compose.Params) error {
	return s.render(p.Clamp())
}

// Commit records params as a new snapshot, and renders it. Every
// commit is recorded, even one that repeats the current params, so
// each commit is one step of undo.
func (s *Session) Commit(p compose.Params) error {
	p = p.Clamp()

	s.hist.Record(Snapshot{Photos: s.hist.Current().Photos, Params: p})
	if s.compositor.Verbosity > 0 {
		log.Printf("session: commit #%d %s\n", s.hist.Cursor(), p)
	}
	return s.render(p)
}

// Undo steps back one snapshot and renders it. It returns false if
// there was nothing to undo.
func (s *Session) Undo() (bool, error) {
	if !s.hist.Undo() {
		return false, nil
	}
	return true, s.render(s.hist.Current().Params)
}

// ResetAll goes back to the untouched strip. The snapshots after it are
// kept until the next commit.
func (s *Session) ResetAll() error {
	s.hist.Reset()
	return s.render(s.hist.Current().Params)
}

// Save hands the displayed strip to the store.
func (s *Session) Save() error {
	if s.displayed == nil {
		return ErrNothingRendered
	}
	if err := s.store.EmitComposite(s.displayed); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Displayed is the result of the most recent render. It is replaced,
// not modified, by later renders.
func (s *Session) Displayed() *image.RGBA { return s.displayed }

func (s *Session) DisplayedParams() compose.Params { return s.displayedParams }
func (s *Session) LastStats() compose.RenderStats  { return s.lastStats }
func (s *Session) Current() Snapshot               { return s.hist.Current() }
func (s *Session) History() *History               { return s.hist }
func (s *Session) Geometry() layout.Geometry       { return s.geo }
