// Package gallery keeps finished strips: JPEG files in a directory,
// indexed in an SQLite database alongside them.
package gallery

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/abworrall/photostrip/pkg/compose"
)

const (
	IndexFilename = "gallery.db"
	FilePrefix    = "photobooth_"
)

var ErrNotFound = errors.New("no such strip")

const schema = `
CREATE TABLE IF NOT EXISTS strips (
	id         TEXT PRIMARY KEY,
	filename   TEXT NOT NULL,
	layout     TEXT NOT NULL,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS strips_created ON strips(created_at);
`

// A Strip is one saved composite.
type Strip struct {
	ID        string
	Filename  string // Relative to the gallery dir
	Layout    string
	Width     int
	Height    int
	CreatedAt time.Time
}

func (s Strip) String() string {
	return fmt.Sprintf("%s  %-8s %4dx%-4d  %s", s.CreatedAt.Format("2006-01-02 15:04:05"), s.Layout, s.Width, s.Height, s.Filename)
}

type Gallery struct {
	Dir         string
	JPEGQuality int
	Verbosity   int

	db    *sql.DB
	newID func() string
	now   func() time.Time
}

// Open opens (or creates) the gallery living in dir.
func Open(dir string, cfg compose.Config) (*Gallery, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("gallery mkdir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, IndexFilename))
	if err != nil {
		return nil, fmt.Errorf("gallery open: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("gallery %s: %w", p, err)
		}
	}

	g, err := newGallery(dir, db, cfg)
	if err != nil {
		db.Close()
		return nil, err
	}
	return g, nil
}

func newGallery(dir string, db *sql.DB, cfg compose.Config) (*Gallery, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("gallery schema: %w", err)
	}

	return &Gallery{
		Dir:         dir,
		JPEGQuality: cfg.JPEGQuality,
		Verbosity:   cfg.Verbosity,
		db:          db,
		newID:       func() string { return uuid.Must(uuid.NewV7()).String() },
		now:         time.Now,
	}, nil
}

func (g *Gallery) Close() error { return g.db.Close() }

// Path is where the strip's JPEG lives.
func (g *Gallery) Path(s Strip) string { return filepath.Join(g.Dir, s.Filename) }

// Add encodes the strip as a JPEG, and files it. Nothing is indexed
// unless the file was written in full.
func (g *Gallery) Add(img image.Image, layoutID string) (Strip, error) {
	b := img.Bounds()
	s := Strip{
		ID:        g.newID(),
		Layout:    layoutID,
		Width:     b.Dx(),
		Height:    b.Dy(),
		CreatedAt: g.now().UTC(),
	}
	s.Filename = FilePrefix + s.ID + ".jpg"

	var buf bytes.Buffer
	if err := compose.EncodeJPEG(&buf, img, g.JPEGQuality); err != nil {
		return s, fmt.Errorf("gallery encode: %w", err)
	}
	if err := os.WriteFile(g.Path(s), buf.Bytes(), 0o644); err != nil {
		return s, fmt.Errorf("gallery write: %w", err)
	}

	_, err := g.db.Exec(`INSERT INTO strips (id, filename, layout, width, height, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Filename, s.Layout, s.Width, s.Height, s.CreatedAt.UnixNano())
	if err != nil {
		os.Remove(g.Path(s))
		return s, fmt.Errorf("gallery insert: %w", err)
	}

	if g.Verbosity > 0 {
		log.Printf("gallery: saved %s (%d bytes)\n", g.Path(s), buf.Len())
	}
	return s, nil
}

// List returns every strip, newest first.
func (g *Gallery) List() ([]Strip, error) {
	rows, err := g.db.Query(`SELECT id, filename, layout, width, height, created_at FROM strips ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("gallery list: %w", err)
	}
	defer rows.Close()

	strips := []Strip{}
	for rows.Next() {
		s, err := scanStrip(rows)
		if err != nil {
			return nil, fmt.Errorf("gallery list: %w", err)
		}
		strips = append(strips, s)
	}
	return strips, rows.Err()
}

func (g *Gallery) Get(id string) (Strip, error) {
	row := g.db.QueryRow(`SELECT id, filename, layout, width, height, created_at FROM strips WHERE id = ?`, id)
	s, err := scanStrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return s, fmt.Errorf("strip %s: %w", id, ErrNotFound)
	} else if err != nil {
		return s, fmt.Errorf("strip %s: %w", id, err)
	}
	return s, nil
}

// Delete removes one strip, file and all.
func (g *Gallery) Delete(id string) error {
	s, err := g.Get(id)
	if err != nil {
		return err
	}
	if _, err := g.db.Exec(`DELETE FROM strips WHERE id = ?`, id); err != nil {
		return fmt.Errorf("gallery delete %s: %w", id, err)
	}
	if err := os.Remove(g.Path(s)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("gallery delete %s: %w", id, err)
	}
	return nil
}

// Clear removes every strip, and returns how many went. If a delete
// fails, the count so far comes back with the error.
func (g *Gallery) Clear() (int, error) {
	strips, err := g.List()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, s := range strips {
		if err := g.Delete(s.ID); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStrip(r scanner) (Strip, error) {
	s := Strip{}
	var nanos int64
	if err := r.Scan(&s.ID, &s.Filename, &s.Layout, &s.Width, &s.Height, &nanos); err != nil {
		return s, err
	}
	s.CreatedAt = time.Unix(0, nanos).UTC()
	return s, nil
}
