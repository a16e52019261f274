package gallery

import (
	"database/sql"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abworrall/photostrip/pkg/compose"
	"github.com/abworrall/photostrip/pkg/history"
)

func openMemory(t *testing.T) *Gallery {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	g, err := newGallery(t.TempDir(), db, compose.NewConfig())
	if err != nil {
		t.Fatalf("newGallery: %v", err)
	}

	// A clock that ticks a second per strip, so ordering is stable.
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return g
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}

func TestAddListDelete(t *testing.T) {
	g := openMemory(t)

	var added []Strip
	for i := 0; i < 3; i++ {
		s, err := g.Add(testImage(40, 60+i), "classic")
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		added = append(added, s)
	}

	s := added[0]
	if s.Filename != "photobooth_"+s.ID+".jpg" || s.Width != 40 || s.Height != 60 {
		t.Errorf("strip: %+v", s)
	}
	if _, err := os.Stat(g.Path(s)); err != nil {
		t.Errorf("no file: %v", err)
	}

	list, err := g.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].ID != added[2].ID || list[2].ID != added[0].ID {
		t.Fatalf("list isn't newest first: %v", list)
	}

	got, err := g.Get(s.ID)
	if err != nil || got.Filename != s.Filename || got.Height != s.Height || !got.CreatedAt.Equal(s.CreatedAt) {
		t.Errorf("get: %+v, %v (want %+v)", got, err, s)
	}

	if err := g.Delete(s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(g.Path(s)); !os.IsNotExist(err) {
		t.Errorf("file survived delete: %v", err)
	}
	if _, err := g.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: %v", err)
	}
	if err := g.Delete(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: %v", err)
	}

	n, err := g.Clear()
	if err != nil || n != 2 {
		t.Errorf("clear: %d, %v", n, err)
	}
	if list, _ := g.List(); len(list) != 0 {
		t.Errorf("clear left %d strips", len(list))
	}
}

func TestClearReportsPartialProgress(t *testing.T) {
	g := openMemory(t)

	var added []Strip
	for i := 0; i < 3; i++ {
		s, err := g.Add(testImage(8, 8), "classic")
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		added = append(added, s)
	}

	// The oldest strip goes last; make its file impossible to remove.
	oldest := g.Path(added[0])
	if err := os.Remove(oldest); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(oldest, "stuck"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	n, err := g.Clear()
	if err == nil || n != 2 {
		t.Errorf("clear: got %d, %v; want 2 and an error", n, err)
	}
}

func TestSavedStripIsAJPEG(t *testing.T) {
	g := openMemory(t)
	s, err := g.Add(testImage(16, 16), "double")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	f, err := os.Open(g.Path(s))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil || format != "jpeg" {
		t.Errorf("saved file is %q: %v", format, err)
	}
}

func TestOpenOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "strips")

	g, err := Open(dir, compose.NewConfig())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s, err := g.Add(testImage(8, 8), "quad")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	g.Close()

	// Reopening finds what was saved.
	g, err = Open(dir, compose.NewConfig())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer g.Close()

	if got, err := g.Get(s.ID); err != nil || got.Layout != "quad" {
		t.Errorf("after reopen: %+v, %v", got, err)
	}
}

func writePNG(t *testing.T, filename string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 18))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(filename)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png: %v", err)
	}
}

func TestLoadFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "2.png"), color.NRGBA{0, 255, 0, 255})
	writePNG(t, filepath.Join(dir, "1.png"), color.NRGBA{255, 0, 0, 255})
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644)
	os.WriteFile(filepath.Join(dir, "strip.yaml"), []byte("canvaswidth: 120\n"), 0o644)

	fs := NewFileSession("double", true)
	if err := fs.LoadFilesAndDirs(dir); err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(fs.Photos) != 2 || fs.Photos[0].Name != "1.png" || fs.Photos[1].Name != "2.png" {
		t.Errorf("photos: %v", fs.Photos)
	}
	if fs.Config.CanvasWidth != 120 {
		t.Errorf("config not picked up: %+v", fs.Config)
	}

	if err := fs.LoadFilesAndDirs(filepath.Join(dir, "missing.png")); err == nil {
		t.Errorf("no error for a missing file")
	}
}

func TestFileSessionSave(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), color.NRGBA{255, 0, 0, 255})
	writePNG(t, filepath.Join(dir, "b.png"), color.NRGBA{0, 0, 255, 255})

	fs := NewFileSession("double", true)
	if err := fs.LoadFilesAndDirs(dir); err != nil {
		t.Fatalf("load: %v", err)
	}
	fs.Gallery = openMemory(t)

	s, err := history.Start(fs, compose.NewCompositor(fs.Config))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	list, _ := fs.Gallery.List()
	if len(fs.Saved) != 1 || len(list) != 1 || list[0].Layout != "double" {
		t.Errorf("saved %v, listed %v", fs.Saved, list)
	}
	if w := list[0].Width; w != 400 {
		t.Errorf("width %d", w)
	}
}

func TestEmptySessionIsMissingSource(t *testing.T) {
	fs := NewFileSession("classic", true)
	if _, err := history.Start(fs, compose.NewCompositor(fs.Config)); !errors.Is(err, history.ErrMissingSource) {
		t.Errorf("got %v", err)
	}
}
