package gallery

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abworrall/photostrip/pkg/compose"
)

// PhotoExtensions are the files LoadFilesAndDirs treats as photos.
var PhotoExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// A FileSession is a photo session backed by files on disk, filing
// finished strips in a Gallery.
type FileSession struct {
	Photos   []*compose.RawPhoto
	LayoutID string
	Portrait bool
	Config   compose.Config // Replaced by any .yaml file among the inputs

	Gallery *Gallery
	Saved   []Strip
}

func NewFileSession(layoutID string, portrait bool) *FileSession {
	return &FileSession{LayoutID: layoutID, Portrait: portrait, Config: compose.NewConfig()}
}

func (fs *FileSession) RawPhotos() []*compose.RawPhoto  { return fs.Photos }
func (fs *FileSession) LayoutSelection() (string, bool) { return fs.LayoutID, fs.Portrait }

// EmitComposite files the strip in the gallery.
func (fs *FileSession) EmitComposite(img image.Image) error {
	if fs.Gallery == nil {
		return fmt.Errorf("emit: no gallery")
	}
	s, err := fs.Gallery.Add(img, fs.LayoutID)
	if err != nil {
		return err
	}
	fs.Saved = append(fs.Saved, s)
	return nil
}

// LoadFilesAndDirs adds photos from the named files, recursing into
// directories. Directory contents are taken in name order, which is
// the order they'll appear in the strip.
func (fs *FileSession) LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %w", arg, err)

		case item.IsDir():
			contents, err := os.ReadDir(arg) // sorted by filename
			if err != nil {
				return fmt.Errorf("readdir %s: %w", arg, err)
			}
			for _, content := range contents {
				if err := fs.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return err
				}
			}

		default:
			if err := fs.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %w", arg, err)
			}
		}
	}

	return nil
}

func (fs *FileSession) loadFile(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	switch {

	case PhotoExtensions[ext]:
		p, err := compose.LoadRawPhoto(filename)
		if err != nil {
			return err
		}
		fs.Photos = append(fs.Photos, p)

	case ext == ".yaml" || ext == ".yml":
		cfg, err := compose.LoadConfig(filename)
		if err != nil {
			return err
		}
		fs.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)
	}

	return nil
}
