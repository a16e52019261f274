package compose

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A RawPhoto is one captured photo, as handed over by the capture
// step. It is read-only: renders share it, and decoding happens at
// most once.
type RawPhoto struct {
	Name string

	encoded []byte

	once    sync.Once
	decoded image.Image
	err     error
}

// NewRawPhoto wraps encoded image bytes (JPEG, PNG, GIF, BMP, TIFF or
// WebP). The bytes are copied.
func NewRawPhoto(name string, encoded []byte) *RawPhoto {
	return &RawPhoto{Name: name, encoded: append([]byte(nil), encoded...)}
}

// NewRawPhotoFromImage wraps an image that has already been decoded.
// The caller must not modify img afterwards.
func NewRawPhotoFromImage(name string, img image.Image) *RawPhoto {
	p := &RawPhoto{Name: name, decoded: img}
	p.once.Do(func() {})
	return p
}

// LoadRawPhoto reads a photo file from disk. It isn't decoded until
// the first render needs it.
func LoadRawPhoto(filename string) (*RawPhoto, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r '%s': %w", filename, err)
	}
	return &RawPhoto{Name: filepath.Base(filename), encoded: b}, nil
}

func (p *RawPhoto) String() string {
	if p.encoded == nil {
		return fmt.Sprintf("%s (decoded)", p.Name)
	}
	return fmt.Sprintf("%s (%d bytes)", p.Name, len(p.encoded))
}

// Decode returns the photo's pixels, the right way up according to its
// EXIF orientation tag (if it has one).
func (p *RawPhoto) Decode() (image.Image, error) {
	p.once.Do(func() {
		img, format, err := image.Decode(bytes.NewReader(p.encoded))
		if err != nil {
			p.err = fmt.Errorf("decode '%s': %w", p.Name, err)
			return
		}
		if b := img.Bounds(); b.Empty() {
			p.err = fmt.Errorf("decode '%s': %s image is empty", p.Name, format)
			return
		}
		p.decoded = Orient(img, exifOrientation(p.encoded))
	})
	return p.decoded, p.err
}

// exifOrientation returns the EXIF orientation (1-8), or 1 if there
// isn't a usable one.
func exifOrientation(encoded []byte) int {
	ex, err := exif.Decode(bytes.NewReader(encoded))
	if err != nil {
		return 1
	}
	tag, err := ex.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}
