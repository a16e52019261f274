package compose

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

/* Example config file ...

verbosity: 1
canvaswidth: 600
watermark: "party time"
watermarksize: 24
stickersize: 40
jpegquality: 95

*/

type Config struct {
	Verbosity int

	CanvasWidth     int     // Width of the strip in pixels; height follows from the photos
	Watermark       string  // Label drawn along the bottom, over everything else
	WatermarkSize   float64 // In pixels
	WatermarkOffset float64 // Baseline distance up from the bottom edge
	StickerSize     float64 // Height of a sticker at scale 1.0
	DecodeWorkers   int     // How many photos to decode at once
	JPEGQuality     int     // For saved strips
}

func NewConfig() Config {
	return Config{
		CanvasWidth:     400,
		Watermark:       "photobooth",
		WatermarkSize:   20,
		WatermarkOffset: 20,
		StickerSize:     30,
		DecodeWorkers:   4,
		JPEGQuality:     100,
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, c.Finalize()
}

// LoadConfig reads a YAML config file; anything it doesn't mention
// keeps its default.
func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %w", filename, err)
	}

	c, err := newConfigFromYaml(contents)
	if err != nil {
		return c, fmt.Errorf("config parse %s: %w", filename, err)
	}
	return c, nil
}

// Finalize does sanity checks, and fills in anything left at zero.
func (c *Config) Finalize() error {
	def := NewConfig()

	if c.CanvasWidth < 0 {
		return fmt.Errorf("canvaswidth %d is negative", c.CanvasWidth)
	} else if c.CanvasWidth == 0 {
		c.CanvasWidth = def.CanvasWidth
	}
	if c.WatermarkSize <= 0 {
		c.WatermarkSize = def.WatermarkSize
	}
	if c.StickerSize <= 0 {
		c.StickerSize = def.StickerSize
	}
	if c.DecodeWorkers <= 0 {
		c.DecodeWorkers = 1
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = def.JPEGQuality
	}

	return nil
}

func (c Config) AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Printf("Can't marshal config yaml: %v\n", err)
		return ""
	}
	return string(b)
}
