package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/abworrall/photostrip/pkg/compose"
	"github.com/abworrall/photostrip/pkg/filter"
	"github.com/abworrall/photostrip/pkg/gallery"
	"github.com/abworrall/photostrip/pkg/history"
)

type composeFlags struct {
	verbosity   int
	configFile  string
	layoutID    string
	portrait    bool
	filterName  string
	brightness  int
	contrast    int
	theme       string
	borderColor string
	borderWidth int
	canvasWidth int
	watermark   string
	script      string
	output      string
	galleryDir  string
	save        bool
}

func composeCmd() *cobra.Command {
	f := composeFlags{}

	cmd := &cobra.Command{
		Use:   "compose [flags] photo-or-dir...",
		Short: "Render photos into a strip",
		Long: `Render photos into a strip. Directories are read recursively, in name
order; a .yaml file among the inputs is read as the base config.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.verbosity, "verbose", "v", 0, "how verbose to get")
	fl.StringVar(&f.configFile, "config", "", "YAML config file")
	fl.StringVarP(&f.layoutID, "layout", "l", "classic", "layout id (see 'photostrip layouts')")
	fl.BoolVar(&f.portrait, "portrait", true, "photos were captured in portrait mode")
	fl.StringVarP(&f.filterName, "filter", "f", "normal", "filter (see 'photostrip filters')")
	fl.IntVar(&f.brightness, "brightness", filter.DefaultBrightness, "brightness, 0-200")
	fl.IntVar(&f.contrast, "contrast", filter.DefaultContrast, "contrast, 0-200")
	fl.StringVarP(&f.theme, "theme", "t", "none", "sticker theme (see 'photostrip themes')")
	fl.StringVar(&f.borderColor, "border-color", "green", "border color: a palette name or hex")
	fl.IntVar(&f.borderWidth, "border-width", compose.DefaultBorderWidth, "border width in pixels, 5-30")
	fl.IntVar(&f.canvasWidth, "width", 0, "strip width in pixels (overrides config)")
	fl.StringVar(&f.watermark, "watermark", "", "watermark text (overrides config)")
	fl.StringVar(&f.script, "script", "", "YAML edit script to replay after the flags are applied")
	fl.StringVarP(&f.output, "output", "o", "strip.png", "write the strip to this PNG file ('' to skip)")
	fl.StringVar(&f.galleryDir, "gallery", "photostrip-gallery", "gallery directory")
	fl.BoolVar(&f.save, "save", false, "save the strip into the gallery")

	return cmd
}

// editParams turns the flags into params. Anything out of range is
// clamped later; only unparseable values are errors.
func (f composeFlags) editParams() (compose.Params, error) {
	p := compose.DefaultParams()

	id, err := filter.Parse(f.filterName)
	if err != nil {
		return p, err
	}
	c, err := compose.ParseColor(f.borderColor)
	if err != nil {
		return p, err
	}

	p.Filter = id
	p.Adjustment = compose.Adjustment{Brightness: f.brightness, Contrast: f.contrast}
	p.Theme = f.theme
	p.Border = compose.Border{Color: c, Width: f.borderWidth}
	return p, nil
}

func runCompose(cmd *cobra.Command, f composeFlags, args []string) error {
	fs := gallery.NewFileSession(f.layoutID, f.portrait)
	if err := fs.LoadFilesAndDirs(args...); err != nil {
		return err
	}

	// Override the config file with command line args, if relevant
	if f.configFile != "" {
		cfg, err := compose.LoadConfig(f.configFile)
		if err != nil {
			return err
		}
		fs.Config = cfg
	}
	if f.verbosity > 0 {
		fs.Config.Verbosity = f.verbosity
	}
	if f.canvasWidth > 0 {
		fs.Config.CanvasWidth = f.canvasWidth
	}
	if f.watermark != "" {
		fs.Config.Watermark = f.watermark
	}
	if err := fs.Config.Finalize(); err != nil {
		return err
	}

	if fs.Config.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", fs.Config.AsYaml())
	}

	p, err := f.editParams()
	if err != nil {
		return err
	}

	if f.save {
		g, err := gallery.Open(f.galleryDir, fs.Config)
		if err != nil {
			return err
		}
		defer g.Close()
		fs.Gallery = g
	}

	s, err := history.Start(fs, compose.NewCompositor(fs.Config))
	if err != nil {
		return err
	}
	if err := s.Commit(p); err != nil {
		return err
	}

	if f.script != "" {
		sc, err := history.LoadScript(f.script)
		if err != nil {
			return err
		}
		if err := sc.Run(s); err != nil {
			return err
		}
	}

	if fs.Config.Verbosity > 0 {
		log.Printf("%s", s.History())
		log.Printf("%s\n", s.LastStats())
	}
	if fs.Config.Verbosity > 1 {
		log.Printf("Tones: %v\n", toneHistogram(s.Displayed()))
	}

	out := cmd.OutOrStdout()

	if f.output != "" {
		if err := compose.WritePNG(s.Displayed(), f.output); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%s)\n", f.output, s.DisplayedParams())
	}

	if f.save {
		if err := s.Save(); err != nil {
			return err
		}
		strip := fs.Saved[len(fs.Saved)-1]
		fmt.Fprintf(out, "saved %s\n", fs.Gallery.Path(strip))
	}

	return nil
}
