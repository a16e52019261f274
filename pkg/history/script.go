package history

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/photostrip/pkg/compose"
	"github.com/abworrall/photostrip/pkg/filter"
)

/* Example script file ...

steps:
  - filter: vintage
  - brightness: 140
    preview: true   # dragging ...
  - brightness: 120 # ... and let go
  - theme: stars
  - border_color: pink
    border_width: 25
  - undo: true

*/

// A Script replays a sequence of edits against a session, as if a user
// had made them.
type Script struct {
	Steps []Step
}

// A Step changes any of the params it mentions, and commits the result
// (or just previews it). A step with Undo or Reset set does only that.
type Step struct {
	Filter      *filter.ID `yaml:"filter,omitempty"`
	Brightness  *int       `yaml:"brightness,omitempty"`
	Contrast    *int       `yaml:"contrast,omitempty"`
	Theme       string     `yaml:"theme,omitempty"`
	BorderColor string     `yaml:"border_color,omitempty"`
	BorderWidth *int       `yaml:"border_width,omitempty"`

	Preview bool `yaml:"preview,omitempty"`
	Undo    bool `yaml:"undo,omitempty"`
	Reset   bool `yaml:"reset,omitempty"`
}

func ParseScript(b []byte) (Script, error) {
	s := Script{}
	if err := yaml.UnmarshalStrict(b, &s); err != nil {
		return s, err
	}
	for i, step := range s.Steps {
		if step.BorderColor != "" {
			if _, err := compose.ParseColor(step.BorderColor); err != nil {
				return s, fmt.Errorf("step %d: %w", i, err)
			}
		}
	}
	return s, nil
}

func LoadScript(filename string) (Script, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Script{}, fmt.Errorf("script read %s: %w", filename, err)
	}

	s, err := ParseScript(contents)
	if err != nil {
		return s, fmt.Errorf("script parse %s: %w", filename, err)
	}
	return s, nil
}

// Apply returns p with the step's changes made.
func (step Step) Apply(p compose.Params) compose.Params {
	if step.Filter != nil {
		p.Filter = *step.Filter
	}
	if step.Brightness != nil {
		p.Adjustment.Brightness = *step.Brightness
	}
	if step.Contrast != nil {
		p.Adjustment.Contrast = *step.Contrast
	}
	if step.Theme != "" {
		p.Theme = step.Theme
	}
	if step.BorderColor != "" {
		if c, err := compose.ParseColor(step.BorderColor); err == nil {
			p.Border.Color = c
		}
	}
	if step.BorderWidth != nil {
		p.Border.Width = *step.BorderWidth
	}
	return p
}

// Run plays the steps in order. Edits build on the committed snapshot,
// not on whatever was last previewed.
func (sc Script) Run(s *Session) error {
	for i, step := range sc.Steps {
		var err error

		switch {
		case step.Undo:
			_, err = s.Undo()
		case step.Reset:
			err = s.ResetAll()
		case step.Preview:
			err = s.Preview(step.Apply(s.Current().Params))
		default:
			err = s.Commit(step.Apply(s.Current().Params))
		}

		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
