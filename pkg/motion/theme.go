package motion

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/adaptive/pkg/animation"
)

// Theme maps preset names to their specs. Themes marshal to and from YAML
// documents.
type Theme map[string]Spec

// DefaultTheme returns the stock presets. The returned theme is a fresh
// copy each call; callers may extend or replace entries freely.
//
// The timed presets are fade, slide, and squeeze, matching the container
// transition defaults. The spring presets are pop, a quick settle with a
// barely visible overshoot, and overshoot, which travels well past the
// target before settling.
func DefaultTheme() Theme {
	return Theme{
		"fade": {Timed: &TimedSpec{
			Duration: Duration(200 * time.Millisecond),
			Easing:   animation.EaseOutCubic,
		}},
		"slide": {Timed: &TimedSpec{
			Duration: Duration(250 * time.Millisecond),
			Easing:   animation.EaseInOutCubic,
		}},
		"squeeze": {Timed: &TimedSpec{
			Duration: Duration(300 * time.Millisecond),
			Easing:   animation.EaseInOutQuart,
		}},
		"pop": {Spring: &SpringSpec{
			DampingRatio: f64(0.75),
			Stiffness:    400,
		}},
		"overshoot": {Spring: &SpringSpec{
			DampingRatio: f64(0.55),
			Stiffness:    300,
		}},
	}
}

// ParseTheme parses a YAML theme document and validates every preset.
// Unknown fields are rejected. An empty document yields an empty theme.
func ParseTheme(data []byte) (Theme, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var theme Theme
	if err := dec.Decode(&theme); err != nil {
		if err == io.EOF {
			return Theme{}, nil
		}
		return nil, fmt.Errorf("failed to parse motion theme: %w", err)
	}

	names := make([]string, 0, len(theme))
	for name := range theme {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := theme[name]
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("motion preset %q: %w", name, err)
		}
	}
	return theme, nil
}

// LoadTheme reads and parses the YAML theme file at path.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read motion theme: %w", err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return theme, nil
}

func f64(v float64) *float64 {
	return &v
}
