// Package motion defines named transition presets loadable from YAML theme
// files.
//
// A theme document maps preset names to specs. Each spec describes either a
// timed animation or a spring:
//
//	fade:
//	  timed:
//	    duration: 200ms
//	    easing: ease-out-cubic
//	pop:
//	  spring:
//	    damping-ratio: 0.75
//	    stiffness: 400
//
// [DefaultTheme] returns the stock presets. [LoadTheme] and [ParseTheme]
// read custom themes, rejecting unknown fields, unknown easing names,
// non-positive durations, and malformed spring parameters. [Spec.Build]
// turns a preset into a running animation.
package motion

import (
	"fmt"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/errors"
)

// Duration is a [time.Duration] that marshals as a Go duration string such
// as "200ms" or "1.5s". Plain numbers are rejected; theme files must spell
// out the unit.
type Duration time.Duration

// String returns the Go duration string form.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Spec describes one named transition: exactly one of Timed or Spring must
// be set.
type Spec struct {
	Timed  *TimedSpec  `yaml:"timed,omitempty"`
	Spring *SpringSpec `yaml:"spring,omitempty"`
}

// TimedSpec describes a fixed-duration transition driven by an easing
// function.
type TimedSpec struct {
	// Duration is the length of the transition and must be positive.
	Duration Duration `yaml:"duration"`
	// Easing shapes the transition. When omitted the transition is linear.
	Easing animation.Easing `yaml:"easing"`
}

// SpringSpec describes a physics-driven transition. At most one of
// DampingRatio and Damping may be set; with neither the spring is
// critically damped.
type SpringSpec struct {
	// DampingRatio is the damping as a fraction of critical damping.
	DampingRatio *float64 `yaml:"damping-ratio,omitempty"`
	// Damping is the absolute damping value.
	Damping *float64 `yaml:"damping,omitempty"`
	// Mass defaults to 1 when omitted.
	Mass float64 `yaml:"mass,omitempty"`
	// Stiffness is the spring constant and must be positive.
	Stiffness float64 `yaml:"stiffness"`
	// Epsilon is the settle tolerance; omitted means the animation
	// default.
	Epsilon float64 `yaml:"epsilon,omitempty"`
	// Latch stops the spring at its first arrival at the target.
	Latch bool `yaml:"latch,omitempty"`
	// Velocity is the initial velocity in value units per second.
	Velocity float64 `yaml:"velocity,omitempty"`
}

// Validate checks that the preset describes exactly one well-formed
// animation. [ParseTheme] and [LoadTheme] validate every preset they
// return; call Validate directly for specs built in code.
func (s Spec) Validate() error {
	switch {
	case s.Timed != nil && s.Spring != nil:
		return fmt.Errorf("preset sets both timed and spring")
	case s.Timed != nil:
		return s.Timed.validate()
	case s.Spring != nil:
		return s.Spring.validate()
	default:
		return fmt.Errorf("preset sets neither timed nor spring")
	}
}

func (t *TimedSpec) validate() error {
	if t.Duration <= 0 {
		return fmt.Errorf("timed duration must be positive (got %v)", time.Duration(t.Duration))
	}
	if _, err := t.Easing.MarshalText(); err != nil {
		return fmt.Errorf("timed easing: %w", err)
	}
	return nil
}

func (s *SpringSpec) validate() error {
	if s.DampingRatio != nil && s.Damping != nil {
		return fmt.Errorf("spring sets both damping-ratio and damping")
	}
	if s.DampingRatio != nil && !(*s.DampingRatio >= 0) {
		return fmt.Errorf("spring damping-ratio must be >= 0 (got %v)", *s.DampingRatio)
	}
	if s.Damping != nil && !(*s.Damping >= 0) {
		return fmt.Errorf("spring damping must be >= 0 (got %v)", *s.Damping)
	}
	if s.Mass != 0 && !(s.Mass > 0) {
		return fmt.Errorf("spring mass must be > 0 (got %v)", s.Mass)
	}
	if !(s.Stiffness > 0) {
		return fmt.Errorf("spring stiffness must be > 0 (got %v)", s.Stiffness)
	}
	if s.Epsilon != 0 && !(s.Epsilon > 0) {
		return fmt.Errorf("spring epsilon must be > 0 (got %v)", s.Epsilon)
	}
	return nil
}

// Build constructs the animation the preset describes, running on host from
// `from` to `to` and pushing values to target. Malformed presets report a
// diagnostic and return nil; [Spec.Validate] surfaces the same problems as
// Go errors ahead of time.
func (s Spec) Build(host animation.Host, from, to float64, target animation.Target) animation.Animator {
	const op = "motion.Spec.Build"
	switch {
	case s.Timed != nil && s.Spring != nil:
		errors.Reportf(op, errors.KindUsage, "preset sets both timed and spring")
		return nil
	case s.Timed != nil:
		anim := animation.NewTimedAnimation(host, from, to, time.Duration(s.Timed.Duration), target)
		if anim == nil {
			return nil
		}
		anim.SetEasing(s.Timed.Easing)
		return anim
	case s.Spring != nil:
		params := s.Spring.springParams()
		if params == nil {
			return nil
		}
		anim := animation.NewSpringAnimation(host, from, to, params, target)
		if anim == nil {
			return nil
		}
		if s.Spring.Epsilon != 0 {
			anim.SetEpsilon(s.Spring.Epsilon)
		}
		anim.SetLatch(s.Spring.Latch)
		anim.SetInitialVelocity(s.Spring.Velocity)
		return anim
	default:
		errors.Reportf(op, errors.KindUsage, "preset sets neither timed nor spring")
		return nil
	}
}

// springParams builds the immutable parameter set, filling in the defaults:
// mass 1 and critical damping.
func (s *SpringSpec) springParams() *animation.SpringParams {
	mass := s.Mass
	if mass == 0 {
		mass = 1
	}
	if s.Damping != nil {
		return animation.NewSpringParamsFull(*s.Damping, mass, s.Stiffness)
	}
	ratio := 1.0
	if s.DampingRatio != nil {
		ratio = *s.DampingRatio
	}
	return animation.NewSpringParams(ratio, mass, s.Stiffness)
}
