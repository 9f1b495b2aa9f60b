package animation

import (
	"math"

	"github.com/go-drift/adaptive/pkg/errors"
)

// SpringParams describes the physical parameters of a [SpringAnimation]:
// the damping, mass, and stiffness of a damped harmonic oscillator. Params
// are immutable once constructed and can be shared between animations.
type SpringParams struct {
	damping   float64
	mass      float64
	stiffness float64
}

// NewSpringParams creates spring parameters from a damping ratio rather
// than an absolute damping value. A ratio below 1 gives an underdamped
// spring that overshoots and oscillates, exactly 1 a critically damped
// spring that settles as fast as possible without overshoot, and above 1
// an overdamped spring that settles slowly.
func NewSpringParams(dampingRatio, mass, stiffness float64) *SpringParams {
	if !(dampingRatio >= 0) {
		errors.Reportf("animation.NewSpringParams", errors.KindArgument,
			"damping ratio must be >= 0, got %v", dampingRatio)
		return nil
	}
	criticalDamping := 2 * math.Sqrt(mass*stiffness)
	return NewSpringParamsFull(dampingRatio*criticalDamping, mass, stiffness)
}

// NewSpringParamsFull creates spring parameters from an absolute damping
// value. Most callers want [NewSpringParams].
func NewSpringParamsFull(damping, mass, stiffness float64) *SpringParams {
	const op = "animation.NewSpringParamsFull"
	if !(damping >= 0) {
		errors.Reportf(op, errors.KindArgument, "damping must be >= 0, got %v", damping)
		return nil
	}
	if !(mass > 0) {
		errors.Reportf(op, errors.KindArgument, "mass must be > 0, got %v", mass)
		return nil
	}
	if !(stiffness > 0) {
		errors.Reportf(op, errors.KindArgument, "stiffness must be > 0, got %v", stiffness)
		return nil
	}
	return &SpringParams{damping: damping, mass: mass, stiffness: stiffness}
}

// Damping returns the absolute damping value.
func (p *SpringParams) Damping() float64 {
	return p.damping
}

// DampingRatio returns the damping as a fraction of critical damping.
func (p *SpringParams) DampingRatio() float64 {
	return p.damping / (2 * math.Sqrt(p.mass*p.stiffness))
}

// Mass returns the mass.
func (p *SpringParams) Mass() float64 {
	return p.mass
}

// Stiffness returns the spring constant.
func (p *SpringParams) Stiffness() float64 {
	return p.stiffness
}
