package animation

import (
	"math"
	"time"

	"github.com/go-drift/adaptive/pkg/errors"
)

const (
	// defaultEpsilon bounds how close to the target a spring must settle.
	defaultEpsilon = 0.001

	// slopeDelta is the finite-difference step, in seconds, for the
	// Newton refinement of overdamped settle times.
	slopeDelta = 0.001

	maxNewtonIterations = 1000
	maxLatchIterations  = 20000
	latchStep           = 2 * time.Millisecond

	// dblEpsilon is the smallest x with 1+x != 1 in float64.
	dblEpsilon = 2.220446049250313e-16
)

// SpringAnimation animates a value with damped harmonic oscillator physics:
// the value starts at ValueFrom moving at InitialVelocity and settles at
// ValueTo. There is no fixed duration; the animation runs until the
// oscillation stays within Epsilon of the target.
//
// With Latch set, the animation instead stops the moment the value first
// reaches the target, clamping out any overshoot. Use it for springs that
// must not travel past their destination, such as swipe-to-dismiss.
type SpringAnimation struct {
	Animation

	valueFrom       float64
	valueTo         float64
	params          *SpringParams
	initialVelocity float64
	epsilon         float64
	latch           bool

	estimatedDuration time.Duration
	velocity          float64
}

// NewSpringAnimation creates a spring animation on host from valueFrom to
// valueTo with the given spring parameters, pushing values to target.
func NewSpringAnimation(host Host, valueFrom, valueTo float64, params *SpringParams, target Target) *SpringAnimation {
	const op = "animation.NewSpringAnimation"
	if host == nil {
		errors.Reportf(op, errors.KindArgument, "host is nil")
		return nil
	}
	if params == nil {
		errors.Reportf(op, errors.KindArgument, "spring params are nil")
		return nil
	}
	a := &SpringAnimation{
		valueFrom: valueFrom,
		valueTo:   valueTo,
		params:    params,
		epsilon:   defaultEpsilon,
	}
	a.updateEstimatedDuration()
	a.init(host, target, a)
	return a
}

// ValueFrom returns the starting value.
func (a *SpringAnimation) ValueFrom() float64 {
	return a.valueFrom
}

// SetValueFrom sets the starting value.
func (a *SpringAnimation) SetValueFrom(value float64) {
	a.valueFrom = value
	a.updateEstimatedDuration()
}

// ValueTo returns the value the spring settles at.
func (a *SpringAnimation) ValueTo() float64 {
	return a.valueTo
}

// SetValueTo sets the value the spring settles at.
func (a *SpringAnimation) SetValueTo(value float64) {
	a.valueTo = value
	a.updateEstimatedDuration()
}

// SpringParams returns the physical parameters.
func (a *SpringAnimation) SpringParams() *SpringParams {
	return a.params
}

// SetSpringParams replaces the physical parameters. Nil params are an
// argument error and are ignored.
func (a *SpringAnimation) SetSpringParams(params *SpringParams) {
	if params == nil {
		errors.Reportf("animation.SpringAnimation.SetSpringParams", errors.KindArgument,
			"spring params are nil")
		return
	}
	a.params = params
	a.updateEstimatedDuration()
}

// InitialVelocity returns the starting velocity in value units per second.
func (a *SpringAnimation) InitialVelocity() float64 {
	return a.initialVelocity
}

// SetInitialVelocity sets the starting velocity in value units per second.
// Hand over the velocity of a gesture or of a replaced animation to keep
// motion continuous.
func (a *SpringAnimation) SetInitialVelocity(velocity float64) {
	a.initialVelocity = velocity
	a.updateEstimatedDuration()
}

// Epsilon returns the settle tolerance.
func (a *SpringAnimation) Epsilon() float64 {
	return a.epsilon
}

// SetEpsilon sets the settle tolerance. Smaller values keep the spring
// animating longer; epsilon must be greater than 0 or the call is ignored.
func (a *SpringAnimation) SetEpsilon(epsilon float64) {
	if !(epsilon > 0) {
		errors.Reportf("animation.SpringAnimation.SetEpsilon", errors.KindArgument,
			"epsilon must be > 0, got %v", epsilon)
		return
	}
	a.epsilon = epsilon
	a.updateEstimatedDuration()
}

// Latch reports whether the spring stops at its first arrival at the
// target.
func (a *SpringAnimation) Latch() bool {
	return a.latch
}

// SetLatch sets whether the spring stops at its first arrival at the
// target.
func (a *SpringAnimation) SetLatch(latch bool) {
	a.latch = latch
	a.updateEstimatedDuration()
}

// Velocity returns the velocity at the most recently evaluated time, in
// value units per second.
func (a *SpringAnimation) Velocity() float64 {
	return a.velocity
}

// EstimateDuration returns how long the spring takes to settle within
// Epsilon of the target, or [DurationInfinite] for an undamped spring. The
// estimate is kept current as parameters change.
func (a *SpringAnimation) EstimateDuration() time.Duration {
	return a.estimatedDuration
}

// CalculateValue returns the spring position at elapsed time since the
// start, recording the velocity for [SpringAnimation.Velocity].
func (a *SpringAnimation) CalculateValue(elapsed time.Duration) float64 {
	if elapsed >= a.estimatedDuration {
		a.velocity = 0
		return a.valueTo
	}
	value, velocity := a.oscillate(elapsed)
	a.velocity = velocity
	return value
}

// CalculateVelocity returns the spring velocity at elapsed time without
// recording it.
func (a *SpringAnimation) CalculateVelocity(elapsed time.Duration) float64 {
	if elapsed >= a.estimatedDuration {
		return 0
	}
	_, velocity := a.oscillate(elapsed)
	return velocity
}

// oscillate evaluates the closed-form damped harmonic oscillator at time t,
// returning position and velocity.
func (a *SpringAnimation) oscillate(t time.Duration) (float64, float64) {
	b := a.params.damping
	m := a.params.mass
	k := a.params.stiffness
	v0 := a.initialVelocity
	ts := t.Seconds()

	beta := b / (2 * m)
	omega0 := math.Sqrt(k / m)

	x0 := a.valueFrom - a.valueTo

	envelope := math.Exp(-beta * ts)

	switch {
	case math.Abs(beta-omega0) < dblEpsilon:
		// Critically damped.
		return a.valueTo + envelope*(x0+(beta*x0+v0)*ts),
			envelope * (v0 - beta*(beta*x0+v0)*ts)
	case omega0 > beta:
		// Underdamped: decaying oscillation around the target.
		omega1 := math.Sqrt(omega0*omega0 - beta*beta)
		return a.valueTo + envelope*(x0*math.Cos(omega1*ts)+((beta*x0+v0)/omega1)*math.Sin(omega1*ts)),
			envelope * (v0*math.Cos(omega1*ts) - (x0*omega1+(beta*beta*x0+beta*v0)/omega1)*math.Sin(omega1*ts))
	default:
		// Overdamped: monotonic decay toward the target.
		omega2 := math.Sqrt(beta*beta - omega0*omega0)
		return a.valueTo + envelope*(x0*math.Cosh(omega2*ts)+((beta*x0+v0)/omega2)*math.Sinh(omega2*ts)),
			envelope * (v0*math.Cosh(omega2*ts) + (omega2*x0-(beta*beta*x0+beta*v0)/omega2)*math.Sinh(omega2*ts))
	}
}

func (a *SpringAnimation) updateEstimatedDuration() {
	a.estimatedDuration = a.estimateDuration()
}

// estimateDuration solves for the time after which the oscillation stays
// within epsilon of the target.
func (a *SpringAnimation) estimateDuration() time.Duration {
	const op = "animation.SpringAnimation"

	beta := a.params.damping / (2 * a.params.mass)

	if beta <= 0 {
		return DurationInfinite
	}

	if a.latch {
		return a.estimateLatchDuration()
	}

	omega0 := math.Sqrt(a.params.stiffness / a.params.mass)

	// Solve the decay envelope e^(-beta*t) = epsilon. Once the envelope has
	// shrunk below epsilon, an oscillating spring must be within epsilon of
	// the target too.
	x0 := -math.Log(a.epsilon) / beta

	if beta <= omega0 {
		return secondsToDuration(x0)
	}

	// Overdamped springs approach slower than their envelope; refine with
	// Newton's method on the oscillation itself, using a finite-difference
	// slope.
	y0, _ := a.oscillate(secondsToDuration(x0))
	yd, _ := a.oscillate(secondsToDuration(x0 + slopeDelta))
	slope := (yd - y0) / slopeDelta

	x1 := (a.valueTo - y0 + slope*x0) / slope
	y1, _ := a.oscillate(secondsToDuration(x1))

	for i := 0; math.Abs(a.valueTo-y1) > a.epsilon; i++ {
		if i > maxNewtonIterations {
			errors.Reportf(op, errors.KindConvergence,
				"settle time estimation did not converge after %d iterations", maxNewtonIterations)
			return 0
		}
		x0 = x1
		y0 = y1

		yd, _ = a.oscillate(secondsToDuration(x0 + slopeDelta))
		slope = (yd - y0) / slopeDelta

		x1 = (a.valueTo - y0 + slope*x0) / slope
		y1, _ = a.oscillate(secondsToDuration(x1))
	}

	return secondsToDuration(x1)
}

// estimateLatchDuration scans for the first time the value comes within
// epsilon of the target from its approach side. Latched springs stop right
// there, so the envelope estimate does not apply. The scan starts at step 1
// to avoid finding the trivial zero of in-place springs.
func (a *SpringAnimation) estimateLatchDuration() time.Duration {
	if a.valueFrom == a.valueTo {
		return 0
	}

	for i := 1; i <= maxLatchIterations; i++ {
		t := time.Duration(i) * latchStep
		y, _ := a.oscillate(t)

		if a.valueTo > a.valueFrom && a.valueTo-y <= a.epsilon {
			return t
		}
		if a.valueTo < a.valueFrom && y-a.valueTo <= a.epsilon {
			return t
		}
	}

	errors.Reportf("animation.SpringAnimation", errors.KindConvergence,
		"latched spring did not reach its target within %d steps", maxLatchIterations)
	return 0
}

func secondsToDuration(s float64) time.Duration {
	if s >= float64(math.MaxInt64)/float64(time.Second) {
		return DurationInfinite
	}
	return time.Duration(s * float64(time.Second))
}

var _ Animator = (*SpringAnimation)(nil)
