package animation

import (
	"math"
	"time"

	"github.com/go-drift/adaptive/pkg/errors"
)

// TimedAnimation animates a value from ValueFrom to ValueTo over a fixed
// duration, shaped by an [Easing] function. It can repeat a number of
// times, run in reverse, and alternate direction on every repetition.
type TimedAnimation struct {
	Animation

	valueFrom float64
	valueTo   float64
	duration  time.Duration
	easing    Easing
	repeat    uint
	reverse   bool
	alternate bool
}

// NewTimedAnimation creates a timed animation on host from valueFrom to
// valueTo over duration, pushing values to target. The animation defaults
// to a single run eased with [EaseOutCubic].
func NewTimedAnimation(host Host, valueFrom, valueTo float64, duration time.Duration, target Target) *TimedAnimation {
	const op = "animation.NewTimedAnimation"
	if host == nil {
		errors.Reportf(op, errors.KindArgument, "host is nil")
		return nil
	}
	if duration < 0 {
		errors.Reportf(op, errors.KindArgument, "duration is negative: %v", duration)
		return nil
	}
	a := &TimedAnimation{
		valueFrom: valueFrom,
		valueTo:   valueTo,
		duration:  duration,
		easing:    EaseOutCubic,
		repeat:    1,
	}
	a.init(host, target, a)
	return a
}

// ValueFrom returns the value at the start of the curve.
func (a *TimedAnimation) ValueFrom() float64 {
	return a.valueFrom
}

// SetValueFrom sets the value at the start of the curve.
func (a *TimedAnimation) SetValueFrom(value float64) {
	a.valueFrom = value
}

// ValueTo returns the value at the end of the curve.
func (a *TimedAnimation) ValueTo() float64 {
	return a.valueTo
}

// SetValueTo sets the value at the end of the curve.
func (a *TimedAnimation) SetValueTo(value float64) {
	a.valueTo = value
}

// Duration returns the length of one iteration.
func (a *TimedAnimation) Duration() time.Duration {
	return a.duration
}

// SetDuration sets the length of one iteration. Negative durations are an
// argument error and are ignored.
func (a *TimedAnimation) SetDuration(duration time.Duration) {
	if duration < 0 {
		errors.Reportf("animation.TimedAnimation.SetDuration", errors.KindArgument,
			"duration is negative: %v", duration)
		return
	}
	a.duration = duration
}

// Easing returns the easing function.
func (a *TimedAnimation) Easing() Easing {
	return a.easing
}

// SetEasing sets the easing function.
func (a *TimedAnimation) SetEasing(easing Easing) {
	a.easing = easing
}

// RepeatCount returns the number of iterations, 0 meaning forever.
func (a *TimedAnimation) RepeatCount() uint {
	return a.repeat
}

// SetRepeatCount sets the number of iterations. 0 repeats forever.
func (a *TimedAnimation) SetRepeatCount(repeat uint) {
	a.repeat = repeat
}

// Reverse reports whether the animation plays backwards.
func (a *TimedAnimation) Reverse() bool {
	return a.reverse
}

// SetReverse sets whether the animation plays backwards.
func (a *TimedAnimation) SetReverse(reverse bool) {
	a.reverse = reverse
}

// Alternate reports whether the direction flips on each iteration.
func (a *TimedAnimation) Alternate() bool {
	return a.alternate
}

// SetAlternate sets whether the direction flips on each iteration.
func (a *TimedAnimation) SetAlternate(alternate bool) {
	a.alternate = alternate
}

// EstimateDuration returns the duration times the repeat count, or
// [DurationInfinite] when the animation repeats forever.
func (a *TimedAnimation) EstimateDuration() time.Duration {
	if a.repeat == 0 {
		return DurationInfinite
	}
	return a.duration * time.Duration(a.repeat)
}

// CalculateValue returns the eased value at elapsed time since the start.
func (a *TimedAnimation) CalculateValue(elapsed time.Duration) float64 {
	if a.duration <= 0 {
		return a.valueTo
	}

	iteration, progress := math.Modf(float64(elapsed) / float64(a.duration))

	reverse := a.alternate && int64(iteration)%2 != 0
	if a.reverse {
		reverse = !reverse
	}

	// Past the end, return the exact final value, which depends on the
	// direction of travel at that moment; the modf above already puts us on
	// the next iteration.
	if elapsed >= a.EstimateDuration() {
		if a.alternate == reverse {
			return a.valueTo
		}
		return a.valueFrom
	}

	if reverse {
		progress = 1 - progress
	}

	return Lerp(a.valueFrom, a.valueTo, a.easing.Ease(progress))
}

var _ Animator = (*TimedAnimation)(nil)
