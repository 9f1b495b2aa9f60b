package animation

import "golang.org/x/exp/constraints"

// Lerp linearly interpolates between start and end by t, with t=0 mapping
// to start and t=1 to end.
func Lerp[T constraints.Integer | constraints.Float](start, end T, t float64) T {
	return T(float64(start) + (float64(end)-float64(start))*t)
}

// InverseLerp returns where value sits between start and end as a fraction,
// the inverse of [Lerp]. Returns 0 when start equals end.
func InverseLerp(start, end, value float64) float64 {
	if start == end {
		return 0
	}
	return (value - start) / (end - start)
}

// Tween interpolates between Begin and End values based on animation
// progress.
//
// Tween maps the 0-1 value of a transition to any value range or type. Use
// [TweenFloat64] for the common case, or create custom tweens with a Lerp
// function. See ExampleTween_customType for usage patterns.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
	// Curve reshapes progress before interpolation (optional). Useful for
	// applying a [CubicBezier] or [Easing.Func] curve on top of an
	// animation that produces linear progress.
	Curve func(float64) float64
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Curve != nil {
		t = tw.Curve(t)
	}
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  Lerp[float64],
	}
}
