package animation_test

import (
	"math"
	"testing"

	"github.com/go-drift/adaptive/pkg/animation"
)

func TestLerpFloat64(t *testing.T) {
	tests := []struct {
		start, end float64
		t          float64
		want       float64
	}{
		{0, 10, 0.5, 5},
		{10, 20, 0, 10},
		{10, 20, 1, 20},
		{10, 20, 1.5, 25},
		{10, 20, -0.5, 5},
		{20, 10, 0.25, 17.5},
	}
	for _, tt := range tests {
		if got := animation.Lerp(tt.start, tt.end, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.t, got, tt.want)
		}
	}
}

func TestLerpInteger(t *testing.T) {
	if got := animation.Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %d, want 5", got)
	}
	// Fractional results truncate toward zero on integer types.
	if got := animation.Lerp(0, 10, 0.55); got != 5 {
		t.Errorf("Lerp(0, 10, 0.55) = %d, want 5", got)
	}
	if got := animation.Lerp(int16(100), int16(200), 0.25); got != int16(125) {
		t.Errorf("Lerp(100, 200, 0.25) = %d, want 125", got)
	}
}

func TestInverseLerp(t *testing.T) {
	tests := []struct {
		start, end, value float64
		want              float64
	}{
		{10, 20, 15, 0.5},
		{10, 20, 10, 0},
		{10, 20, 20, 1},
		{10, 20, 25, 1.5},
		{20, 10, 15, 0.5},
		{5, 5, 123, 0},
	}
	for _, tt := range tests {
		if got := animation.InverseLerp(tt.start, tt.end, tt.value); got != tt.want {
			t.Errorf("InverseLerp(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.value, got, tt.want)
		}
	}
}

func TestLerpInverseLerpRoundTrip(t *testing.T) {
	start, end := 10.0, 20.0
	for _, value := range []float64{10, 13.7, 15, 19.999, 20} {
		got := animation.Lerp(start, end, animation.InverseLerp(start, end, value))
		if math.Abs(got-value) > 1e-12 {
			t.Errorf("round trip of %v = %v", value, got)
		}
	}
}

func TestTweenFloat64(t *testing.T) {
	tween := animation.TweenFloat64(0, 100)

	if got := tween.Evaluate(0); got != 0 {
		t.Errorf("Evaluate(0) = %v, want 0", got)
	}
	if got := tween.Evaluate(0.5); got != 50 {
		t.Errorf("Evaluate(0.5) = %v, want 50", got)
	}
	if got := tween.Evaluate(1); got != 100 {
		t.Errorf("Evaluate(1) = %v, want 100", got)
	}
}

func TestTweenCurve(t *testing.T) {
	tween := animation.TweenFloat64(0, 100)
	tween.Curve = animation.EaseInQuad.Func()

	if got := tween.Evaluate(0.5); got != 25 {
		t.Errorf("Evaluate(0.5) with ease-in-quad = %v, want 25", got)
	}

	tween.Curve = animation.CubicBezier(0.3, 0.3, 0.7, 0.7)
	if got := tween.Evaluate(0.5); math.Abs(got-50) > 1e-3 {
		t.Errorf("Evaluate(0.5) with identity bezier = %v, want 50", got)
	}
}

func TestTweenNilLerp(t *testing.T) {
	tween := animation.Tween[string]{Begin: "start", End: "end"}
	if got := tween.Evaluate(0.3); got != "end" {
		t.Errorf("Evaluate with nil Lerp = %q, want %q", got, "end")
	}
}

func TestTweenCustomType(t *testing.T) {
	type point struct{ X, Y float64 }

	tween := animation.Tween[point]{
		Begin: point{0, 0},
		End:   point{100, 200},
		Lerp: func(a, b point, t float64) point {
			return point{
				X: animation.Lerp(a.X, b.X, t),
				Y: animation.Lerp(a.Y, b.Y, t),
			}
		},
	}

	got := tween.Evaluate(0.5)
	if got.X != 50 || got.Y != 100 {
		t.Errorf("Evaluate(0.5) = %+v, want {50 100}", got)
	}
}
