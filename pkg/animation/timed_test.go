package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/animtest"
	"github.com/go-drift/adaptive/pkg/errors"
)

func TestTimedCalculateValue(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 10, 20, 100*time.Millisecond, discardTarget())
	anim.SetEasing(animation.Linear)

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 10},
		{25 * time.Millisecond, 12.5},
		{50 * time.Millisecond, 15},
		{100 * time.Millisecond, 20},
		{time.Hour, 20},
	}
	for _, tt := range tests {
		if got := anim.CalculateValue(tt.elapsed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CalculateValue(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestTimedZeroDuration(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 10, 20, 0, discardTarget())

	if got := anim.CalculateValue(0); got != 20 {
		t.Errorf("CalculateValue(0) = %v, want 20", got)
	}
	if got := anim.EstimateDuration(); got != 0 {
		t.Errorf("EstimateDuration = %v, want 0", got)
	}

	// Playing a zero-duration animation finishes on the first frame.
	anim.Play()
	host.Step(time.Millisecond)
	if got := anim.State(); got != animation.StateFinished {
		t.Errorf("state = %v, want finished", got)
	}
}

func TestTimedEstimateDuration(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, discardTarget())

	if got := anim.EstimateDuration(); got != 100*time.Millisecond {
		t.Errorf("EstimateDuration = %v, want 100ms", got)
	}

	anim.SetRepeatCount(3)
	if got := anim.EstimateDuration(); got != 300*time.Millisecond {
		t.Errorf("EstimateDuration with 3 repeats = %v, want 300ms", got)
	}

	anim.SetRepeatCount(0)
	if got := anim.EstimateDuration(); got != animation.DurationInfinite {
		t.Errorf("EstimateDuration with repeat forever = %v, want DurationInfinite", got)
	}
}

func TestTimedReverse(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, discardTarget())
	anim.SetEasing(animation.Linear)
	anim.SetReverse(true)

	if got := anim.CalculateValue(25 * time.Millisecond); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("CalculateValue(25ms) = %v, want 0.75", got)
	}
	// A reversed animation travels to ValueFrom and ends there.
	if got := anim.CalculateValue(100 * time.Millisecond); got != 0 {
		t.Errorf("CalculateValue(100ms) = %v, want 0", got)
	}
}

func TestTimedRepeat(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, discardTarget())
	anim.SetEasing(animation.Linear)
	anim.SetRepeatCount(2)

	// The second iteration restarts from ValueFrom.
	if got := anim.CalculateValue(125 * time.Millisecond); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("CalculateValue(125ms) = %v, want 0.25", got)
	}
	if got := anim.CalculateValue(200 * time.Millisecond); got != 1 {
		t.Errorf("CalculateValue(200ms) = %v, want 1", got)
	}
}

func TestTimedAlternate(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, discardTarget())
	anim.SetEasing(animation.Linear)
	anim.SetAlternate(true)
	anim.SetRepeatCount(2)

	// First iteration travels forward, second backward.
	if got := anim.CalculateValue(50 * time.Millisecond); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("CalculateValue(50ms) = %v, want 0.5", got)
	}
	if got := anim.CalculateValue(125 * time.Millisecond); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("CalculateValue(125ms) = %v, want 0.75", got)
	}
	// An even number of alternating iterations ends back at ValueFrom.
	if got := anim.CalculateValue(200 * time.Millisecond); got != 0 {
		t.Errorf("CalculateValue(200ms) = %v, want 0", got)
	}

	// An odd number ends at ValueTo.
	anim.SetRepeatCount(3)
	if got := anim.CalculateValue(300 * time.Millisecond); got != 1 {
		t.Errorf("CalculateValue(300ms) with 3 repeats = %v, want 1", got)
	}
}

func TestTimedAlternateReverse(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, discardTarget())
	anim.SetEasing(animation.Linear)
	anim.SetAlternate(true)
	anim.SetReverse(true)

	// Reversed alternation starts by travelling backward.
	if got := anim.CalculateValue(25 * time.Millisecond); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("CalculateValue(25ms) = %v, want 0.75", got)
	}
	if got := anim.CalculateValue(100 * time.Millisecond); got != 0 {
		t.Errorf("CalculateValue(100ms) = %v, want 0", got)
	}
}

func TestTimedEasingApplied(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 100, 100*time.Millisecond, discardTarget())
	anim.SetEasing(animation.EaseInQuad)

	if got := anim.CalculateValue(50 * time.Millisecond); math.Abs(got-25) > 1e-9 {
		t.Errorf("CalculateValue(50ms) = %v, want 25", got)
	}

	if got := anim.Easing(); got != animation.EaseInQuad {
		t.Errorf("Easing = %v, want ease-in-quad", got)
	}
}

func TestTimedDefaults(t *testing.T) {
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, discardTarget())

	if got := anim.Easing(); got != animation.EaseOutCubic {
		t.Errorf("default easing = %v, want ease-out-cubic", got)
	}
	if got := anim.RepeatCount(); got != 1 {
		t.Errorf("default repeat count = %d, want 1", got)
	}
	if anim.Reverse() {
		t.Error("default reverse = true, want false")
	}
	if anim.Alternate() {
		t.Error("default alternate = true, want false")
	}
	if got := anim.ValueFrom(); got != 0 {
		t.Errorf("ValueFrom = %v, want 0", got)
	}
	if got := anim.ValueTo(); got != 1 {
		t.Errorf("ValueTo = %v, want 1", got)
	}
	if got := anim.Duration(); got != 100*time.Millisecond {
		t.Errorf("Duration = %v, want 100ms", got)
	}
}

func TestTimedSetDurationValidation(t *testing.T) {
	diag := animtest.InstallDiagnostics(t)
	host := animtest.NewHost()
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, discardTarget())

	anim.SetDuration(-time.Second)
	if got := anim.Duration(); got != 100*time.Millisecond {
		t.Errorf("Duration after invalid set = %v, want 100ms", got)
	}
	if got := diag.Count(); got != 1 {
		t.Fatalf("diagnostics = %d, want 1", got)
	}
	if got := diag.Last().Kind; got != errors.KindArgument {
		t.Errorf("diagnostic kind = %v, want argument", got)
	}

	anim.SetDuration(250 * time.Millisecond)
	if got := anim.Duration(); got != 250*time.Millisecond {
		t.Errorf("Duration = %v, want 250ms", got)
	}
}
