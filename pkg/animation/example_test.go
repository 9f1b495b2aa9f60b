package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/animtest"
)

// This example shows how to create and play a timed animation.
func ExampleTimedAnimation() {
	host := animtest.NewHost()
	target := animation.NewCallbackTarget(func(v float64) {
		fmt.Printf("value: %.2f\n", v)
	})

	slide := animation.NewTimedAnimation(host, 0, 100, 100*time.Millisecond, target)
	slide.SetEasing(animation.Linear)
	slide.Play()

	host.Step(25 * time.Millisecond)
	host.Step(25 * time.Millisecond)
	host.Run(25*time.Millisecond, 10)

	fmt.Println("state:", slide.State())
	// Output:
	// value: 25.00
	// value: 50.00
	// value: 75.00
	// value: 100.00
	// state: finished
}

// This example shows that pausing holds progress and resuming continues
// from the same spot.
func ExampleTimedAnimation_pauseAndResume() {
	host := animtest.NewHost()
	progress := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond,
		animation.NewCallbackTarget(func(float64) {}))
	progress.SetEasing(animation.Linear)

	progress.Play()
	host.Step(30 * time.Millisecond)
	fmt.Printf("%v %.1f\n", progress.State(), progress.Value())

	progress.Pause()
	host.Step(100 * time.Millisecond) // time passes, the animation holds
	fmt.Printf("%v %.1f\n", progress.State(), progress.Value())

	progress.Resume()
	host.Step(20 * time.Millisecond)
	fmt.Printf("%v %.1f\n", progress.State(), progress.Value())
	// Output:
	// playing 0.3
	// paused 0.3
	// playing 0.5
}

// This example shows how to animate a value with spring physics.
func ExampleSpringAnimation() {
	host := animtest.NewHost()
	target := animation.NewCallbackTarget(func(float64) {})

	// A critically damped spring approaches as fast as possible without
	// overshooting.
	params := animation.NewSpringParams(1.0, 1, 100)
	pop := animation.NewSpringAnimation(host, 0, 1, params, target)

	fmt.Printf("damping: %.0f\n", params.Damping())
	fmt.Printf("settles in: %v\n", pop.EstimateDuration().Round(time.Millisecond))

	pop.Play()
	host.Run(16*time.Millisecond, 100)
	fmt.Printf("value: %.0f, state: %v\n", pop.Value(), pop.State())
	// Output:
	// damping: 20
	// settles in: 691ms
	// value: 1, state: finished
}

// This example shows how to evaluate and parse easing functions.
func ExampleEasing() {
	fmt.Printf("%.2f\n", animation.EaseInQuad.Ease(0.5))
	fmt.Printf("%.2f\n", animation.EaseOutQuad.Ease(0.5))
	fmt.Println(animation.EaseInOutCubic)

	parsed, _ := animation.ParseEasing("ease-out-bounce")
	fmt.Println(parsed == animation.EaseOutBounce)
	// Output:
	// 0.25
	// 0.75
	// ease-in-out-cubic
	// true
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Create a custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	// The curve transforms linear progress to eased progress
	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}

// This example shows how to drive a named property of an object.
func ExamplePropertyTarget() {
	type Card struct {
		Opacity float64
	}

	card := &Card{}
	target := animation.NewPropertyTarget(card, "Opacity")
	target.SetValue(0.75)

	fmt.Println(card.Opacity)
	// Output:
	// 0.75
}

// This example shows how to create a custom tween with a Lerp function.
func ExampleTween_customType() {
	type Point struct {
		X, Y float64
	}

	pointTween := &animation.Tween[Point]{
		Begin: Point{0, 0},
		End:   Point{100, 200},
		Lerp: func(a, b Point, t float64) Point {
			return Point{
				X: a.X + (b.X-a.X)*t,
				Y: a.Y + (b.Y-a.Y)*t,
			}
		},
	}

	midpoint := pointTween.Evaluate(0.5)
	fmt.Printf("Midpoint: (%.0f, %.0f)\n", midpoint.X, midpoint.Y)

	// Output:
	// Midpoint: (50, 100)
}

// This example shows that disabling animations process-wide makes Play skip
// straight to the end value.
func ExampleSetEnabled() {
	prev := animation.SetEnabled(false)
	defer animation.SetEnabled(prev)

	host := animation.NewClockHost()
	fade := animation.NewTimedAnimation(host, 0, 1, 300*time.Millisecond,
		animation.NewCallbackTarget(func(float64) {}))
	fade.Play()

	fmt.Println(fade.State(), fade.Value())
	// Output:
	// finished 1
}
