package cmd

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "spring",
		Short: "Analyze spring animation parameters",
		Long: `Analyze a set of spring parameters without running an animation.

Prints the damping regime, the damping ratio, the estimated settle time,
and a trace of the value and velocity over the animation's run.

The spring is described either by a damping ratio (the fraction of
critical damping, the common case) or by an absolute damping value:

  adaptive spring --damping-ratio 0.5 --stiffness 200
  adaptive spring --damping 25 --mass 2 --stiffness 300

With --latch the spring stops at its first arrival at the target instead
of oscillating around it, which shortens the settle time of underdamped
parameters considerably.`,
		Usage: "adaptive spring [--mass M] [--stiffness K] [--damping-ratio R | --damping B] [--epsilon E] [--latch] [--from A] [--to B] [--velocity V] [--trace N]",
		Run:   runSpring,
	})
}

func runSpring(args []string) error {
	fs := flag.NewFlagSet("spring", flag.ContinueOnError)
	mass := fs.Float64("mass", 1, "oscillator mass")
	stiffness := fs.Float64("stiffness", 100, "spring constant")
	damping := fs.Float64("damping", 0, "absolute damping; 0 derives it from --damping-ratio")
	ratio := fs.Float64("damping-ratio", 1, "damping as a fraction of critical damping")
	epsilon := fs.Float64("epsilon", 0.001, "settle tolerance")
	latch := fs.Bool("latch", false, "stop at the first arrival at the target")
	from := fs.Float64("from", 0, "start value")
	to := fs.Float64("to", 1, "target value")
	velocity := fs.Float64("velocity", 0, "initial velocity in value units per second")
	rows := fs.Int("trace", 11, "rows in the value trace")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case !(*mass > 0):
		return fmt.Errorf("mass must be > 0, got %v", *mass)
	case !(*stiffness > 0):
		return fmt.Errorf("stiffness must be > 0, got %v", *stiffness)
	case *damping < 0:
		return fmt.Errorf("damping must be >= 0, got %v", *damping)
	case *ratio < 0:
		return fmt.Errorf("damping-ratio must be >= 0, got %v", *ratio)
	case !(*epsilon > 0):
		return fmt.Errorf("epsilon must be > 0, got %v", *epsilon)
	case *rows < 2:
		return fmt.Errorf("trace needs at least 2 rows, got %d", *rows)
	}

	var params *animation.SpringParams
	if *damping > 0 {
		params = animation.NewSpringParamsFull(*damping, *mass, *stiffness)
	} else {
		params = animation.NewSpringParams(*ratio, *mass, *stiffness)
	}

	anim := animation.NewSpringAnimation(animation.NewClockHost(), *from, *to, params, nil)
	anim.SetEpsilon(*epsilon)
	anim.SetLatch(*latch)
	anim.SetInitialVelocity(*velocity)

	dr := params.DampingRatio()
	fmt.Printf("mass       %v\n", params.Mass())
	fmt.Printf("stiffness  %v\n", params.Stiffness())
	fmt.Printf("damping    %.6g (ratio %.6g, %s)\n", params.Damping(), dr, regime(dr))
	fmt.Printf("travel     %v -> %v at %v/s\n", *from, *to, *velocity)

	duration := anim.EstimateDuration()
	if duration == animation.DurationInfinite {
		fmt.Println("settles    never (undamped)")
	} else if *latch {
		fmt.Printf("settles    %v (latched)\n", duration.Round(time.Millisecond))
	} else {
		fmt.Printf("settles    %v (within %v of target)\n", duration.Round(time.Millisecond), *epsilon)
	}

	// An undamped spring never settles; trace one full oscillation instead.
	window := duration
	if window == animation.DurationInfinite {
		period := 2 * math.Pi * math.Sqrt(*mass / *stiffness)
		window = time.Duration(period * float64(time.Second))
	}

	fmt.Println()
	fmt.Printf("%12s %12s %12s\n", "TIME", "VALUE", "VELOCITY")
	for i := 0; i < *rows; i++ {
		t := time.Duration(float64(window) * float64(i) / float64(*rows-1))
		value := anim.CalculateValue(t)
		vel := anim.CalculateVelocity(t)
		fmt.Printf("%12v %12.5f %12.5f\n", t.Round(100*time.Microsecond), value, vel)
	}
	return nil
}

// regime names the damping regime for a damping ratio.
func regime(ratio float64) string {
	switch {
	case ratio == 0:
		return "undamped"
	case math.Abs(ratio-1) < 1e-9:
		return "critically damped"
	case ratio < 1:
		return "underdamped"
	default:
		return "overdamped"
	}
}
