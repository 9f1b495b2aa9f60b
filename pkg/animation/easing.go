package animation

import (
	"fmt"
	"math"

	"github.com/go-drift/adaptive/pkg/errors"
)

// Easing identifies a standard easing function for [TimedAnimation].
//
// Easing functions transform linear animation progress into natural-feeling
// motion. The In variants start slowly and accelerate, the Out variants
// start quickly and decelerate, and the InOut variants do both. The Elastic,
// Back, and Bounce families overshoot or oscillate around the endpoints.
//
// Easing values marshal to kebab-case names ("ease-out-cubic") for use in
// configuration files.
type Easing int

const (
	// Linear applies no easing.
	Linear Easing = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
)

var easingNames = [...]string{
	Linear:           "linear",
	EaseInQuad:       "ease-in-quad",
	EaseOutQuad:      "ease-out-quad",
	EaseInOutQuad:    "ease-in-out-quad",
	EaseInCubic:      "ease-in-cubic",
	EaseOutCubic:     "ease-out-cubic",
	EaseInOutCubic:   "ease-in-out-cubic",
	EaseInQuart:      "ease-in-quart",
	EaseOutQuart:     "ease-out-quart",
	EaseInOutQuart:   "ease-in-out-quart",
	EaseInQuint:      "ease-in-quint",
	EaseOutQuint:     "ease-out-quint",
	EaseInOutQuint:   "ease-in-out-quint",
	EaseInSine:       "ease-in-sine",
	EaseOutSine:      "ease-out-sine",
	EaseInOutSine:    "ease-in-out-sine",
	EaseInCirc:       "ease-in-circ",
	EaseOutCirc:      "ease-out-circ",
	EaseInOutCirc:    "ease-in-out-circ",
	EaseInExpo:       "ease-in-expo",
	EaseOutExpo:      "ease-out-expo",
	EaseInOutExpo:    "ease-in-out-expo",
	EaseInElastic:    "ease-in-elastic",
	EaseOutElastic:   "ease-out-elastic",
	EaseInOutElastic: "ease-in-out-elastic",
	EaseInBack:       "ease-in-back",
	EaseOutBack:      "ease-out-back",
	EaseInOutBack:    "ease-in-out-back",
	EaseInBounce:     "ease-in-bounce",
	EaseOutBounce:    "ease-out-bounce",
	EaseInOutBounce:  "ease-in-out-bounce",
}

// Easings returns all easing values in declaration order.
func Easings() []Easing {
	all := make([]Easing, len(easingNames))
	for i := range all {
		all[i] = Easing(i)
	}
	return all
}

// String returns the kebab-case name of the easing function.
func (e Easing) String() string {
	if e < 0 || int(e) >= len(easingNames) {
		return fmt.Sprintf("Easing(%d)", int(e))
	}
	return easingNames[e]
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	if e < 0 || int(e) >= len(easingNames) {
		return nil, fmt.Errorf("unknown easing value %d", int(e))
	}
	return []byte(easingNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseEasing returns the easing named by s, as produced by String.
func ParseEasing(s string) (Easing, error) {
	for i, name := range easingNames {
		if name == s {
			return Easing(i), nil
		}
	}
	return 0, fmt.Errorf("unknown easing %q", s)
}

// Ease applies the easing function to progress t. The canonical domain is
// [0, 1], with 0 mapping to 0 and 1 to 1; values outside the domain are
// extrapolated by the same formulas.
func (e Easing) Ease(t float64) float64 {
	switch e {
	case Linear:
		return t
	case EaseInQuad:
		return easeInQuad(t)
	case EaseOutQuad:
		return easeOutQuad(t)
	case EaseInOutQuad:
		return easeInOutQuad(t)
	case EaseInCubic:
		return easeInCubic(t)
	case EaseOutCubic:
		return easeOutCubic(t)
	case EaseInOutCubic:
		return easeInOutCubic(t)
	case EaseInQuart:
		return easeInQuart(t)
	case EaseOutQuart:
		return easeOutQuart(t)
	case EaseInOutQuart:
		return easeInOutQuart(t)
	case EaseInQuint:
		return easeInQuint(t)
	case EaseOutQuint:
		return easeOutQuint(t)
	case EaseInOutQuint:
		return easeInOutQuint(t)
	case EaseInSine:
		return easeInSine(t)
	case EaseOutSine:
		return easeOutSine(t)
	case EaseInOutSine:
		return easeInOutSine(t)
	case EaseInCirc:
		return easeInCirc(t)
	case EaseOutCirc:
		return easeOutCirc(t)
	case EaseInOutCirc:
		return easeInOutCirc(t)
	case EaseInExpo:
		return easeInExpo(t)
	case EaseOutExpo:
		return easeOutExpo(t)
	case EaseInOutExpo:
		return easeInOutExpo(t)
	case EaseInElastic:
		return easeInElastic(t)
	case EaseOutElastic:
		return easeOutElastic(t)
	case EaseInOutElastic:
		return easeInOutElastic(t)
	case EaseInBack:
		return easeInBack(t)
	case EaseOutBack:
		return easeOutBack(t)
	case EaseInOutBack:
		return easeInOutBack(t)
	case EaseInBounce:
		return easeInBounce(t)
	case EaseOutBounce:
		return easeOutBounce(t)
	case EaseInOutBounce:
		return easeInOutBounce(t)
	default:
		errors.Reportf("animation.Easing.Ease", errors.KindArgument,
			"unknown easing value %d", int(e))
		return t
	}
}

// Func returns the easing as a plain function, for use as a [Tween] curve.
func (e Easing) Func() func(float64) float64 {
	return e.Ease
}

func easeInQuad(t float64) float64 {
	return t * t
}

func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func easeInCubic(t float64) float64 {
	return t * t * t
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func easeInQuart(t float64) float64 {
	return t * t * t * t
}

func easeOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

func easeInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

func easeInQuint(t float64) float64 {
	return t * t * t * t * t
}

func easeOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

func easeInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

func easeInSine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func easeOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

func easeInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

func easeInCirc(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

func easeOutCirc(t float64) float64 {
	return math.Sqrt(1 - (t-1)*(t-1))
}

func easeInOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

func easeInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func easeOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func easeInOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func easeInElastic(t float64) float64 {
	const c4 = (2 * math.Pi) / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
}

func easeOutElastic(t float64) float64 {
	const c4 = (2 * math.Pi) / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

func easeInOutElastic(t float64) float64 {
	const c5 = (2 * math.Pi) / 4.5
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
	default:
		return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5))/2 + 1
	}
}

func easeInBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return c3*t*t*t - c1*t*t
}

func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

func easeInOutBack(t float64) float64 {
	const c1 = 1.70158
	const c2 = c1 * 1.525
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((c2+1)*2*t - c2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((c2+1)*(2*t-2)+c2) + 2) / 2
}

func easeInBounce(t float64) float64 {
	return 1 - easeOutBounce(1-t)
}

func easeOutBounce(t float64) float64 {
	switch {
	case t < 4.0/11.0:
		return (121 * t * t) / 16
	case t < 8.0/11.0:
		return (363.0/40)*t*t - (99.0/10)*t + 17.0/5
	case t < 9.0/10.0:
		return (4356.0/361)*t*t - (35442.0/1805)*t + 16061.0/1805
	default:
		return (54.0/5)*t*t - (513.0/25)*t + 268.0/25
	}
}

func easeInOutBounce(t float64) float64 {
	if t < 0.5 {
		return easeInBounce(t*2) * 0.5
	}
	return easeOutBounce(t*2-1)*0.5 + 0.5
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The parameters define the two control points (x1,y1) and
// (x2,y2) of the curve; the curve starts at (0,0) and ends at (1,1). Use it
// as a [Tween] curve when none of the standard [Easing] functions fit.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
