package animation

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/adaptive/pkg/errors"
)

// State represents the lifecycle phase of an animation.
//
// The state follows this machine:
//
//	           Play()               Pause()
//	Idle ──────────────► Playing ◄─────────► Paused
//	  ▲                     │       Resume()
//	  │      Reset()        │ Skip(), end of curve
//	  └─────────────────────▼
//	                    Finished
//
// Play on a paused or finished animation restarts it from the beginning.
type State int

const (
	// StateIdle means the animation has not started or was reset.
	StateIdle State = iota
	// StatePlaying means the animation advances on each host frame.
	StatePlaying
	// StatePaused means the animation is suspended and keeps its progress.
	StatePaused
	// StateFinished means the animation reached its end value.
	StateFinished
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DurationInfinite marks an animation with no fixed end, such as a timed
// animation repeating forever or an undamped spring.
const DurationInfinite = time.Duration(math.MaxInt64)

// Driver computes the value curve of an animation. [TimedAnimation] and
// [SpringAnimation] embed [Animation] and act as its driver.
type Driver interface {
	// EstimateDuration returns how long the animation runs, or
	// [DurationInfinite] when it never settles on its own.
	EstimateDuration() time.Duration
	// CalculateValue returns the animation value at the given time since
	// the animation started.
	CalculateValue(elapsed time.Duration) float64
}

// Animator is the control surface shared by every animation kind.
type Animator interface {
	Driver
	Play()
	Pause()
	Resume()
	Skip()
	Reset()
	State() State
	Value() float64
	AddDoneListener(fn func()) (remove func())
}

// Animation is the state machine embedded by [TimedAnimation] and
// [SpringAnimation]. It owns the host subscription, the produced value, and
// the done notification, while the embedding type supplies the [Driver]
// math.
//
// Animations are not safe for concurrent use; drive them from the same
// goroutine that steps their host's frames.
type Animation struct {
	host   Host
	target Target
	driver Driver

	state      State
	value      float64
	startTime  time.Duration
	pausedTime time.Duration

	removeTick  func()
	removeUnmap func()

	doneListeners  map[int]func()
	nextListenerID int
}

// init wires the embedding driver into the base and evaluates the value at
// the start of the curve.
func (a *Animation) init(host Host, target Target, driver Driver) {
	a.host = host
	a.target = target
	a.driver = driver
	a.state = StateIdle
	a.doneListeners = make(map[int]func())
	a.value = driver.CalculateValue(0)
}

// Value returns the current animation value.
func (a *Animation) Value() float64 {
	return a.value
}

// State returns the current lifecycle state.
func (a *Animation) State() State {
	return a.state
}

// Target returns the target receiving produced values.
func (a *Animation) Target() Target {
	return a.target
}

// SetTarget replaces the target. The previous target is released and its
// cleanup, if any, runs.
func (a *Animation) SetTarget(target Target) {
	if target == a.target {
		return
	}
	a.releaseTarget()
	a.target = target
}

// AddDoneListener registers fn to run when the animation finishes, whether
// by reaching the end of its curve or by being skipped. Returns an
// unsubscribe function.
func (a *Animation) AddDoneListener(fn func()) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.doneListeners[id] = fn
	return func() {
		delete(a.doneListeners, id)
	}
}

// Play starts the animation. A paused or finished animation restarts from
// the beginning; an already playing animation is a usage error and the
// call is ignored.
//
// If the host is not mapped, or animations are disabled, the animation
// skips directly to its end value.
func (a *Animation) Play() {
	if a.state == StatePlaying {
		errors.Reportf("animation.Play", errors.KindUsage,
			"animation is already playing")
		return
	}
	if a.state != StateIdle {
		a.state = StateIdle
		a.startTime = 0
		a.pausedTime = 0
	}
	a.play()
}

// play starts or resumes ticking without resetting progress.
func (a *Animation) play() {
	a.state = StatePlaying

	if !a.host.Mapped() || !a.host.AnimationsEnabled() {
		a.Skip()
		return
	}

	a.startTime += a.host.FrameTime() - a.pausedTime

	if a.removeTick != nil {
		return
	}
	a.removeUnmap = a.host.OnUnmap(a.Skip)
	a.removeTick = a.host.AddTick(a.tick)
}

// Pause suspends a playing animation, keeping its progress. Pausing an
// animation that is not playing does nothing.
func (a *Animation) Pause() {
	if a.state != StatePlaying {
		return
	}
	a.state = StatePaused
	a.stop()
	a.pausedTime = a.host.FrameTime()
}

// Resume continues a paused animation from where it stopped. Resuming an
// animation that is not paused is a usage error and the call is ignored.
func (a *Animation) Resume() {
	if a.state != StatePaused {
		errors.Reportf("animation.Resume", errors.KindUsage,
			"state is %v, only paused animations can be resumed", a.state)
		return
	}
	a.play()
}

// Skip advances the animation directly to its end value and finishes it.
// The done listeners fire; skipping a finished animation does nothing.
func (a *Animation) Skip() {
	if a.state == StateFinished {
		return
	}
	a.state = StateFinished
	a.stop()
	a.setValue(a.driver.CalculateValue(a.driver.EstimateDuration()))
	a.startTime = 0
	a.pausedTime = 0
	a.notifyDone()
}

// Reset returns the animation to idle and its value to the start of the
// curve. Unlike [Animation.Skip], done listeners do not fire. Resetting an
// idle animation does nothing.
func (a *Animation) Reset() {
	if a.state == StateIdle {
		return
	}
	a.state = StateIdle
	a.stop()
	a.setValue(a.driver.CalculateValue(0))
	a.startTime = 0
	a.pausedTime = 0
}

// Dispose releases the animation's resources. A playing animation is
// skipped to its end value first; the target's cleanup runs exactly once.
func (a *Animation) Dispose() {
	if a.state == StatePlaying {
		a.Skip()
	}
	a.stop()
	a.releaseTarget()
	a.doneListeners = nil
}

func (a *Animation) tick(frameTime time.Duration) {
	elapsed := frameTime - a.startTime
	duration := a.driver.EstimateDuration()

	if duration != DurationInfinite && elapsed >= duration {
		a.Skip()
		return
	}
	a.setValue(a.driver.CalculateValue(elapsed))
}

// stop releases the tick subscription and the unmap hook.
func (a *Animation) stop() {
	if a.removeTick != nil {
		a.removeTick()
		a.removeTick = nil
	}
	if a.removeUnmap != nil {
		a.removeUnmap()
		a.removeUnmap = nil
	}
}

func (a *Animation) setValue(value float64) {
	a.value = value
	if a.target != nil {
		a.target.SetValue(value)
	}
}

func (a *Animation) notifyDone() {
	for _, listener := range a.doneListeners {
		listener()
	}
}

// disposable is implemented by targets carrying a cleanup function.
type disposable interface {
	dispose()
}

func (a *Animation) releaseTarget() {
	if d, ok := a.target.(disposable); ok {
		d.dispose()
	}
	a.target = nil
}
