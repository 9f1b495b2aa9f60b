// Package animation provides a retained animation engine: state-machine
// animations driven frame by frame on a [Host], with interchangeable timed
// and spring drivers producing values that are pushed to a [Target].
//
// # Core Components
//
// The animation system consists of several key components:
//
//   - [TimedAnimation]: eased transitions from one value to another over a
//     fixed duration, with optional repetition, reversal, and alternation,
//     shaped by an [Easing] function.
//
//   - [SpringAnimation]: physics-based motion toward a target value using a
//     damped harmonic oscillator described by [SpringParams], with initial
//     velocity and an analytically estimated settle time.
//
//   - [Target]: receives each produced value. [CallbackTarget] invokes a
//     function; [PropertyTarget] writes a named property of an object.
//
//   - [Host]: the surface an animation runs on. A widget tree implements
//     Host to expose its frame clock and lifecycle; [ClockHost] is a
//     standalone implementation driven by this package's frame clock.
//
// # Basic Usage
//
// Create an animation on a host, point it at a target, and play it:
//
//	target := animation.NewCallbackTarget(func(v float64) {
//	    box.SetOpacity(v)
//	})
//	fade := animation.NewTimedAnimation(host, 0, 1, 200*time.Millisecond, target)
//	fade.SetEasing(animation.EaseInOutCubic)
//	fade.AddDoneListener(func() {
//	    box.SetVisible(true)
//	})
//	fade.Play()
//
// A playing animation holds a tick subscription on its host and advances
// whenever the host produces a frame. Pausing, finishing, or resetting the
// animation releases the subscription. Playing an animation whose host is
// not mapped, or while animations are disabled process-wide via
// [SetEnabled], skips it directly to its end value.
//
// # Frames
//
// The embedding application drives all hosts from its frame loop by calling
// [StepTickers] once per frame, or by running [Drive] on a background
// context. Tests usually bypass the frame loop entirely and pump a scripted
// host instead.
package animation

import (
	"context"
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
	frameEpoch    time.Time
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive behind [ClockHost] and the
// widget hosts; animations subscribe through [Host.AddTick] rather than
// using Ticker directly.
//
// The callback receives the current frame-clock time as reported by
// [FrameTime]. Tickers are driven by the application's frame loop via
// [StepTickers].
type Ticker struct {
	callback func(frameTime time.Duration)
	isActive bool
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(frameTime time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// FrameTime returns the current frame-clock time: a monotonic offset from
// an epoch captured when the frame clock is first queried. SetClock
// re-bases the epoch.
func FrameTime() time.Duration {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return frameTimeLocked()
}

func frameTimeLocked() time.Duration {
	now := Now()
	if frameEpoch.IsZero() {
		frameEpoch = now
	}
	return now.Sub(frameEpoch)
}

func resetFrameEpoch() {
	tickerMu.Lock()
	frameEpoch = time.Time{}
	tickerMu.Unlock()
}

// StepTickers advances all active tickers with the current frame time.
// This should be called once per frame by the embedding application.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	frameTime := frameTimeLocked()
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(frameTime)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// Drive runs a frame loop, stepping all active tickers at the given
// interval until ctx is done. A non-positive interval defaults to 16ms.
func Drive(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	frames := time.NewTicker(interval)
	defer frames.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-frames.C:
			StepTickers()
		}
	}
}
