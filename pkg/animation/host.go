package animation

import (
	"sync"
	"time"
)

// Host is the surface an animation runs on. Widget trees implement Host to
// expose their frame clock and lifecycle; [ClockHost] is a standalone
// implementation for headless use.
//
// The host is what keeps a playing animation alive: the tick subscription
// taken through AddTick holds the animation's callback until the remove
// function runs. Dropping all application references to a playing animation
// therefore does not stop it; it finishes, and is released, when its curve
// ends or the host unmaps.
type Host interface {
	// FrameTime returns the current frame-clock time, a monotonic offset
	// from an arbitrary epoch. It only advances while the host produces
	// frames.
	FrameTime() time.Duration
	// AddTick subscribes a per-frame callback and returns its remove
	// function. The callback receives the frame time of each frame.
	AddTick(callback func(frameTime time.Duration)) (remove func())
	// Mapped reports whether the host is visible. Animations played on an
	// unmapped host skip directly to their end value.
	Mapped() bool
	// AnimationsEnabled reports whether the host permits animations.
	// Implementations honor the process-wide [Enabled] setting.
	AnimationsEnabled() bool
	// OnUnmap registers a callback for when the host becomes unmapped and
	// returns its remove function.
	OnUnmap(callback func()) (remove func())
}

var (
	enabledMu         sync.RWMutex
	animationsEnabled = true
)

// SetEnabled toggles animations process-wide and returns the previous
// setting. While disabled, playing any animation skips it immediately to
// its end value, so state changes land instantly instead of animating.
func SetEnabled(enabled bool) bool {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	prev := animationsEnabled
	animationsEnabled = enabled
	return prev
}

// Enabled reports whether animations are enabled process-wide.
func Enabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return animationsEnabled
}

// ClockHost is a Host driven by the package frame clock. It is mapped by
// default and its animations advance whenever [StepTickers] or [Drive]
// runs.
type ClockHost struct {
	mapped         bool
	unmapListeners map[int]func()
	nextListenerID int
}

// NewClockHost creates a mapped ClockHost.
func NewClockHost() *ClockHost {
	return &ClockHost{
		mapped:         true,
		unmapListeners: make(map[int]func()),
	}
}

// FrameTime returns the package frame-clock time.
func (h *ClockHost) FrameTime() time.Duration {
	return FrameTime()
}

// AddTick registers callback with the package ticker registry.
func (h *ClockHost) AddTick(callback func(frameTime time.Duration)) (remove func()) {
	t := NewTicker(callback)
	t.Start()
	return t.Stop
}

// Mapped reports whether the host is mapped.
func (h *ClockHost) Mapped() bool {
	return h.mapped
}

// AnimationsEnabled reports the process-wide setting.
func (h *ClockHost) AnimationsEnabled() bool {
	return Enabled()
}

// OnUnmap registers callback to run when the host is unmapped.
func (h *ClockHost) OnUnmap(callback func()) (remove func()) {
	id := h.nextListenerID
	h.nextListenerID++
	h.unmapListeners[id] = callback
	return func() {
		delete(h.unmapListeners, id)
	}
}

// SetMapped changes the host's mapped state. Unmapping fires the registered
// unmap callbacks, which skips any playing animations.
func (h *ClockHost) SetMapped(mapped bool) {
	if h.mapped == mapped {
		return
	}
	h.mapped = mapped
	if mapped {
		return
	}
	for _, listener := range h.unmapListeners {
		listener()
	}
}

var _ Host = (*ClockHost)(nil)
