package animtest

import (
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
)

// Host is a scripted [animation.Host]: its frame clock advances only when
// the test pumps frames, and mapped/enabled state is set directly. The
// zero of the frame clock is the host's creation.
type Host struct {
	now     time.Duration
	mapped  bool
	enabled bool

	ticks  map[int]func(time.Duration)
	unmaps map[int]func()
	nextID int

	frames int
}

// NewHost creates a mapped host with animations enabled.
func NewHost() *Host {
	return &Host{
		mapped:  true,
		enabled: true,
		ticks:   make(map[int]func(time.Duration)),
		unmaps:  make(map[int]func()),
	}
}

// FrameTime returns the scripted frame-clock time.
func (h *Host) FrameTime() time.Duration {
	return h.now
}

// AddTick subscribes a per-frame callback.
func (h *Host) AddTick(callback func(frameTime time.Duration)) (remove func()) {
	id := h.nextID
	h.nextID++
	h.ticks[id] = callback
	return func() {
		delete(h.ticks, id)
	}
}

// Mapped reports the scripted mapped state.
func (h *Host) Mapped() bool {
	return h.mapped
}

// AnimationsEnabled reports the scripted enabled state.
func (h *Host) AnimationsEnabled() bool {
	return h.enabled
}

// OnUnmap registers an unmap callback.
func (h *Host) OnUnmap(callback func()) (remove func()) {
	id := h.nextID
	h.nextID++
	h.unmaps[id] = callback
	return func() {
		delete(h.unmaps, id)
	}
}

// SetMapped changes the mapped state. Unmapping fires the registered unmap
// callbacks, skipping any playing animations.
func (h *Host) SetMapped(mapped bool) {
	if h.mapped == mapped {
		return
	}
	h.mapped = mapped
	if mapped {
		return
	}
	for _, callback := range h.snapshotUnmaps() {
		callback()
	}
}

// SetAnimationsEnabled changes the scripted enabled state.
func (h *Host) SetAnimationsEnabled(enabled bool) {
	h.enabled = enabled
}

// Step advances the frame clock by dt and delivers one frame to every
// subscribed callback.
func (h *Host) Step(dt time.Duration) {
	h.now += dt
	h.frames++
	for _, callback := range h.snapshotTicks() {
		callback(h.now)
	}
}

// Run pumps frames of dt until no tick subscriptions remain or limit
// frames have been delivered. Returns the number of frames pumped.
func (h *Host) Run(dt time.Duration, limit int) int {
	frames := 0
	for len(h.ticks) > 0 && frames < limit {
		h.Step(dt)
		frames++
	}
	return frames
}

// TickCount reports the number of active tick subscriptions.
func (h *Host) TickCount() int {
	return len(h.ticks)
}

// Frames reports the total number of frames delivered.
func (h *Host) Frames() int {
	return h.frames
}

// snapshotTicks copies the callbacks so subscriptions added or removed
// during delivery take effect next frame.
func (h *Host) snapshotTicks() []func(time.Duration) {
	callbacks := make([]func(time.Duration), 0, len(h.ticks))
	for _, callback := range h.ticks {
		callbacks = append(callbacks, callback)
	}
	return callbacks
}

func (h *Host) snapshotUnmaps() []func() {
	callbacks := make([]func(), 0, len(h.unmaps))
	for _, callback := range h.unmaps {
		callbacks = append(callbacks, callback)
	}
	return callbacks
}

var _ animation.Host = (*Host)(nil)
