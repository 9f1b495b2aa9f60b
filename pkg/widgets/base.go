package widgets

import (
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/geometry"
)

// Widget is the minimal layout contract the adaptive containers work with.
//
// Measure reports the widget's minimum and natural extent along axis, given
// the extent already decided for the other axis, or a negative forSize when
// that extent is not known yet. Allocate hands the widget its final bounds.
// Map and Unmap track whether the widget is shown; animations played on an
// unmapped widget jump straight to their end value.
type Widget interface {
	Measure(axis geometry.Axis, forSize float64) (min, nat float64)
	Allocate(bounds geometry.Rect)
	Map()
	Unmap()
	Mapped() bool
}

// Base carries the state every widget shares: bounds, mapped state, unmap
// listeners, and the relayout/repaint hooks. It also implements
// [animation.Host] on the package frame clock, so a widget embedding Base
// can host its own animations.
//
// The zero value is an unmapped widget with empty bounds.
type Base struct {
	bounds geometry.Rect
	mapped bool

	unmapListeners map[int]func()
	nextListenerID int

	// NeedsLayout and NeedsPaint are called by MarkNeedsLayout and
	// MarkNeedsPaint. Applications wire them to their frame scheduler;
	// both are optional.
	NeedsLayout func()
	NeedsPaint  func()
}

var _ animation.Host = (*Base)(nil)

// Bounds returns the most recently allocated bounds.
func (b *Base) Bounds() geometry.Rect {
	return b.bounds
}

// Allocate stores the widget's bounds. Containers override this to lay out
// their children and call it for the bookkeeping.
func (b *Base) Allocate(bounds geometry.Rect) {
	b.bounds = bounds
}

// Map marks the widget as shown.
func (b *Base) Map() {
	b.mapped = true
}

// Unmap marks the widget as hidden and fires the unmap listeners, which
// skips any animation hosted on this widget to its end value.
func (b *Base) Unmap() {
	if !b.mapped {
		return
	}
	b.mapped = false
	listeners := make([]func(), 0, len(b.unmapListeners))
	for _, fn := range b.unmapListeners {
		listeners = append(listeners, fn)
	}
	for _, fn := range listeners {
		fn()
	}
}

// Mapped reports whether the widget is shown.
func (b *Base) Mapped() bool {
	return b.mapped
}

// MarkNeedsLayout asks the embedding application to lay the widget out
// again before the next frame.
func (b *Base) MarkNeedsLayout() {
	if b.NeedsLayout != nil {
		b.NeedsLayout()
	}
}

// MarkNeedsPaint asks the embedding application to repaint the widget.
func (b *Base) MarkNeedsPaint() {
	if b.NeedsPaint != nil {
		b.NeedsPaint()
	}
}

// FrameTime returns the package frame-clock time.
func (b *Base) FrameTime() time.Duration {
	return animation.FrameTime()
}

// AddTick registers a per-frame callback with the package ticker registry.
func (b *Base) AddTick(callback func(frameTime time.Duration)) (remove func()) {
	ticker := animation.NewTicker(callback)
	ticker.Start()
	return ticker.Stop
}

// AnimationsEnabled reports the process-wide animation setting.
func (b *Base) AnimationsEnabled() bool {
	return animation.Enabled()
}

// OnUnmap registers callback to run when the widget is unmapped and
// returns its remove function.
func (b *Base) OnUnmap(callback func()) (remove func()) {
	if b.unmapListeners == nil {
		b.unmapListeners = make(map[int]func())
	}
	id := b.nextListenerID
	b.nextListenerID++
	b.unmapListeners[id] = callback
	return func() {
		delete(b.unmapListeners, id)
	}
}

// Fixed is a leaf widget with explicit minimum and natural sizes. It is
// handy as a spacer and as a stand-in child when exercising containers.
type Fixed struct {
	Base

	MinWidth  float64
	NatWidth  float64
	MinHeight float64
	NatHeight float64
}

var _ Widget = (*Fixed)(nil)

// NewFixed creates a Fixed whose minimum and natural sizes both equal
// width by height.
func NewFixed(width, height float64) *Fixed {
	return &Fixed{
		MinWidth:  width,
		NatWidth:  width,
		MinHeight: height,
		NatHeight: height,
	}
}

func (f *Fixed) Measure(axis geometry.Axis, forSize float64) (min, nat float64) {
	if axis == geometry.Horizontal {
		return f.MinWidth, f.NatWidth
	}
	return f.MinHeight, f.NatHeight
}
