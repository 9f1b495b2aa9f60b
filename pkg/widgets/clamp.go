package widgets

import (
	"math"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/errors"
	"github.com/go-drift/adaptive/pkg/geometry"
)

// Clamp constrains a single child to a maximum size along one axis.
//
// While the available space stays at or below the tightening threshold the
// child receives all of it. Past the threshold the child keeps growing, but
// eased with [animation.EaseOutSine] so it approaches the maximum size with
// a horizontal tangent instead of stopping abruptly. The child is centered
// in whatever space is left over.
type Clamp struct {
	Base

	child Widget
	axis  geometry.Axis

	maximumSize         float64
	tighteningThreshold float64
}

var _ Widget = (*Clamp)(nil)

// NewClamp creates a Clamp for the given axis. maximumSize is the largest
// extent ever given to the child and tighteningThreshold is the extent at
// which the child stops receiving all available space.
func NewClamp(axis geometry.Axis, maximumSize, tighteningThreshold float64) *Clamp {
	c := &Clamp{axis: axis, maximumSize: 600, tighteningThreshold: 400}
	c.SetMaximumSize(maximumSize)
	c.SetTighteningThreshold(tighteningThreshold)
	return c
}

// Axis returns the constrained axis.
func (c *Clamp) Axis() geometry.Axis {
	return c.axis
}

// Child returns the current child, or nil.
func (c *Clamp) Child() Widget {
	return c.child
}

// SetChild replaces the child. A nil child empties the clamp.
func (c *Clamp) SetChild(child Widget) {
	if c.child == child {
		return
	}
	if c.child != nil {
		c.child.Unmap()
	}
	c.child = child
	if child != nil && c.Mapped() {
		child.Map()
	}
	c.MarkNeedsLayout()
}

// MaximumSize returns the maximum extent given to the child.
func (c *Clamp) MaximumSize() float64 {
	return c.maximumSize
}

// SetMaximumSize changes the maximum extent given to the child. Negative
// values are rejected.
func (c *Clamp) SetMaximumSize(size float64) {
	if size < 0 {
		errors.Reportf("widgets.Clamp.SetMaximumSize", errors.KindArgument,
			"maximum size must be >= 0, got %v", size)
		return
	}
	if c.maximumSize == size {
		return
	}
	c.maximumSize = size
	c.MarkNeedsLayout()
}

// TighteningThreshold returns the extent at which the child stops
// receiving all available space.
func (c *Clamp) TighteningThreshold() float64 {
	return c.tighteningThreshold
}

// SetTighteningThreshold changes the tightening threshold. Negative values
// are rejected.
func (c *Clamp) SetTighteningThreshold(threshold float64) {
	if threshold < 0 {
		errors.Reportf("widgets.Clamp.SetTighteningThreshold", errors.KindArgument,
			"tightening threshold must be >= 0, got %v", threshold)
		return
	}
	if c.tighteningThreshold == threshold {
		return
	}
	c.tighteningThreshold = threshold
	c.MarkNeedsLayout()
}

// childSize returns the extent given to the child along the clamped axis
// when forSize is available. A negative forSize asks for the preferred
// extent.
func (c *Clamp) childSize(childMin, childNat, forSize float64) float64 {
	max := c.maximumSize
	lower := clampFloat(c.tighteningThreshold, childMin, max)
	upper := lower + 2*(max-lower)

	switch {
	case forSize < 0:
		return math.Min(childNat, max)
	case forSize <= lower:
		return forSize
	case forSize >= upper:
		return max
	}
	progress := animation.InverseLerp(lower, upper, forSize)
	return animation.Lerp(lower, max, animation.EaseOutSine.Ease(progress))
}

func (c *Clamp) Measure(axis geometry.Axis, forSize float64) (min, nat float64) {
	if c.child == nil {
		return 0, 0
	}
	if axis == c.axis {
		childMin, childNat := c.child.Measure(axis, forSize)
		return childMin, math.Max(childMin, math.Min(childNat, c.maximumSize))
	}
	// The clamp is as large as its child on the unconstrained axis, so
	// measure the child at the extent it would actually receive.
	childMin, childNat := c.child.Measure(c.axis, -1)
	size := c.childSize(childMin, childNat, forSize)
	return c.child.Measure(axis, size)
}

func (c *Clamp) Allocate(bounds geometry.Rect) {
	c.Base.Allocate(bounds)
	if c.child == nil {
		return
	}
	avail := bounds.Size().Along(c.axis)
	childMin, childNat := c.child.Measure(c.axis, bounds.Size().Along(c.axis.Cross()))
	size := c.childSize(childMin, childNat, avail)
	offset := (avail - size) / 2

	var childBounds geometry.Rect
	if c.axis == geometry.Horizontal {
		childBounds = geometry.RectFromLTWH(bounds.Left+offset, bounds.Top, size, bounds.Height())
	} else {
		childBounds = geometry.RectFromLTWH(bounds.Left, bounds.Top+offset, bounds.Width(), size)
	}
	c.child.Allocate(childBounds)
}

func (c *Clamp) Map() {
	c.Base.Map()
	if c.child != nil {
		c.child.Map()
	}
}

func (c *Clamp) Unmap() {
	c.Base.Unmap()
	if c.child != nil {
		c.child.Unmap()
	}
}

func clampFloat(value, lower, upper float64) float64 {
	return math.Min(math.Max(value, lower), upper)
}
