package widgets

import (
	"math"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/errors"
	"github.com/go-drift/adaptive/pkg/geometry"
)

// Carousel arranges equally sized pages side by side along one axis and
// scrolls between them with a spring. The scroll position is measured in
// pages, so position 1.5 shows the second and third page half each.
//
// All pages stay mapped while the carousel is mapped, since neighbouring
// pages are partially visible mid-scroll.
type Carousel struct {
	Base

	axis  geometry.Axis
	pages []Widget

	position       float64
	spring         *animation.SpringAnimation
	params         *animation.SpringParams
	allowOvershoot bool
}

var _ Widget = (*Carousel)(nil)

// NewCarousel creates an empty Carousel scrolling along axis. The default
// spring is critically damped and latched, so scrolls settle on their page
// without overshooting it.
func NewCarousel(axis geometry.Axis) *Carousel {
	return &Carousel{
		axis:   axis,
		params: animation.NewSpringParams(1, 0.5, 500),
	}
}

// Axis returns the scroll axis.
func (c *Carousel) Axis() geometry.Axis {
	return c.axis
}

// Append adds child as the carousel's last page.
func (c *Carousel) Append(child Widget) {
	if child == nil {
		errors.Reportf("widgets.Carousel.Append", errors.KindArgument,
			"child is nil")
		return
	}
	c.pages = append(c.pages, child)
	if c.Mapped() {
		child.Map()
	}
	c.MarkNeedsLayout()
}

// Pages returns the pages in order.
func (c *Carousel) Pages() []Widget {
	return append([]Widget(nil), c.pages...)
}

// NPages returns the number of pages.
func (c *Carousel) NPages() int {
	return len(c.pages)
}

// Position returns the scroll position in pages.
func (c *Carousel) Position() float64 {
	return c.position
}

// Page returns the index of the page nearest the scroll position.
func (c *Carousel) Page() int {
	if len(c.pages) == 0 {
		return 0
	}
	page := int(math.Round(c.position))
	if page < 0 {
		page = 0
	}
	if page >= len(c.pages) {
		page = len(c.pages) - 1
	}
	return page
}

// SpringParams returns the spring driving scrolls.
func (c *Carousel) SpringParams() *animation.SpringParams {
	return c.params
}

// SetSpringParams replaces the spring driving scrolls. Nil params are
// rejected.
func (c *Carousel) SetSpringParams(params *animation.SpringParams) {
	if params == nil {
		errors.Reportf("widgets.Carousel.SetSpringParams", errors.KindArgument,
			"spring params are nil")
		return
	}
	c.params = params
	if c.spring != nil {
		c.spring.SetSpringParams(params)
	}
}

// AllowOvershoot reports whether scrolls may overshoot their target page.
func (c *Carousel) AllowOvershoot() bool {
	return c.allowOvershoot
}

// SetAllowOvershoot lets scrolls swing past their target page before
// settling. Off by default: the scroll spring latches in place the moment
// it reaches the page.
func (c *Carousel) SetAllowOvershoot(allow bool) {
	if c.allowOvershoot == allow {
		return
	}
	c.allowOvershoot = allow
	if c.spring != nil {
		c.spring.SetLatch(!allow)
	}
}

// ScrollTo starts a spring-driven scroll to the given page, clamped to the
// valid range. velocity is the scroll's initial velocity in pages per
// second; pass 0 to inherit the in-flight velocity when re-targeting a
// running scroll.
func (c *Carousel) ScrollTo(page int, velocity float64) {
	if len(c.pages) == 0 {
		errors.Reportf("widgets.Carousel.ScrollTo", errors.KindUsage,
			"carousel has no pages")
		return
	}
	if page < 0 {
		page = 0
	}
	if page >= len(c.pages) {
		page = len(c.pages) - 1
	}
	target := float64(page)

	if c.spring == nil {
		c.spring = animation.NewSpringAnimation(c, c.position, target, c.params,
			animation.NewCallbackTarget(c.setPosition))
		c.spring.SetLatch(!c.allowOvershoot)
		c.spring.SetInitialVelocity(velocity)
		c.spring.Play()
		return
	}
	if c.spring.State() == animation.StatePlaying {
		// Hand the in-flight velocity to the new scroll so re-targeting
		// keeps the momentum.
		if velocity == 0 {
			velocity = c.spring.Velocity()
		}
		c.spring.Pause()
	}
	c.spring.SetValueFrom(c.position)
	c.spring.SetValueTo(target)
	c.spring.SetInitialVelocity(velocity)
	c.spring.Play()
}

func (c *Carousel) setPosition(value float64) {
	c.position = value
	c.layoutPages()
	c.MarkNeedsPaint()
}

func (c *Carousel) Measure(axis geometry.Axis, forSize float64) (min, nat float64) {
	// Every page receives the carousel's full bounds, so reserve room for
	// the largest.
	for _, page := range c.pages {
		childMin, childNat := page.Measure(axis, forSize)
		min = math.Max(min, childMin)
		nat = math.Max(nat, childNat)
	}
	return min, nat
}

func (c *Carousel) Allocate(bounds geometry.Rect) {
	c.Base.Allocate(bounds)
	c.layoutPages()
}

func (c *Carousel) layoutPages() {
	bounds := c.Bounds()
	if bounds.IsEmpty() {
		return
	}
	extent := bounds.Size().Along(c.axis)
	for i, page := range c.pages {
		offset := (float64(i) - c.position) * extent
		if c.axis == geometry.Horizontal {
			page.Allocate(bounds.Translate(offset, 0))
		} else {
			page.Allocate(bounds.Translate(0, offset))
		}
	}
}

func (c *Carousel) Map() {
	c.Base.Map()
	for _, page := range c.pages {
		page.Map()
	}
}

func (c *Carousel) Unmap() {
	// Unmapping fires the unmap listeners first, landing an in-flight
	// scroll on its page.
	c.Base.Unmap()
	for _, page := range c.pages {
		page.Unmap()
	}
}
