package widgets

import (
	"math"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/errors"
	"github.com/go-drift/adaptive/pkg/geometry"
)

// defaultTransitionDuration is shared by the switching containers.
const defaultTransitionDuration = 200 * time.Millisecond

// SqueezerPage wraps a child added to a [Squeezer]. Disabled pages are
// ignored when the squeezer picks the child to show.
type SqueezerPage struct {
	squeezer *Squeezer
	child    Widget
	enabled  bool
}

// Child returns the wrapped widget.
func (p *SqueezerPage) Child() Widget {
	return p.child
}

// Enabled reports whether the page participates in child selection.
func (p *SqueezerPage) Enabled() bool {
	return p.enabled
}

// SetEnabled includes or excludes the page from child selection.
func (p *SqueezerPage) SetEnabled(enabled bool) {
	if p.enabled == enabled {
		return
	}
	p.enabled = enabled
	p.squeezer.MarkNeedsLayout()
}

// Squeezer shows exactly one of its children: the first enabled page whose
// natural size fits the allocated space. Pages are tried in the order they
// were added, so callers list the largest presentation first and fallbacks
// after it. When the selection changes the new child crossfades in over the
// old one, which stays mapped until the fade finishes.
type Squeezer struct {
	Base

	axis  geometry.Axis
	pages []*SqueezerPage

	visible  *SqueezerPage
	previous *SqueezerPage

	transition         *animation.TimedAnimation
	transitionDuration time.Duration
	transitionProgress float64
	interpolateSize    bool
}

var _ Widget = (*Squeezer)(nil)

// NewSqueezer creates a Squeezer that selects its child along axis.
func NewSqueezer(axis geometry.Axis) *Squeezer {
	return &Squeezer{
		axis:               axis,
		transitionDuration: defaultTransitionDuration,
		transitionProgress: 1,
	}
}

// Axis returns the axis the squeezer selects along.
func (s *Squeezer) Axis() geometry.Axis {
	return s.axis
}

// AddPage appends child as the squeezer's least preferred page so far and
// returns its page handle.
func (s *Squeezer) AddPage(child Widget) *SqueezerPage {
	if child == nil {
		errors.Reportf("widgets.Squeezer.AddPage", errors.KindArgument,
			"child is nil")
		return nil
	}
	page := &SqueezerPage{squeezer: s, child: child, enabled: true}
	s.pages = append(s.pages, page)
	s.MarkNeedsLayout()
	return page
}

// Pages returns the page handles in preference order.
func (s *Squeezer) Pages() []*SqueezerPage {
	return append([]*SqueezerPage(nil), s.pages...)
}

// VisibleChild returns the currently selected child, or nil before the
// first allocation.
func (s *Squeezer) VisibleChild() Widget {
	if s.visible == nil {
		return nil
	}
	return s.visible.child
}

// TransitionProgress returns the crossfade progress, 1 when no fade is
// running.
func (s *Squeezer) TransitionProgress() float64 {
	return s.transitionProgress
}

// TransitionDuration returns the crossfade duration.
func (s *Squeezer) TransitionDuration() time.Duration {
	return s.transitionDuration
}

// SetTransitionDuration changes the crossfade duration, applied to the
// next selection change. Negative durations are rejected.
func (s *Squeezer) SetTransitionDuration(duration time.Duration) {
	if duration < 0 {
		errors.Reportf("widgets.Squeezer.SetTransitionDuration", errors.KindArgument,
			"duration is negative: %v", duration)
		return
	}
	s.transitionDuration = duration
}

// InterpolateSize reports whether the squeezer's measured size follows the
// crossfade.
func (s *Squeezer) InterpolateSize() bool {
	return s.interpolateSize
}

// SetInterpolateSize makes the squeezer's measured size interpolate
// between the old and new child while a crossfade runs. Without it the
// squeezer always reserves room for its largest enabled child.
func (s *Squeezer) SetInterpolateSize(interpolate bool) {
	if s.interpolateSize == interpolate {
		return
	}
	s.interpolateSize = interpolate
	s.MarkNeedsLayout()
}

func (s *Squeezer) Measure(axis geometry.Axis, forSize float64) (min, nat float64) {
	if s.interpolateSize && s.visible != nil {
		visMin, visNat := s.visible.child.Measure(axis, forSize)
		if s.previous == nil {
			return visMin, visNat
		}
		prevMin, prevNat := s.previous.child.Measure(axis, forSize)
		t := s.transitionProgress
		return animation.Lerp(prevMin, visMin, t), animation.Lerp(prevNat, visNat, t)
	}
	if axis == s.axis {
		// The squeezer can shrink to its smallest enabled page, and at
		// its natural size shows the most preferred one.
		first := true
		for _, page := range s.pages {
			if !page.enabled {
				continue
			}
			childMin, childNat := page.child.Measure(axis, forSize)
			if first {
				min, nat = childMin, childNat
				first = false
				continue
			}
			min = math.Min(min, childMin)
			nat = math.Max(nat, childNat)
		}
		return min, nat
	}
	// Any enabled page may end up shown, so reserve room for the largest.
	for _, page := range s.pages {
		if !page.enabled {
			continue
		}
		childMin, childNat := page.child.Measure(axis, forSize)
		min = math.Max(min, childMin)
		nat = math.Max(nat, childNat)
	}
	return min, nat
}

func (s *Squeezer) Allocate(bounds geometry.Rect) {
	s.Base.Allocate(bounds)
	s.setVisible(s.bestFit(bounds.Size().Along(s.axis)))
	s.layoutChildren()
}

// bestFit returns the first enabled page whose natural size fits avail,
// falling back to the last enabled page when none does.
func (s *Squeezer) bestFit(avail float64) *SqueezerPage {
	var fallback *SqueezerPage
	for _, page := range s.pages {
		if !page.enabled {
			continue
		}
		_, nat := page.child.Measure(s.axis, -1)
		if nat <= avail {
			return page
		}
		fallback = page
	}
	return fallback
}

func (s *Squeezer) setVisible(page *SqueezerPage) {
	if page == s.visible {
		return
	}
	if s.previous != nil {
		// Land the running fade before starting the next one.
		s.transition.Skip()
	}
	s.previous = s.visible
	s.visible = page
	if page != nil && s.Mapped() {
		page.child.Map()
	}
	s.startFade()
}

func (s *Squeezer) startFade() {
	if s.previous == nil {
		s.transitionProgress = 1
		return
	}
	s.transitionProgress = 0
	if s.transition == nil {
		target := animation.NewCallbackTarget(func(value float64) {
			s.transitionProgress = value
			if s.interpolateSize {
				s.MarkNeedsLayout()
			}
			s.MarkNeedsPaint()
		})
		s.transition = animation.NewTimedAnimation(s, 0, 1, s.transitionDuration, target)
		s.transition.SetEasing(animation.EaseOutCubic)
		s.transition.AddDoneListener(s.finishFade)
	} else {
		s.transition.SetDuration(s.transitionDuration)
	}
	s.transition.Play()
}

func (s *Squeezer) finishFade() {
	if s.previous != nil {
		s.previous.child.Unmap()
		s.previous = nil
	}
	s.MarkNeedsLayout()
}

func (s *Squeezer) layoutChildren() {
	bounds := s.Bounds()
	if s.previous != nil {
		s.previous.child.Allocate(bounds)
	}
	if s.visible != nil {
		s.visible.child.Allocate(bounds)
	}
}

func (s *Squeezer) Map() {
	s.Base.Map()
	if s.visible != nil {
		s.visible.child.Map()
	}
}

func (s *Squeezer) Unmap() {
	// Unmapping fires the unmap listeners first, landing an in-flight
	// fade and unmapping the fading-out child with it.
	s.Base.Unmap()
	if s.visible != nil {
		s.visible.child.Unmap()
	}
}
