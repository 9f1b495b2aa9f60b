package widgets

import (
	"math"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/errors"
	"github.com/go-drift/adaptive/pkg/geometry"
)

// PageTransition selects how a [PageStack] animates between pages.
type PageTransition int

const (
	// PageTransitionNone switches instantly.
	PageTransitionNone PageTransition = iota
	// PageTransitionCrossfade fades the new page in over the old one.
	PageTransitionCrossfade
	// PageTransitionSlide slides the new page in horizontally, from the
	// right when switching to a later page and from the left otherwise.
	PageTransitionSlide
)

func (t PageTransition) String() string {
	switch t {
	case PageTransitionNone:
		return "none"
	case PageTransitionCrossfade:
		return "crossfade"
	case PageTransitionSlide:
		return "slide"
	}
	return "unknown"
}

// StackPage is a named child of a [PageStack].
type StackPage struct {
	stack *PageStack
	name  string
	child Widget
}

// Name returns the page's unique name within its stack.
func (p *StackPage) Name() string {
	return p.name
}

// Child returns the wrapped widget.
func (p *StackPage) Child() Widget {
	return p.child
}

// PageStack shows one of several named pages at a time. Switching the
// visible page runs the configured [PageTransition]; the outgoing page
// stays mapped until the transition finishes. Switching while the stack is
// unmapped, or while animations are disabled process-wide, lands instantly.
type PageStack struct {
	Base

	pages  []*StackPage
	byName map[string]*StackPage

	visible      *StackPage
	previous     *StackPage
	slideForward bool

	transition         *animation.TimedAnimation
	transitionType     PageTransition
	transitionDuration time.Duration
	transitionProgress float64
	interpolateSize    bool
}

var _ Widget = (*PageStack)(nil)

// NewPageStack creates an empty PageStack with no transition animation
// configured.
func NewPageStack() *PageStack {
	return &PageStack{
		byName:             make(map[string]*StackPage),
		transitionDuration: defaultTransitionDuration,
		transitionProgress: 1,
	}
}

// AddNamed appends child under the given name and returns its page. The
// first page added becomes visible. Names must be unique and non-empty.
func (s *PageStack) AddNamed(child Widget, name string) *StackPage {
	if child == nil {
		errors.Reportf("widgets.PageStack.AddNamed", errors.KindArgument,
			"child is nil")
		return nil
	}
	if name == "" {
		errors.Reportf("widgets.PageStack.AddNamed", errors.KindArgument,
			"name is empty")
		return nil
	}
	if _, exists := s.byName[name]; exists {
		errors.Reportf("widgets.PageStack.AddNamed", errors.KindUsage,
			"page name %q is already in use", name)
		return nil
	}
	page := &StackPage{stack: s, name: name, child: child}
	s.pages = append(s.pages, page)
	s.byName[name] = page
	if s.visible == nil {
		s.visible = page
		if s.Mapped() {
			page.child.Map()
		}
	}
	s.MarkNeedsLayout()
	return page
}

// Page returns the page registered under name, or nil.
func (s *PageStack) Page(name string) *StackPage {
	return s.byName[name]
}

// Pages returns the pages in the order they were added.
func (s *PageStack) Pages() []*StackPage {
	return append([]*StackPage(nil), s.pages...)
}

// VisiblePage returns the page being shown, or nil for an empty stack.
func (s *PageStack) VisiblePage() *StackPage {
	return s.visible
}

// VisibleName returns the visible page's name, or "" for an empty stack.
func (s *PageStack) VisibleName() string {
	if s.visible == nil {
		return ""
	}
	return s.visible.name
}

// SetVisibleName switches to the page registered under name.
func (s *PageStack) SetVisibleName(name string) {
	page, ok := s.byName[name]
	if !ok {
		errors.Reportf("widgets.PageStack.SetVisibleName", errors.KindUsage,
			"no page named %q", name)
		return
	}
	s.setVisible(page)
}

// SetVisiblePage switches to the given page, which must belong to this
// stack.
func (s *PageStack) SetVisiblePage(page *StackPage) {
	if page == nil || page.stack != s {
		errors.Reportf("widgets.PageStack.SetVisiblePage", errors.KindUsage,
			"page does not belong to this stack")
		return
	}
	s.setVisible(page)
}

// TransitionType returns the configured transition.
func (s *PageStack) TransitionType() PageTransition {
	return s.transitionType
}

// SetTransitionType selects the transition used by the next switch.
func (s *PageStack) SetTransitionType(transition PageTransition) {
	s.transitionType = transition
}

// TransitionDuration returns the transition duration.
func (s *PageStack) TransitionDuration() time.Duration {
	return s.transitionDuration
}

// SetTransitionDuration changes the transition duration, applied to the
// next switch. Negative durations are rejected.
func (s *PageStack) SetTransitionDuration(duration time.Duration) {
	if duration < 0 {
		errors.Reportf("widgets.PageStack.SetTransitionDuration", errors.KindArgument,
			"duration is negative: %v", duration)
		return
	}
	s.transitionDuration = duration
}

// TransitionProgress returns the transition progress, 1 when no
// transition is running.
func (s *PageStack) TransitionProgress() float64 {
	return s.transitionProgress
}

// InterpolateSize reports whether the stack's measured size follows the
// transition.
func (s *PageStack) InterpolateSize() bool {
	return s.interpolateSize
}

// SetInterpolateSize makes the stack's measured size track the visible
// page, interpolating between the old and new page while a transition
// runs. Without it the stack always reserves room for its largest page.
func (s *PageStack) SetInterpolateSize(interpolate bool) {
	if s.interpolateSize == interpolate {
		return
	}
	s.interpolateSize = interpolate
	s.MarkNeedsLayout()
}

func (s *PageStack) setVisible(page *StackPage) {
	if page == s.visible {
		return
	}
	if s.previous != nil {
		// Land the running transition before starting the next one.
		s.transition.Skip()
	}
	from := s.visible
	s.previous = from
	s.visible = page
	s.slideForward = from == nil || s.indexOf(page) > s.indexOf(from)
	if s.Mapped() {
		page.child.Map()
	}
	s.startTransition()
}

func (s *PageStack) indexOf(page *StackPage) int {
	for i, p := range s.pages {
		if p == page {
			return i
		}
	}
	return -1
}

func (s *PageStack) startTransition() {
	if s.previous == nil {
		s.transitionProgress = 1
		s.layoutChildren()
		return
	}
	if s.transitionType == PageTransitionNone {
		s.transitionProgress = 1
		s.finishTransition()
		s.layoutChildren()
		return
	}
	s.transitionProgress = 0
	if s.transition == nil {
		target := animation.NewCallbackTarget(func(value float64) {
			s.transitionProgress = value
			s.layoutChildren()
			if s.interpolateSize {
				s.MarkNeedsLayout()
			}
			s.MarkNeedsPaint()
		})
		s.transition = animation.NewTimedAnimation(s, 0, 1, s.transitionDuration, target)
		s.transition.SetEasing(animation.EaseOutCubic)
		s.transition.AddDoneListener(s.finishTransition)
	} else {
		s.transition.SetDuration(s.transitionDuration)
	}
	s.transition.Play()
	s.layoutChildren()
}

func (s *PageStack) finishTransition() {
	if s.previous != nil {
		s.previous.child.Unmap()
		s.previous = nil
	}
	s.MarkNeedsLayout()
}

func (s *PageStack) Measure(axis geometry.Axis, forSize float64) (min, nat float64) {
	if s.interpolateSize {
		if s.visible == nil {
			return 0, 0
		}
		visMin, visNat := s.visible.child.Measure(axis, forSize)
		if s.previous == nil {
			return visMin, visNat
		}
		prevMin, prevNat := s.previous.child.Measure(axis, forSize)
		t := s.transitionProgress
		return animation.Lerp(prevMin, visMin, t), animation.Lerp(prevNat, visNat, t)
	}
	for _, page := range s.pages {
		childMin, childNat := page.child.Measure(axis, forSize)
		min = math.Max(min, childMin)
		nat = math.Max(nat, childNat)
	}
	return min, nat
}

func (s *PageStack) Allocate(bounds geometry.Rect) {
	s.Base.Allocate(bounds)
	s.layoutChildren()
}

func (s *PageStack) layoutChildren() {
	bounds := s.Bounds()
	if s.visible == nil {
		return
	}
	if s.previous != nil && s.transitionType == PageTransitionSlide {
		dir := 1.0
		if !s.slideForward {
			dir = -1
		}
		extent := bounds.Width()
		p := s.transitionProgress
		s.visible.child.Allocate(bounds.Translate(dir*extent*(1-p), 0))
		s.previous.child.Allocate(bounds.Translate(-dir*extent*p, 0))
		return
	}
	if s.previous != nil {
		s.previous.child.Allocate(bounds)
	}
	s.visible.child.Allocate(bounds)
}

func (s *PageStack) Map() {
	s.Base.Map()
	if s.visible != nil {
		s.visible.child.Map()
	}
}

func (s *PageStack) Unmap() {
	// Unmapping fires the unmap listeners first, landing an in-flight
	// transition and unmapping the outgoing page with it.
	s.Base.Unmap()
	if s.visible != nil {
		s.visible.child.Unmap()
	}
}
