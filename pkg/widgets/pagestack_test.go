package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/animtest"
	"github.com/go-drift/adaptive/pkg/errors"
	"github.com/go-drift/adaptive/pkg/geometry"
	"github.com/go-drift/adaptive/pkg/widgets"
)

func newTestStack() (*widgets.PageStack, []*widgets.Fixed) {
	stack := widgets.NewPageStack()
	children := []*widgets.Fixed{
		widgets.NewFixed(300, 60),
		widgets.NewFixed(150, 20),
		widgets.NewFixed(100, 40),
	}
	stack.AddNamed(children[0], "a")
	stack.AddNamed(children[1], "b")
	stack.AddNamed(children[2], "c")
	return stack, children
}

func TestPageStackFirstPageVisible(t *testing.T) {
	stack, children := newTestStack()

	if stack.VisibleName() != "a" {
		t.Fatalf("expected the first page visible, got %q", stack.VisibleName())
	}
	if stack.VisiblePage().Child() != children[0] {
		t.Error("visible page should wrap the first child")
	}
	if page := stack.Page("b"); page == nil || page.Child() != children[1] {
		t.Error("expected to look pages up by name")
	}
	if stack.Page("missing") != nil {
		t.Error("expected nil for an unknown name")
	}
	names := []string{}
	for _, page := range stack.Pages() {
		names = append(names, page.Name())
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("expected pages in insertion order, got %v", names)
	}
}

func TestPageStackAddNamedValidation(t *testing.T) {
	diag := animtest.InstallDiagnostics(t)
	stack, _ := newTestStack()

	if stack.AddNamed(nil, "d") != nil {
		t.Error("expected nil page for nil child")
	}
	if stack.AddNamed(widgets.NewFixed(1, 1), "") != nil {
		t.Error("expected nil page for empty name")
	}
	if stack.AddNamed(widgets.NewFixed(1, 1), "a") != nil {
		t.Error("expected nil page for duplicate name")
	}

	kinds := diag.Kinds()
	if len(kinds) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(kinds))
	}
	if kinds[0] != errors.KindArgument || kinds[1] != errors.KindArgument || kinds[2] != errors.KindUsage {
		t.Errorf("unexpected diagnostic kinds %v", kinds)
	}
}

func TestPageStackSwitchInstantWithoutTransition(t *testing.T) {
	stack, children := newTestStack()
	stack.Map()
	stack.Allocate(geometry.RectFromLTWH(0, 0, 400, 100))

	stack.SetVisibleName("b")
	if stack.VisibleName() != "b" {
		t.Fatalf("expected page b visible, got %q", stack.VisibleName())
	}
	if children[0].Mapped() {
		t.Error("previous page should be unmapped immediately")
	}
	if !children[1].Mapped() {
		t.Error("new page should be mapped")
	}
	if stack.TransitionProgress() != 1 {
		t.Errorf("expected progress 1, got %v", stack.TransitionProgress())
	}
	if animation.HasActiveTickers() {
		t.Error("expected no animation for PageTransitionNone")
	}
}

func TestPageStackUnknownNameRejected(t *testing.T) {
	diag := animtest.InstallDiagnostics(t)
	stack, _ := newTestStack()

	stack.SetVisibleName("nope")
	if stack.VisibleName() != "a" {
		t.Errorf("visible page changed to %q", stack.VisibleName())
	}
	if diag.Count() != 1 || diag.Last().Kind != errors.KindUsage {
		t.Fatalf("expected a usage diagnostic, got %d", diag.Count())
	}
}

func TestPageStackSetVisiblePageWrongStack(t *testing.T) {
	diag := animtest.InstallDiagnostics(t)
	stack, _ := newTestStack()
	other := widgets.NewPageStack()
	page := other.AddNamed(widgets.NewFixed(1, 1), "x")

	stack.SetVisiblePage(page)
	if stack.VisibleName() != "a" {
		t.Errorf("visible page changed to %q", stack.VisibleName())
	}
	stack.SetVisiblePage(nil)
	if diag.Count() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", diag.Count())
	}
	for _, kind := range diag.Kinds() {
		if kind != errors.KindUsage {
			t.Errorf("expected usage diagnostics, got %v", kind)
		}
	}
}

func TestPageStackCrossfade(t *testing.T) {
	clock := animtest.InstallClock(t)
	diag := animtest.InstallDiagnostics(t)

	stack, children := newTestStack()
	stack.SetTransitionType(widgets.PageTransitionCrossfade)
	stack.Map()
	stack.Allocate(geometry.RectFromLTWH(0, 0, 400, 100))

	stack.SetVisiblePage(stack.Page("b"))
	if !children[0].Mapped() || !children[1].Mapped() {
		t.Fatal("both pages should be mapped during the crossfade")
	}
	if stack.TransitionProgress() != 0 {
		t.Fatalf("crossfade should start at 0, got %v", stack.TransitionProgress())
	}

	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	if got := stack.TransitionProgress(); got != 0.875 {
		t.Errorf("expected progress 0.875 mid-fade, got %v", got)
	}

	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	if got := stack.TransitionProgress(); got != 1 {
		t.Errorf("expected progress 1 after the fade, got %v", got)
	}
	if children[0].Mapped() {
		t.Error("outgoing page should be unmapped after the fade")
	}
	if animation.HasActiveTickers() {
		t.Error("expected no active tickers after the fade")
	}
	if diag.Count() != 0 {
		t.Errorf("unexpected diagnostics: %d", diag.Count())
	}
}

func TestPageStackSlideAllocations(t *testing.T) {
	clock := animtest.InstallClock(t)

	stack, children := newTestStack()
	stack.SetTransitionType(widgets.PageTransitionSlide)
	stack.Map()
	bounds := geometry.RectFromLTWH(0, 0, 400, 100)
	stack.Allocate(bounds)

	// Forward switch: the new page slides in from the right.
	stack.SetVisibleName("b")
	if got := children[1].Bounds().Left; got != 400 {
		t.Fatalf("new page should start offscreen right, left %v", got)
	}
	if got := children[0].Bounds().Left; got != 0 {
		t.Fatalf("old page should start in place, left %v", got)
	}

	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	// progress 0.875: new page at 400*0.125 = 50, old at -400*0.875 = -350.
	if got := children[1].Bounds().Left; got != 50 {
		t.Errorf("expected new page at 50 mid-slide, got %v", got)
	}
	if got := children[0].Bounds().Left; got != -350 {
		t.Errorf("expected old page at -350 mid-slide, got %v", got)
	}

	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	if got := children[1].Bounds(); got != bounds {
		t.Errorf("expected the new page settled at %+v, got %+v", bounds, got)
	}
	if children[0].Mapped() {
		t.Error("outgoing page should be unmapped after the slide")
	}

	// Backward switch: the new page slides in from the left.
	stack.SetVisibleName("a")
	if got := children[0].Bounds().Left; got != -400 {
		t.Fatalf("new page should start offscreen left, left %v", got)
	}
	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	if got := children[0].Bounds().Left; got != -50 {
		t.Errorf("expected new page at -50 mid-slide, got %v", got)
	}
	if got := children[1].Bounds().Left; got != 350 {
		t.Errorf("expected old page at 350 mid-slide, got %v", got)
	}
	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	if animation.HasActiveTickers() {
		t.Error("expected no active tickers after the slide")
	}
}

func TestPageStackInterpolateSize(t *testing.T) {
	clock := animtest.InstallClock(t)

	stack, _ := newTestStack()
	stack.SetTransitionType(widgets.PageTransitionCrossfade)
	stack.SetInterpolateSize(true)
	stack.Map()
	stack.Allocate(geometry.RectFromLTWH(0, 0, 400, 100))

	// Idle: tracks the visible page, not the largest one.
	if _, nat := stack.Measure(geometry.Horizontal, -1); nat != 300 {
		t.Fatalf("expected natural width 300, got %v", nat)
	}

	stack.SetVisibleName("b")
	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	// lerp(300, 150, 0.875) = 168.75 and lerp(60, 20, 0.875) = 25.
	if _, nat := stack.Measure(geometry.Horizontal, -1); nat != 168.75 {
		t.Errorf("expected natural width 168.75 mid-fade, got %v", nat)
	}
	if _, nat := stack.Measure(geometry.Vertical, -1); nat != 25 {
		t.Errorf("expected natural height 25 mid-fade, got %v", nat)
	}

	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()
	if _, nat := stack.Measure(geometry.Horizontal, -1); nat != 150 {
		t.Errorf("expected the new page's width after the fade, got %v", nat)
	}
}

func TestPageStackMeasureReservesLargestByDefault(t *testing.T) {
	stack, _ := newTestStack()
	if min, nat := stack.Measure(geometry.Horizontal, -1); min != 300 || nat != 300 {
		t.Errorf("expected 300/300, got %v/%v", min, nat)
	}
	if min, nat := stack.Measure(geometry.Vertical, -1); min != 60 || nat != 60 {
		t.Errorf("expected 60/60, got %v/%v", min, nat)
	}
}

func TestPageStackSwitchWhileUnmappedLandsInstantly(t *testing.T) {
	stack, children := newTestStack()
	stack.SetTransitionType(widgets.PageTransitionCrossfade)
	stack.Allocate(geometry.RectFromLTWH(0, 0, 400, 100))

	stack.SetVisibleName("c")
	if stack.VisibleName() != "c" {
		t.Fatalf("expected page c visible, got %q", stack.VisibleName())
	}
	if stack.TransitionProgress() != 1 {
		t.Errorf("unmapped switch should land instantly, progress %v", stack.TransitionProgress())
	}
	if children[0].Mapped() || children[2].Mapped() {
		t.Error("no page of an unmapped stack should be mapped")
	}
	if animation.HasActiveTickers() {
		t.Error("expected no active tickers")
	}
}

func TestPageStackUnmapLandsTransition(t *testing.T) {
	clock := animtest.InstallClock(t)

	stack, children := newTestStack()
	stack.SetTransitionType(widgets.PageTransitionCrossfade)
	stack.Map()
	stack.Allocate(geometry.RectFromLTWH(0, 0, 400, 100))
	stack.SetVisibleName("b")
	clock.Advance(50 * time.Millisecond)
	animation.StepTickers()

	stack.Unmap()
	if got := stack.TransitionProgress(); got != 1 {
		t.Errorf("expected the transition landed on unmap, progress %v", got)
	}
	if children[0].Mapped() || children[1].Mapped() {
		t.Error("expected all pages unmapped")
	}
	if animation.HasActiveTickers() {
		t.Error("expected no active tickers after unmap")
	}
}

func TestPageStackRetargetMidTransition(t *testing.T) {
	clock := animtest.InstallClock(t)

	stack, children := newTestStack()
	stack.SetTransitionType(widgets.PageTransitionCrossfade)
	stack.Map()
	stack.Allocate(geometry.RectFromLTWH(0, 0, 400, 100))

	stack.SetVisibleName("b")
	clock.Advance(100 * time.Millisecond)
	animation.StepTickers()

	// Switching again lands the half-done fade, then fades c over b.
	stack.SetVisibleName("c")
	if children[0].Mapped() {
		t.Error("first page should be unmapped once its fade lands")
	}
	if !children[1].Mapped() || !children[2].Mapped() {
		t.Fatal("pages b and c should be mapped during the second fade")
	}

	clock.Advance(200 * time.Millisecond)
	animation.StepTickers()
	if children[1].Mapped() {
		t.Error("page b should be unmapped after the second fade")
	}
	if stack.VisibleName() != "c" {
		t.Errorf("expected page c visible, got %q", stack.VisibleName())
	}
	if animation.HasActiveTickers() {
		t.Error("expected no active tickers")
	}
}

func TestPageTransitionString(t *testing.T) {
	tests := []struct {
		transition widgets.PageTransition
		want       string
	}{
		{widgets.PageTransitionNone, "none"},
		{widgets.PageTransitionCrossfade, "crossfade"},
		{widgets.PageTransitionSlide, "slide"},
		{widgets.PageTransition(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.transition.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.transition), got, tt.want)
		}
	}
}

func TestPageStackSetTransitionDurationValidation(t *testing.T) {
	diag := animtest.InstallDiagnostics(t)
	stack, _ := newTestStack()

	stack.SetTransitionDuration(-time.Millisecond)
	if stack.TransitionDuration() != 200*time.Millisecond {
		t.Errorf("negative duration applied: %v", stack.TransitionDuration())
	}
	if diag.Count() != 1 || diag.Last().Kind != errors.KindArgument {
		t.Fatalf("expected an argument diagnostic, got %d", diag.Count())
	}
}
