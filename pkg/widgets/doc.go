// Package widgets provides adaptive containers that reshape their children
// with animated transitions.
//
// The containers in this package share a minimal layout contract, [Widget]:
// a widget reports its size along one axis with Measure, receives its final
// bounds with Allocate, and tracks visibility with Map and Unmap. Embedding
// [Base] supplies the shared state plus a full [animation.Host]
// implementation, so each container drives its own transitions on the
// package frame clock.
//
// # Containers
//
//   - [Squeezer] shows the first of its enabled children that fits the
//     available space, crossfading when the selection changes.
//   - [Clamp] constrains one child to a maximum size, easing the child's
//     growth once the available space passes a tightening threshold.
//   - [PageStack] shows one named page at a time and animates switches
//     with a crossfade or slide.
//   - [Carousel] arranges pages side by side and scrolls between them with
//     a spring.
//
// # Driving transitions
//
// Containers animate on the package frame clock. Applications pump it the
// same way they pump standalone animations:
//
//	stack := widgets.NewPageStack()
//	stack.AddNamed(narrow, "narrow")
//	stack.AddNamed(wide, "wide")
//	stack.Map()
//	stack.Allocate(geometry.RectFromLTWH(0, 0, 360, 640))
//
//	stack.SetTransitionType(widgets.PageTransitionCrossfade)
//	stack.SetVisibleName("wide")
//	for animation.HasActiveTickers() {
//	    animation.StepTickers()
//	}
//
// Unmapping a container lands its in-flight transition immediately, and
// switching a container that was never mapped is always instant. Disabling
// animations process-wide with animation.SetEnabled(false) makes every
// container switch instantly as well.
package widgets
