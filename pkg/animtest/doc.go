// Package animtest provides test support for the animation engine.
//
// # Scripted Hosts
//
// [Host] implements [animation.Host] with a frame clock that only advances
// when the test pumps it, so animations step deterministically:
//
//	func TestFade(t *testing.T) {
//	    host := animtest.NewHost()
//	    fade := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, target)
//	    fade.Play()
//
//	    host.Step(50 * time.Millisecond)
//	    // fade.Value() is now halfway along the curve
//
//	    host.Run(16*time.Millisecond, 100)
//	    // the animation has finished and released its subscription
//	}
//
// # Package Clock
//
// Tests that drive [animation.StepTickers] directly, such as widget tests,
// replace the package clock instead:
//
//	clock := animtest.InstallClock(t)
//	clock.Advance(16 * time.Millisecond)
//	animation.StepTickers()
//
// # Diagnostics
//
// [InstallDiagnostics] captures reported usage and argument diagnostics so
// tests can assert that misuse was flagged:
//
//	diags := animtest.InstallDiagnostics(t)
//	anim.Play()
//	anim.Play() // usage error
//	if diags.Count() != 1 {
//	    t.Error("expected a diagnostic")
//	}
package animtest
