package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/adaptive/pkg/animation"
	"github.com/go-drift/adaptive/pkg/animtest"
	"github.com/go-drift/adaptive/pkg/errors"
)

func TestCallbackTarget(t *testing.T) {
	var values []float64
	target := animation.NewCallbackTarget(func(v float64) {
		values = append(values, v)
	})
	if target == nil {
		t.Fatal("NewCallbackTarget returned nil")
	}

	target.SetValue(0.25)
	target.SetValue(0.5)
	if len(values) != 2 || values[0] != 0.25 || values[1] != 0.5 {
		t.Errorf("callback received %v, want [0.25 0.5]", values)
	}
}

func TestCallbackTargetNilCallback(t *testing.T) {
	diag := animtest.InstallDiagnostics(t)

	if target := animation.NewCallbackTarget(nil); target != nil {
		t.Error("expected nil target for nil callback")
	}
	if got := diag.Count(); got != 1 {
		t.Fatalf("diagnostics = %d, want 1", got)
	}
	if got := diag.Last().Kind; got != errors.KindArgument {
		t.Errorf("diagnostic kind = %v, want argument", got)
	}
}

type fadeable struct {
	Opacity float64
}

type scalable struct {
	Scale float32
}

type guarded struct {
	Opacity float64

	applied []float64
}

func (g *guarded) SetOpacity(value float64) {
	g.applied = append(g.applied, value)
}

func TestPropertyTargetField(t *testing.T) {
	obj := &fadeable{}
	target := animation.NewPropertyTarget(obj, "Opacity")
	if target == nil {
		t.Fatal("NewPropertyTarget returned nil")
	}

	target.SetValue(0.75)
	if obj.Opacity != 0.75 {
		t.Errorf("Opacity = %v, want 0.75", obj.Opacity)
	}
	if got := target.Property(); got != "Opacity" {
		t.Errorf("Property = %q, want Opacity", got)
	}
	if got := target.Object(); got != any(obj) {
		t.Error("Object does not return the original object")
	}
}

func TestPropertyTargetFloat32Field(t *testing.T) {
	obj := &scalable{}
	target := animation.NewPropertyTarget(obj, "Scale")
	if target == nil {
		t.Fatal("NewPropertyTarget returned nil")
	}

	target.SetValue(1.5)
	if obj.Scale != 1.5 {
		t.Errorf("Scale = %v, want 1.5", obj.Scale)
	}
}

func TestPropertyTargetPrefersSetter(t *testing.T) {
	obj := &guarded{}
	target := animation.NewPropertyTarget(obj, "Opacity")
	if target == nil {
		t.Fatal("NewPropertyTarget returned nil")
	}

	target.SetValue(0.5)
	if len(obj.applied) != 1 || obj.applied[0] != 0.5 {
		t.Errorf("setter received %v, want [0.5]", obj.applied)
	}
	if obj.Opacity != 0 {
		t.Errorf("Opacity = %v, want 0; the setter must win over the field", obj.Opacity)
	}
}

func TestPropertyTargetValidation(t *testing.T) {
	diag := animtest.InstallDiagnostics(t)

	tests := []struct {
		name   string
		target *animation.PropertyTarget
	}{
		{"nil object", animation.NewPropertyTarget(nil, "Opacity")},
		{"empty property", animation.NewPropertyTarget(&fadeable{}, "")},
		{"unknown property", animation.NewPropertyTarget(&fadeable{}, "Missing")},
		{"non-pointer object", animation.NewPropertyTarget(fadeable{}, "Opacity")},
	}
	for _, tt := range tests {
		if tt.target != nil {
			t.Errorf("%s: target = %v, want nil", tt.name, tt.target)
		}
	}
	if got := diag.Count(); got != len(tests) {
		t.Errorf("diagnostics = %d, want %d", got, len(tests))
	}
}

func TestPropertyTargetDrivenByAnimation(t *testing.T) {
	host := animtest.NewHost()
	obj := &fadeable{}
	anim := animation.NewTimedAnimation(host, 0, 1, 100*time.Millisecond, animation.NewPropertyTarget(obj, "Opacity"))
	anim.SetEasing(animation.Linear)

	anim.Play()
	host.Step(50 * time.Millisecond)
	if obj.Opacity != 0.5 {
		t.Errorf("Opacity mid-flight = %v, want 0.5", obj.Opacity)
	}

	host.Step(50 * time.Millisecond)
	if obj.Opacity != 1 {
		t.Errorf("Opacity after finish = %v, want 1", obj.Opacity)
	}
}
