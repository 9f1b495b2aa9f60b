package animation

import (
	"reflect"

	"github.com/go-drift/adaptive/pkg/errors"
)

// Target receives the values an animation produces each frame. An animation
// owns its target: replacing the target or disposing the animation releases
// the old one.
type Target interface {
	// SetValue applies an animation value.
	SetValue(value float64)
}

// CallbackTarget is a Target that invokes a function with each value.
type CallbackTarget struct {
	callback func(value float64)
	cleanup  func()
}

// NewCallbackTarget creates a target that forwards values to callback.
func NewCallbackTarget(callback func(value float64)) *CallbackTarget {
	if callback == nil {
		errors.Reportf("animation.NewCallbackTarget", errors.KindArgument,
			"callback is nil")
		return nil
	}
	return &CallbackTarget{callback: callback}
}

// OnDispose registers a cleanup function that runs exactly once when the
// owning animation releases the target.
func (t *CallbackTarget) OnDispose(cleanup func()) {
	t.cleanup = cleanup
}

// SetValue invokes the callback.
func (t *CallbackTarget) SetValue(value float64) {
	t.callback(value)
}

func (t *CallbackTarget) dispose() {
	if t.cleanup == nil {
		return
	}
	cleanup := t.cleanup
	t.cleanup = nil
	cleanup()
}

// PropertyTarget is a Target that writes each value to a named property of
// an object. The property is resolved once at construction: a
// Set<Name>(float64) method is preferred, falling back to an addressable
// float64 or float32 struct field with that name.
type PropertyTarget struct {
	object   any
	property string
	setter   reflect.Value
	field    reflect.Value
}

// NewPropertyTarget creates a target writing to the named property of
// object. The object must be non-nil, and for field access a pointer to a
// struct. Returns nil if the property cannot be resolved.
func NewPropertyTarget(object any, property string) *PropertyTarget {
	const op = "animation.NewPropertyTarget"
	if object == nil {
		errors.Reportf(op, errors.KindArgument, "object is nil")
		return nil
	}
	if property == "" {
		errors.Reportf(op, errors.KindArgument, "property name is empty")
		return nil
	}

	rv := reflect.ValueOf(object)
	if m := rv.MethodByName("Set" + property); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.In(0).Kind() == reflect.Float64 && mt.NumOut() == 0 {
			return &PropertyTarget{object: object, property: property, setter: m}
		}
	}
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		f := rv.Elem().FieldByName(property)
		if f.IsValid() && f.CanSet() && (f.Kind() == reflect.Float64 || f.Kind() == reflect.Float32) {
			return &PropertyTarget{object: object, property: property, field: f}
		}
	}
	errors.Reportf(op, errors.KindArgument,
		"%T has no Set%s(float64) method or settable float field %q", object, property, property)
	return nil
}

// Object returns the object the target writes to.
func (t *PropertyTarget) Object() any {
	return t.object
}

// Property returns the resolved property name.
func (t *PropertyTarget) Property() string {
	return t.property
}

// SetValue writes the value through the resolved setter or field.
func (t *PropertyTarget) SetValue(value float64) {
	if t.setter.IsValid() {
		t.setter.Call([]reflect.Value{reflect.ValueOf(value)})
		return
	}
	t.field.SetFloat(value)
}
