package animtest

import (
	"sync"
	"testing"

	"github.com/go-drift/adaptive/pkg/errors"
)

// Diagnostics records reported errors so tests can assert on them.
type Diagnostics struct {
	mu     sync.Mutex
	errors []*errors.Error
}

// InstallDiagnostics routes error reports to a fresh recorder for the
// duration of the test and restores the previous handler afterwards.
func InstallDiagnostics(t *testing.T) *Diagnostics {
	t.Helper()
	d := &Diagnostics{}
	prev := errors.SetHandler(d)
	t.Cleanup(func() {
		errors.SetHandler(prev)
	})
	return d
}

// HandleError implements [errors.Handler].
func (d *Diagnostics) HandleError(err *errors.Error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errors = append(d.errors, err)
}

// Count returns how many errors have been reported.
func (d *Diagnostics) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.errors)
}

// Last returns the most recently reported error, or nil.
func (d *Diagnostics) Last() *errors.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.errors) == 0 {
		return nil
	}
	return d.errors[len(d.errors)-1]
}

// Kinds returns the kinds of all reported errors in order.
func (d *Diagnostics) Kinds() []errors.Kind {
	d.mu.Lock()
	defer d.mu.Unlock()
	kinds := make([]errors.Kind, len(d.errors))
	for i, err := range d.errors {
		kinds[i] = err.Kind
	}
	return kinds
}

// Reset discards all recorded errors.
func (d *Diagnostics) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errors = nil
}

var _ errors.Handler = (*Diagnostics)(nil)
