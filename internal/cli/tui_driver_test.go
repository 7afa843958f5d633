package cli

import (
	"testing"

	"github.com/narabid/bidassist/internal/teatest"
)

// TestDriver wraps teatest.Driver with bidassist-specific inspection methods.
// It provides access to appModel internals (view stack, shared state) that
// the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads view data synchronously from the fake services).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastStatus returns the transient status line from the last action.
func (d *TestDriver) LastStatus() string {
	return d.appModel().lastStatus
}
