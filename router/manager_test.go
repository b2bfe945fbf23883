// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/openpointer/pointerevents/app"
	"github.com/openpointer/pointerevents/f32"
)

func TestManagerEventsForWindow(t *testing.T) {
	m := NewManager(golog.NewTestLogger(t))
	w := app.NewVirtualWindow()

	e1, err := m.EventsForWindow(w)
	test.That(t, err, test.ShouldBeNil)
	e2, err := m.EventsForWindow(w)
	test.That(t, err, test.ShouldBeNil)
	// One dispatcher per window.
	test.That(t, e1, test.ShouldEqual, e2)

	other := app.NewVirtualWindow()
	e3, err := m.EventsForWindow(other)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, e3, test.ShouldNotEqual, e1)
	test.That(t, e3.ID(), test.ShouldNotEqual, e1.ID())
}

func TestManagerNilWindow(t *testing.T) {
	m := NewManager(golog.NewTestLogger(t))
	_, err := m.EventsForWindow(nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestManagerDefaultWindow(t *testing.T) {
	m := NewManager(golog.NewTestLogger(t))

	_, err := m.Events()
	test.That(t, err, test.ShouldNotBeNil)

	w := app.NewVirtualWindow()
	m.SetDefaultWindow(w)
	e, err := m.Events()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, e.Window(), test.ShouldEqual, w)
}

func TestManagerLookup(t *testing.T) {
	m := NewManager(golog.NewTestLogger(t))
	w := app.NewVirtualWindow()

	_, err := m.Lookup(w)
	test.That(t, err, test.ShouldNotBeNil)

	created, err := m.EventsForWindow(w)
	test.That(t, err, test.ShouldBeNil)
	found, err := m.Lookup(w)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, found, test.ShouldEqual, created)
}

func TestManagerClose(t *testing.T) {
	m := NewManager(golog.NewTestLogger(t))
	_, err := m.EventsForWindow(app.NewVirtualWindow())
	test.That(t, err, test.ShouldBeNil)
	_, err = m.EventsForWindow(app.NewVirtualWindow())
	test.That(t, err, test.ShouldBeNil)

	test.That(t, m.Close(), test.ShouldBeNil)
	// Every dispatcher is already closed; both errors are reported.
	test.That(t, m.Close(), test.ShouldNotBeNil)
}

func TestRegisterListenerForWindow(t *testing.T) {
	m := NewManager(golog.NewTestLogger(t))
	w := app.NewVirtualWindow()
	l := &countingListener{}

	test.That(t, RegisterListenerForWindow(m, w, l, OrderAfterApp), test.ShouldBeNil)
	w.DeliverMouse(&app.MouseEvent{Kind: app.MousePressed, Position: f32.Pt(1, 1), Button: app.MouseButtonLeft})
	test.That(t, l.downs, test.ShouldEqual, 1)

	test.That(t, UnregisterListenerForWindow(m, w, l), test.ShouldBeNil)
	w.DeliverMouse(&app.MouseEvent{Kind: app.MousePressed, Button: app.MouseButtonLeft})
	test.That(t, l.downs, test.ShouldEqual, 1)

	// Unregistration never creates a dispatcher.
	err := UnregisterListenerForWindow(m, app.NewVirtualWindow(), l)
	test.That(t, err, test.ShouldNotBeNil)
}
