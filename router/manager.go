// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/openpointer/pointerevents/app"
)

// A Manager maps windows to their dispatchers, one per window for the
// manager's life. Construct one at application-composition time and
// pass it to whatever needs pointer events; there is no implicit global
// instance.
//
// Like the dispatchers it owns, a Manager is confined to the goroutine
// driving the event loop.
type Manager struct {
	logger        golog.Logger
	defaultWindow app.Window
	events        map[app.Window]*Events
}

// NewManager returns an empty registry.
func NewManager(logger golog.Logger) *Manager {
	return &Manager{
		logger: logger,
		events: map[app.Window]*Events{},
	}
}

// SetDefaultWindow sets the window Events() resolves to.
func (m *Manager) SetDefaultWindow(w app.Window) {
	m.defaultWindow = w
}

// EventsForWindow returns the dispatcher for the window, constructing
// and storing one on first access. Entries are never removed.
func (m *Manager) EventsForWindow(w app.Window) (*Events, error) {
	if w == nil {
		return nil, errors.New("router: nil window")
	}
	if e, ok := m.events[w]; ok {
		return e, nil
	}
	e, err := New(w, m.logger)
	if err != nil {
		return nil, err
	}
	m.events[w] = e
	m.logger.Debugw("created pointer events for window", "id", e.ID())
	return e, nil
}

// Events returns the dispatcher for the default window, constructing it
// on first access.
func (m *Manager) Events() (*Events, error) {
	if m.defaultWindow == nil {
		return nil, errors.New("router: no default window set")
	}
	return m.EventsForWindow(m.defaultWindow)
}

// Lookup returns the dispatcher for the window without creating one.
// Requesting a window that has no dispatcher registered is a
// configuration error, reported to the caller.
func (m *Manager) Lookup(w app.Window) (*Events, error) {
	e, ok := m.events[w]
	if !ok {
		return nil, errors.New("router: no pointer events registered for window")
	}
	return e, nil
}

// Close detaches every dispatcher from its window, combining any
// errors. The registry itself stays usable; a closed window's entry is
// not recreated.
func (m *Manager) Close() error {
	var err error
	for _, e := range m.events {
		err = multierr.Append(err, e.Close())
	}
	return err
}

// RegisterListenerForWindow subscribes the listener bundle on the
// window's dispatcher, creating the dispatcher if needed.
func RegisterListenerForWindow(m *Manager, w app.Window, l Listener, order int) error {
	e, err := m.EventsForWindow(w)
	if err != nil {
		return errors.Wrap(err, "registering pointer listener")
	}
	e.RegisterListener(l, order)
	return nil
}

// UnregisterListenerForWindow removes the listener bundle from the
// window's dispatcher. Unlike registration it never creates a
// dispatcher; a window with none is reported as an error.
func UnregisterListenerForWindow(m *Manager, w app.Window, l Listener) error {
	e, err := m.Lookup(w)
	if err != nil {
		return errors.Wrap(err, "unregistering pointer listener")
	}
	e.UnregisterListener(l)
	return nil
}
