// SPDX-License-Identifier: Unlicense OR MIT

// Package router converts a window's raw mouse and touch callbacks into
// unified pointer events and redistributes them through a layered set of
// channels: the generic PointerEvent channel first, then exactly one
// type-specific channel if no generic subscriber consumed the event.
//
// Everything in this package is single-threaded and callback-driven:
// raw input arrives synchronously on the goroutine driving the host's
// event loop and dispatch completes before the callback returns.
// Reentrant dispatch, a subscriber injecting new input synchronously, is
// not supported.
package router

import (
	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/openpointer/pointerevents/app"
	"github.com/openpointer/pointerevents/pointer"
)

// A Listener bundles the four core pointer callbacks. Register and
// unregister it with RegisterListener and UnregisterListener.
type Listener interface {
	PointerDown(e *pointer.Event)
	PointerUp(e *pointer.Event)
	PointerMove(e *pointer.Event)
	PointerCancel(e *pointer.Event)
}

// Events converts raw mouse and touch events from one window into
// pointer events and distributes them. It is a source of pointer
// events; construct one per window, or let a Manager do it lazily.
type Events struct {
	// PointerEvent is notified for every pointer event, before the
	// type-specific channels. Consuming here suppresses them.
	PointerEvent Channel
	// PointerDown is notified when a pointer makes contact, if
	// PointerEvent did not consume the event.
	PointerDown Channel
	// PointerUp is notified when a pointer is released, if PointerEvent
	// did not consume the event.
	PointerUp Channel
	// PointerMove is notified when a pointer moves, if PointerEvent did
	// not consume the event.
	PointerMove Channel
	// PointerCancel is notified when the system removes a pointer, if
	// PointerEvent did not consume the event.
	PointerCancel Channel
	// PointerUpdate is notified when estimated properties of an earlier
	// event are corrected, if PointerEvent did not consume the event.
	PointerUpdate Channel

	id     string
	logger golog.Logger
	window app.Window

	// interceptLegacy marks unconsumed raw events consumed after
	// unified dispatch, so legacy-style listeners registered after this
	// dispatcher never see them. Unified consumers take priority.
	interceptLegacy bool

	cancelMouse func()
	cancelTouch func()
	closed      bool

	mouseButtons  uint16
	sequences     map[uint64]uint64
	activeTouches map[int64]map[int64]struct{}
	primaryTouch  map[int64]int64

	listeners map[Listener][]func()
}

// New returns a dispatcher bound to the window, subscribed to its raw
// mouse and touch callbacks. A window may lack one input class
// entirely; that is tolerated and logged at debug level.
func New(window app.Window, logger golog.Logger) (*Events, error) {
	if window == nil {
		return nil, errors.New("router: nil window")
	}
	id := uuid.NewString()
	e := &Events{
		id:              id,
		logger:          logger.Named("pointer_events").With("id", id),
		window:          window,
		interceptLegacy: true,
		sequences:       map[uint64]uint64{},
		activeTouches:   map[int64]map[int64]struct{}{},
		primaryTouch:    map[int64]int64{},
		listeners:       map[Listener][]func(){},
	}
	var err error
	e.cancelMouse, err = window.HandleMouse(e.OnMouse)
	if err != nil {
		if !errors.Is(err, app.ErrMouseUnsupported) {
			return nil, errors.Wrap(err, "subscribing to mouse events")
		}
		e.logger.Debugw("window has no mouse input")
	}
	e.cancelTouch, err = window.HandleTouch(e.OnTouch)
	if err != nil {
		if !errors.Is(err, app.ErrTouchUnsupported) {
			if e.cancelMouse != nil {
				e.cancelMouse()
			}
			return nil, errors.Wrap(err, "subscribing to touch events")
		}
		e.logger.Debugw("window has no touch input")
	}
	return e, nil
}

// ID returns the dispatcher instance id.
func (e *Events) ID() string {
	return e.id
}

// Window returns the window the dispatcher is bound to.
func (e *Events) Window() app.Window {
	return e.window
}

// SetInterceptLegacy controls whether raw mouse and touch events are
// marked consumed after unified dispatch even when no pointer
// subscriber consumed them. It defaults to true: unified consumers take
// priority over legacy-style listeners.
func (e *Events) SetInterceptLegacy(intercept bool) {
	e.interceptLegacy = intercept
}

// Close detaches the dispatcher from its window. Events already being
// dispatched complete; no further raw input is converted.
func (e *Events) Close() error {
	if e.closed {
		return errors.Errorf("pointer events %s already closed", e.id)
	}
	e.closed = true
	if e.cancelMouse != nil {
		e.cancelMouse()
	}
	if e.cancelTouch != nil {
		e.cancelTouch()
	}
	return nil
}

// OnMouse converts a raw mouse event, stamps the held-button bitmask
// and sequence index, and dispatches it. It reports whether the raw
// event should be treated as consumed.
func (e *Events) OnMouse(raw *app.MouseEvent) bool {
	pe := pointer.FromMouse(e.window, raw)
	switch raw.Kind {
	case app.MousePressed:
		if raw.Button >= 0 {
			e.mouseButtons |= 1 << uint16(raw.Button)
		}
	case app.MouseReleased:
		if raw.Button >= 0 {
			e.mouseButtons &^= 1 << uint16(raw.Button)
		}
	}
	pe.Buttons = e.mouseButtons
	pe.SequenceIndex = e.nextSequence(pe.PointerID)
	consumed := e.dispatch(e.window, &pe)
	return consumed || e.interceptLegacy
}

// OnTouch converts a raw touch event, stamps the primary flag and
// sequence index, and dispatches it. It reports whether the raw event
// should be treated as consumed.
//
// The first concurrently active contact of a device is its primary
// pointer and stays primary until that contact ends. This is a policy
// choice; a single callback has no wider context to decide from.
func (e *Events) OnTouch(raw *app.TouchEvent) bool {
	pe := pointer.FromTouch(e.window, raw)
	switch raw.Kind {
	case app.TouchDown, app.TouchDoubleTap:
		slots, ok := e.activeTouches[raw.DeviceID]
		if !ok {
			slots = map[int64]struct{}{}
			e.activeTouches[raw.DeviceID] = slots
		}
		if len(slots) == 0 {
			e.primaryTouch[raw.DeviceID] = raw.ID
		}
		slots[raw.ID] = struct{}{}
		pe.IsPrimary = e.isPrimaryTouch(raw)
	case app.TouchMoved:
		pe.IsPrimary = e.isPrimaryTouch(raw)
	case app.TouchUp, app.TouchCancelled:
		pe.IsPrimary = e.isPrimaryTouch(raw)
		if slots, ok := e.activeTouches[raw.DeviceID]; ok {
			delete(slots, raw.ID)
		}
		if pe.IsPrimary {
			delete(e.primaryTouch, raw.DeviceID)
		}
	}
	pe.SequenceIndex = e.nextSequence(pe.PointerID)
	consumed := e.dispatch(e.window, &pe)
	return consumed || e.interceptLegacy
}

// OnPointer dispatches an externally-sourced pointer event, bypassing
// the mouse and touch conversions. Use it to inject events from
// platform pen APIs or replayed logs. It reports whether a subscriber
// consumed the event.
func (e *Events) OnPointer(source any, pe *pointer.Event) bool {
	return e.dispatch(source, pe)
}

// RegisterListener subscribes the listener's four callbacks to the
// PointerDown, PointerUp, PointerMove and PointerCancel channels at the
// given order. Registering an already registered listener is a no-op.
func (e *Events) RegisterListener(l Listener, order int) {
	if _, ok := e.listeners[l]; ok {
		return
	}
	e.listeners[l] = []func(){
		e.PointerDown.Subscribe(order, func(pe *pointer.Event) { l.PointerDown(pe) }),
		e.PointerUp.Subscribe(order, func(pe *pointer.Event) { l.PointerUp(pe) }),
		e.PointerMove.Subscribe(order, func(pe *pointer.Event) { l.PointerMove(pe) }),
		e.PointerCancel.Subscribe(order, func(pe *pointer.Event) { l.PointerCancel(pe) }),
	}
}

// UnregisterListener removes all four of the listener's subscriptions.
// Unregistering a listener that was never registered is a no-op.
func (e *Events) UnregisterListener(l Listener) {
	cancels, ok := e.listeners[l]
	if !ok {
		return
	}
	delete(e.listeners, l)
	for _, cancel := range cancels {
		cancel()
	}
}

func (e *Events) isPrimaryTouch(raw *app.TouchEvent) bool {
	id, ok := e.primaryTouch[raw.DeviceID]
	return ok && id == raw.ID
}

func (e *Events) nextSequence(pointerID uint64) uint64 {
	e.sequences[pointerID]++
	return e.sequences[pointerID]
}

// dispatch routes a pointer event: the generic channel first, then at
// most one type-specific channel. Events whose type has no specific
// channel, such as enter, leave and scroll, ride only the generic
// channel.
func (e *Events) dispatch(source any, pe *pointer.Event) bool {
	if pe.Source == nil {
		pe.Source = source
	}
	if e.PointerEvent.Notify(pe) {
		return true
	}
	switch pe.EventType() {
	case pointer.Down:
		return e.PointerDown.Notify(pe)
	case pointer.Up:
		return e.PointerUp.Notify(pe)
	case pointer.Move:
		return e.PointerMove.Notify(pe)
	case pointer.Cancel:
		return e.PointerCancel.Notify(pe)
	case pointer.Update:
		return e.PointerUpdate.Notify(pe)
	default:
		return false
	}
}
