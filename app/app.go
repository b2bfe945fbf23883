// SPDX-License-Identifier: Unlicense OR MIT

// Package app defines the boundary between the pointer machinery and the
// host windowing runtime. The host owns the event loop and delivers raw
// mouse and touch callbacks; everything in this module runs synchronously
// inside those callbacks, on the goroutine driving the loop.
package app

import "github.com/pkg/errors"

// ErrMouseUnsupported is returned by HandleMouse on windows that never
// produce mouse events, such as pure-touch targets.
var ErrMouseUnsupported = errors.New("window does not produce mouse events")

// ErrTouchUnsupported is returned by HandleTouch on windows that never
// produce touch events.
var ErrTouchUnsupported = errors.New("window does not produce touch events")

// MouseHandler handles a raw mouse event. Returning true marks the event
// consumed and stops delivery to handlers registered after it.
type MouseHandler func(e *MouseEvent) bool

// TouchHandler handles a raw touch event. Returning true marks the event
// consumed and stops delivery to handlers registered after it.
type TouchHandler func(e *TouchEvent) bool

// A Window is the minimal surface the pointer machinery needs from a
// host window: registration for its raw input callbacks.
//
// Handlers are invoked synchronously on the goroutine driving the
// window's event loop, in registration order, until one consumes the
// event. Implementations must be comparable; windows are used as map
// keys by the dispatcher registry.
type Window interface {
	// HandleMouse registers f for the window's raw mouse events and
	// returns a cancel function that unregisters it. Windows without a
	// mouse input class return ErrMouseUnsupported.
	HandleMouse(f MouseHandler) (cancel func(), err error)
	// HandleTouch registers f for the window's raw touch events and
	// returns a cancel function that unregisters it. Windows without a
	// touch input class return ErrTouchUnsupported.
	HandleTouch(f TouchHandler) (cancel func(), err error)
}
