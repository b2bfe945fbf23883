// SPDX-License-Identifier: Unlicense OR MIT

package app

// A VirtualWindow is an in-memory Window for tests and event replay. Raw
// events are injected with DeliverMouse and DeliverTouch and fan out to
// the registered handlers synchronously, in registration order, stopping
// at the first handler that consumes the event.
type VirtualWindow struct {
	mouseHandlers []*mouseSub
	touchHandlers []*touchSub
}

type mouseSub struct {
	f       MouseHandler
	removed bool
}

type touchSub struct {
	f       TouchHandler
	removed bool
}

// NewVirtualWindow returns an empty virtual window.
func NewVirtualWindow() *VirtualWindow {
	return &VirtualWindow{}
}

// HandleMouse implements Window.
func (w *VirtualWindow) HandleMouse(f MouseHandler) (func(), error) {
	s := &mouseSub{f: f}
	w.mouseHandlers = append(w.mouseHandlers, s)
	return func() { s.removed = true }, nil
}

// HandleTouch implements Window.
func (w *VirtualWindow) HandleTouch(f TouchHandler) (func(), error) {
	s := &touchSub{f: f}
	w.touchHandlers = append(w.touchHandlers, s)
	return func() { s.removed = true }, nil
}

// DeliverMouse injects a raw mouse event and reports whether a handler
// consumed it.
func (w *VirtualWindow) DeliverMouse(e *MouseEvent) bool {
	for _, s := range w.mouseHandlers {
		if s.removed {
			continue
		}
		if s.f(e) {
			return true
		}
	}
	return false
}

// DeliverTouch injects a raw touch event and reports whether a handler
// consumed it.
func (w *VirtualWindow) DeliverTouch(e *TouchEvent) bool {
	for _, s := range w.touchHandlers {
		if s.removed {
			continue
		}
		if s.f(e) {
			return true
		}
	}
	return false
}
