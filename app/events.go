// SPDX-License-Identifier: Unlicense OR MIT

package app

import "github.com/openpointer/pointerevents/f32"

// MouseKind is the action of a raw mouse event.
type MouseKind uint8

const (
	// MousePressed is a button press.
	MousePressed MouseKind = iota
	// MouseReleased is a button release.
	MouseReleased
	// MouseMoved is a motion with no button held.
	MouseMoved
	// MouseDragged is a motion with at least one button held.
	MouseDragged
	// MouseScrolled is a scroll wheel motion.
	MouseScrolled
	// MouseEntered is the cursor entering the window.
	MouseEntered
	// MouseExited is the cursor leaving the window.
	MouseExited
)

func (k MouseKind) String() string {
	switch k {
	case MousePressed:
		return "pressed"
	case MouseReleased:
		return "released"
	case MouseMoved:
		return "moved"
	case MouseDragged:
		return "dragged"
	case MouseScrolled:
		return "scrolled"
	case MouseEntered:
		return "entered"
	case MouseExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Mouse buttons, numbered the way hosts report them.
const (
	MouseButtonLeft   int16 = 0
	MouseButtonMiddle int16 = 1
	MouseButtonRight  int16 = 2
)

// MouseButtonNone marks events with no associated button.
const MouseButtonNone int16 = -1

// Keyboard modifier bits carried on raw events.
const (
	ModShift uint16 = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// A MouseEvent is a raw mouse callback from the host window.
type MouseEvent struct {
	Kind     MouseKind
	Position f32.Point
	// Scroll is the scroll delta for MouseScrolled events.
	Scroll f32.Point
	// Button is the button that changed for press/release events,
	// MouseButtonNone otherwise.
	Button int16
	// Modifiers is the keyboard modifier bitmask at the time of the
	// event.
	Modifiers       uint16
	TimestampMicros uint64
}

// TouchKind is the action of a raw touch event.
type TouchKind uint8

const (
	// TouchDown is a new contact.
	TouchDown TouchKind = iota
	// TouchUp is a contact lifting.
	TouchUp
	// TouchMoved is a contact moving.
	TouchMoved
	// TouchDoubleTap is a second contact in quick succession.
	TouchDoubleTap
	// TouchCancelled is a contact removed by the system.
	TouchCancelled
)

func (k TouchKind) String() string {
	switch k {
	case TouchDown:
		return "down"
	case TouchUp:
		return "up"
	case TouchMoved:
		return "moved"
	case TouchDoubleTap:
		return "doubletap"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// A TouchEvent is a raw touch callback from the host window.
type TouchEvent struct {
	Kind     TouchKind
	Position f32.Point
	// ID is the touch slot the contact occupies on its device. The same
	// physical contact keeps its slot from down to up or cancel.
	ID int64
	// DeviceID identifies the touch device.
	DeviceID int64
	// NumTouches is the number of concurrently active contacts on the
	// device, when reported.
	NumTouches int
	// Width, Height and AngleDeg describe the contact ellipse, when
	// reported. Zero means unreported.
	Width, Height, AngleDeg float32
	// Pressure is the normalized contact pressure, or 0 when
	// unsupported.
	Pressure        float32
	TimestampMicros uint64
}
