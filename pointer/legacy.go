// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"github.com/openpointer/pointerevents/app"
	"github.com/openpointer/pointerevents/event"
)

// FromMouse converts a raw mouse event to a pointer event.
//
// The device type is TypeMouse, the pointer id is the mouse sentinel id,
// the pointer index is -1 and the pointer is primary. The mouse reports
// no pressure, so the pressure is 0.5 while a button is active and 0
// otherwise. The Buttons bitmask and SequenceIndex are stamped by the
// dispatcher, which tracks them across events.
func FromMouse(source any, e *app.MouseEvent) Event {
	var eventType string
	var pressure float32
	switch e.Kind {
	case app.MousePressed:
		eventType = Down
		pressure = 0.5
	case app.MouseReleased:
		eventType = Up
	case app.MouseDragged:
		eventType = Move
		pressure = 0.5
	case app.MouseMoved:
		eventType = Move
	case app.MouseScrolled:
		eventType = Scroll
	case app.MouseEntered:
		eventType = Enter
	case app.MouseExited:
		eventType = Leave
	default:
		eventType = event.TypeUnknown
	}
	p := NewPoint(e.Position)
	p.Pressure = pressure
	return Event{
		Args:         event.New(source, eventType, e.TimestampMicros, 0),
		Point:        p,
		PointerID:    MouseID(),
		DeviceID:     0,
		PointerIndex: -1,
		DeviceType:   TypeMouse,
		IsPrimary:    true,
		Button:       e.Button,
		Modifiers:    e.Modifiers,
		Scroll:       e.Scroll,
	}
}

// FromTouch converts a raw touch event to a pointer event.
//
// The device type is TypeTouch and the pointer id is derived from the
// device id and touch slot, so a physical contact keeps one id from down
// to up or cancel. A contact counts as the primary button being held.
// IsPrimary cannot be decided from a single event; the dispatcher stamps
// it for the first concurrently active contact of a device.
func FromTouch(source any, e *app.TouchEvent) Event {
	var eventType string
	var detail uint64
	active := true
	switch e.Kind {
	case app.TouchDown:
		eventType = Down
	case app.TouchDoubleTap:
		eventType = Down
		detail = 2
	case app.TouchMoved:
		eventType = Move
	case app.TouchUp:
		eventType = Up
		active = false
	case app.TouchCancelled:
		eventType = Cancel
		active = false
	default:
		eventType = event.TypeUnknown
		active = false
	}
	p := NewPoint(e.Position)
	if e.Width > 0 || e.Height > 0 {
		p.Shape = Shape{
			Type:     Ellipse,
			Width:    e.Width,
			Height:   e.Height,
			AngleDeg: e.AngleDeg,
		}
	}
	var button int16 = app.MouseButtonNone
	var buttons uint16
	if active {
		p.Pressure = e.Pressure
		if p.Pressure == 0 {
			// Contact without pressure support.
			p.Pressure = 0.5
		}
		button = 0
		buttons = 1
	}
	return Event{
		Args:         event.New(source, eventType, e.TimestampMicros, detail),
		Point:        p,
		PointerID:    DeriveID(TypeTouch, e.DeviceID, e.ID),
		DeviceID:     e.DeviceID,
		PointerIndex: e.ID,
		DeviceType:   TypeTouch,
		Button:       button,
		Buttons:      buttons,
	}
}
