// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements a unified pointer event model patterned
// after the W3C Pointer Events specification. Mice, touchscreens and
// pens are all represented by one event shape so that application code
// can handle them uniformly.
//
// See https://w3c.github.io/pointerevents/.
package pointer

import (
	"fmt"

	"github.com/openpointer/pointerevents/event"
	"github.com/openpointer/pointerevents/f32"
)

// Device type strings carried by events.
const (
	TypeMouse   = "mouse"
	TypePen     = "pen"
	TypeTouch   = "touch"
	TypeUnknown = "unknown"
)

// Event type strings.
const (
	Over   = "pointerover"
	Enter  = "pointerenter"
	Down   = "pointerdown"
	Move   = "pointermove"
	Up     = "pointerup"
	Cancel = "pointercancel"
	// Update signals corrected values for estimated properties.
	Update = "pointerupdate"
	Out    = "pointerout"
	Leave  = "pointerleave"
	// Scroll is not part of the pointer events specification; it
	// carries mouse wheel motion.
	Scroll      = "pointerscroll"
	GotCapture  = "gotpointercapture"
	LostCapture = "lostpointercapture"
)

// An Event is a unified pointer event.
type Event struct {
	event.Args

	// Point is the sample for this event.
	Point Point

	// PointerID identifies the pointer. It is unique among all
	// concurrently active pointers; ids may be reused after a pointer
	// is released.
	PointerID uint64
	// DeviceID identifies the input device producing the pointer.
	DeviceID int64
	// PointerIndex is the multi-touch slot on the device, or -1 when
	// not applicable.
	PointerIndex int64
	// SequenceIndex increases monotonically along a pointer's stream of
	// events, or is 0 when the source does not support sequencing.
	SequenceIndex uint64
	// DeviceType is TypeMouse, TypePen, TypeTouch, TypeUnknown or a
	// custom string.
	DeviceType string

	// IsCoalesced marks events delivered batched with a frame-rate
	// event rather than individually.
	IsCoalesced bool
	// IsPredicted marks forward-extrapolated events delivered ahead of
	// measurement.
	IsPredicted bool
	// IsPrimary marks the single pointer per device that also emits
	// legacy single-pointer-compatible events.
	//
	// See https://w3c.github.io/pointerevents/#the-primary-pointer.
	IsPrimary bool

	// Button is the button that triggered this event, or -1 when none.
	Button int16
	// Buttons is the bitmask of currently held buttons.
	Buttons uint16
	// Modifiers is the bitmask of active keyboard modifiers.
	Modifiers uint16

	// Scroll is the scroll delta for Scroll events. It is not part of
	// the interchange record.
	Scroll f32.Point

	// CoalescedEvents are the events not delivered since the previous
	// frame, in order, including a copy of this event as the newest.
	CoalescedEvents []Event
	// PredictedEvents are forward-predicted events, in order.
	PredictedEvents []Event

	// EstimatedProperties names the properties whose values are
	// provisional.
	EstimatedProperties PropertySet
	// EstimatedPropertiesExpectingUpdates names the estimated
	// properties the producer promises to correct with a later event
	// carrying the same SequenceIndex.
	EstimatedPropertiesExpectingUpdates PropertySet

	// PropertyUpdated, when set, is invoked with each property name
	// corrected by UpdateEstimatedProperties.
	PropertyUpdated func(property string)

	consumed bool
}

// WithType returns a copy of e with a new event type.
func (e Event) WithType(eventType string) Event {
	e.Type = eventType
	return e
}

// Position returns the event position in screen coordinates, shorthand
// for e.Point.Position.
func (e Event) Position() f32.Point {
	return e.Point.Position
}

// IsEstimated reports whether any property value is provisional.
func (e Event) IsEstimated() bool {
	return !e.EstimatedProperties.Empty()
}

// Consume marks the event consumed, stopping delivery to the remaining
// subscribers of the channel it is on.
func (e *Event) Consume() {
	e.consumed = true
}

// Consumed reports whether a subscriber consumed the event.
func (e *Event) Consumed() bool {
	return e.consumed
}

// Clone returns a deep copy of e with independent property sets and
// coalesced and predicted event lists.
func (e Event) Clone() Event {
	c := e
	c.EstimatedProperties = e.EstimatedProperties.Clone()
	c.EstimatedPropertiesExpectingUpdates = e.EstimatedPropertiesExpectingUpdates.Clone()
	if e.CoalescedEvents != nil {
		c.CoalescedEvents = make([]Event, len(e.CoalescedEvents))
		for i, sub := range e.CoalescedEvents {
			c.CoalescedEvents[i] = sub.Clone()
		}
	}
	if e.PredictedEvents != nil {
		c.PredictedEvents = make([]Event, len(e.PredictedEvents))
		for i, sub := range e.PredictedEvents {
			c.PredictedEvents[i] = sub.Clone()
		}
	}
	return c
}

// UpdateEstimatedProperties applies a correction from other. Properties
// are corrected only when other carries the same SequenceIndex and the
// property is present in both EstimatedProperties and
// EstimatedPropertiesExpectingUpdates. Corrected properties leave
// EstimatedPropertiesExpectingUpdates but stay in EstimatedProperties.
//
// It reports whether any property was corrected; on a mismatch nothing
// is mutated. A false return is a normal outcome, not an error.
func (e *Event) UpdateEstimatedProperties(other Event) bool {
	if other.SequenceIndex != e.SequenceIndex {
		return false
	}
	var corrected []string
	for _, name := range e.EstimatedPropertiesExpectingUpdates.Sorted() {
		if !e.EstimatedProperties.Has(name) {
			continue
		}
		switch name {
		case PropertyPosition, PropertyPressure, PropertyTiltX, PropertyTiltY:
			corrected = append(corrected, name)
		}
	}
	if len(corrected) == 0 {
		return false
	}
	for _, name := range corrected {
		switch name {
		case PropertyPosition:
			e.Point.Position = other.Point.Position
			e.Point.PrecisePosition = other.Point.PrecisePosition
		case PropertyPressure:
			e.Point.Pressure = other.Point.Pressure
		case PropertyTiltX:
			e.Point.TiltXDeg = other.Point.TiltXDeg
		case PropertyTiltY:
			e.Point.TiltYDeg = other.Point.TiltYDeg
		}
		e.EstimatedPropertiesExpectingUpdates.Remove(name)
		if e.PropertyUpdated != nil {
			e.PropertyUpdated(name)
		}
	}
	return true
}

// String returns a debug representation of the event.
func (e Event) String() string {
	return fmt.Sprintf("%s pointer=%d device=%d/%s seq=%d pos=%s buttons=%04b",
		e.EventType(), e.PointerID, e.DeviceID, e.DeviceType,
		e.SequenceIndex, e.Point.Position, e.Buttons)
}
