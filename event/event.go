// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the base envelope shared by all events.
//
// The envelope is loosely based on DOM events: every event carries the
// identity of its source, a type string, a timestamp and an opaque
// detail value.
//
// See https://dom.spec.whatwg.org/.
package event

// TypeUnknown is the type string of an event whose type was never set.
const TypeUnknown = "unknown"

// Args is the envelope embedded by concrete event types.
type Args struct {
	// Source identifies the producer of the event. It is opaque to the
	// event machinery; typically it is the window the event came from.
	Source any
	// Type is the event type string, for example "pointerdown".
	Type string
	// TimestampMicros is the event timestamp in microseconds. The
	// timestamp is relative to an undefined base.
	TimestampMicros uint64
	// Detail carries optional type-specific information, such as a
	// click count.
	//
	// See https://dom.spec.whatwg.org/#dom-customevent-detail.
	Detail uint64
}

// New returns an envelope with the given source, type string, timestamp
// and detail.
func New(source any, eventType string, timestampMicros, detail uint64) Args {
	return Args{
		Source:          source,
		Type:            eventType,
		TimestampMicros: timestampMicros,
		Detail:          detail,
	}
}

// EventType returns the type string, or TypeUnknown if it was never set.
func (a Args) EventType() string {
	if a.Type == "" {
		return TypeUnknown
	}
	return a.Type
}

// TimestampMillis returns the event timestamp in milliseconds.
func (a Args) TimestampMillis() uint64 {
	return a.TimestampMicros / 1000
}
