// SPDX-License-Identifier: Unlicense OR MIT

// Package stroke aggregates pointer events by pointer id. A stroke is
// the ordered sequence of events belonging to one pointer from first
// contact to release or cancellation.
package stroke

import (
	"math"

	"github.com/openpointer/pointerevents/pointer"
)

// A Stroke collects the events of a single pointer, in insertion order.
// The pointer id is fixed by the first event added. The owner of the
// stroke decides its lifetime; nothing here destroys strokes.
type Stroke struct {
	pointerID uint64
	hasID     bool

	events []pointer.Event

	minSequenceIndex uint64
	maxSequenceIndex uint64
	minTimestamp     uint64
	maxTimestamp     uint64

	finished  bool
	cancelled bool
}

// NewStroke returns an empty stroke.
func NewStroke() *Stroke {
	return &Stroke{
		minSequenceIndex: math.MaxUint64,
		minTimestamp:     math.MaxUint64,
	}
}

// Add appends an event and reports whether it was accepted. The event
// is rejected, with no mutation, when its pointer id differs from the
// stroke's established id, or when the stroke already holds a terminal
// up or cancel event and the incoming event is not a pointerleave
// cleanup.
func (s *Stroke) Add(e pointer.Event) bool {
	if s.hasID && e.PointerID != s.pointerID {
		return false
	}
	if s.finished && e.EventType() != pointer.Leave {
		return false
	}
	if !s.hasID {
		s.pointerID = e.PointerID
		s.hasID = true
	}
	s.events = append(s.events, e.Clone())
	if e.SequenceIndex < s.minSequenceIndex {
		s.minSequenceIndex = e.SequenceIndex
	}
	if e.SequenceIndex > s.maxSequenceIndex {
		s.maxSequenceIndex = e.SequenceIndex
	}
	if e.TimestampMicros < s.minTimestamp {
		s.minTimestamp = e.TimestampMicros
	}
	if e.TimestampMicros > s.maxTimestamp {
		s.maxTimestamp = e.TimestampMicros
	}
	switch e.EventType() {
	case pointer.Up:
		s.finished = true
	case pointer.Cancel:
		s.finished = true
		s.cancelled = true
	}
	return true
}

// PointerID returns the pointer id of the stroke's events, or 0 when
// the stroke is still empty.
func (s *Stroke) PointerID() uint64 {
	return s.pointerID
}

// MinSequenceIndex returns the smallest sequence index added.
func (s *Stroke) MinSequenceIndex() uint64 {
	return s.minSequenceIndex
}

// MaxSequenceIndex returns the largest sequence index added.
func (s *Stroke) MaxSequenceIndex() uint64 {
	return s.maxSequenceIndex
}

// MinTimestampMicros returns the earliest timestamp added.
func (s *Stroke) MinTimestampMicros() uint64 {
	return s.minTimestamp
}

// MaxTimestampMicros returns the latest timestamp added.
func (s *Stroke) MaxTimestampMicros() uint64 {
	return s.maxTimestamp
}

// IsFinished reports whether an up or cancel event has been added.
func (s *Stroke) IsFinished() bool {
	return s.finished
}

// IsCancelled reports whether the terminal event was a cancel.
func (s *Stroke) IsCancelled() bool {
	return s.cancelled
}

// IsExpectingUpdates reports whether any contained event still has
// estimated properties awaiting correction.
func (s *Stroke) IsExpectingUpdates() bool {
	for i := range s.events {
		if !s.events[i].EstimatedPropertiesExpectingUpdates.Empty() {
			return true
		}
	}
	return false
}

// Len returns the number of events.
func (s *Stroke) Len() int {
	return len(s.events)
}

// Empty reports whether the stroke has no events.
func (s *Stroke) Empty() bool {
	return len(s.events) == 0
}

// Events returns the contained events in insertion order. The slice is
// owned by the stroke; callers must not modify it.
func (s *Stroke) Events() []pointer.Event {
	return s.events
}
