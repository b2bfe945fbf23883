// SPDX-License-Identifier: Unlicense OR MIT

package stroke

import "github.com/openpointer/pointerevents/pointer"

// A Collection indexes live pointer events by pointer id on top of an
// append-ordered master sequence, so the first and last event of a
// pointer can be found without a scan. Every index entry refers to an
// element currently present in the master sequence.
type Collection struct {
	events    []*pointer.Event
	byPointer map[uint64][]*pointer.Event
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byPointer: map[uint64][]*pointer.Event{}}
}

// Size returns the number of events in the collection.
func (c *Collection) Size() int {
	return len(c.events)
}

// Empty reports whether the collection holds no events.
func (c *Collection) Empty() bool {
	return len(c.events) == 0
}

// Clear removes all events and index entries.
func (c *Collection) Clear() {
	c.events = nil
	c.byPointer = map[uint64][]*pointer.Event{}
}

// NumPointers returns the number of pointer ids currently indexed.
func (c *Collection) NumPointers() int {
	return len(c.byPointer)
}

// HasPointerID reports whether any event for the pointer id is present.
func (c *Collection) HasPointerID(pointerID uint64) bool {
	_, ok := c.byPointer[pointerID]
	return ok
}

// Add appends a copy of the event to the master sequence and indexes it
// under its pointer id, creating the id's bucket on first sight.
func (c *Collection) Add(e pointer.Event) {
	stored := new(pointer.Event)
	*stored = e.Clone()
	c.events = append(c.events, stored)
	c.byPointer[e.PointerID] = append(c.byPointer[e.PointerID], stored)
}

// RemoveEventsForPointerID deletes every event for the pointer id from
// both the master sequence and the index. After it returns,
// HasPointerID reports false for the id.
func (c *Collection) RemoveEventsForPointerID(pointerID uint64) {
	if _, ok := c.byPointer[pointerID]; !ok {
		return
	}
	kept := c.events[:0]
	for _, e := range c.events {
		if e.PointerID != pointerID {
			kept = append(kept, e)
		}
	}
	c.events = kept
	delete(c.byPointer, pointerID)
}

// Events returns copies of all events in insertion order.
func (c *Collection) Events() []pointer.Event {
	out := make([]pointer.Event, len(c.events))
	for i, e := range c.events {
		out[i] = *e
	}
	return out
}

// EventsForPointerID returns copies of the events for the pointer id,
// in insertion order, or nil when the id is absent.
func (c *Collection) EventsForPointerID(pointerID uint64) []pointer.Event {
	bucket := c.byPointer[pointerID]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]pointer.Event, len(bucket))
	for i, e := range bucket {
		out[i] = *e
	}
	return out
}

// FirstEventForPointerID returns the earliest event for the pointer id,
// or nil when the id is absent.
func (c *Collection) FirstEventForPointerID(pointerID uint64) *pointer.Event {
	bucket := c.byPointer[pointerID]
	if len(bucket) == 0 {
		return nil
	}
	return bucket[0]
}

// LastEventForPointerID returns the most recent event for the pointer
// id, or nil when the id is absent.
func (c *Collection) LastEventForPointerID(pointerID uint64) *pointer.Event {
	bucket := c.byPointer[pointerID]
	if len(bucket) == 0 {
		return nil
	}
	return bucket[len(bucket)-1]
}
