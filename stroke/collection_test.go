// SPDX-License-Identifier: Unlicense OR MIT

package stroke

import (
	"testing"

	"go.viam.com/test"

	"github.com/openpointer/pointerevents/pointer"
)

func TestCollectionAdd(t *testing.T) {
	c := NewCollection()
	test.That(t, c.Empty(), test.ShouldBeTrue)

	c.Add(strokeEvent(pointer.Down, 1, 1, 100))
	c.Add(strokeEvent(pointer.Down, 2, 1, 110))
	c.Add(strokeEvent(pointer.Move, 1, 2, 120))
	c.Add(strokeEvent(pointer.Down, 3, 1, 130))

	test.That(t, c.Size(), test.ShouldEqual, 4)
	test.That(t, c.NumPointers(), test.ShouldEqual, 3)
	test.That(t, c.HasPointerID(2), test.ShouldBeTrue)
	test.That(t, c.HasPointerID(4), test.ShouldBeFalse)
}

func TestCollectionFirstLast(t *testing.T) {
	c := NewCollection()
	c.Add(strokeEvent(pointer.Down, 1, 1, 100))
	c.Add(strokeEvent(pointer.Move, 1, 2, 120))
	c.Add(strokeEvent(pointer.Up, 1, 3, 140))

	first := c.FirstEventForPointerID(1)
	test.That(t, first, test.ShouldNotBeNil)
	test.That(t, first.EventType(), test.ShouldEqual, pointer.Down)
	last := c.LastEventForPointerID(1)
	test.That(t, last, test.ShouldNotBeNil)
	test.That(t, last.EventType(), test.ShouldEqual, pointer.Up)

	test.That(t, c.FirstEventForPointerID(9), test.ShouldBeNil)
	test.That(t, c.LastEventForPointerID(9), test.ShouldBeNil)
}

func TestCollectionRemovePointer(t *testing.T) {
	c := NewCollection()
	c.Add(strokeEvent(pointer.Down, 1, 1, 100))
	c.Add(strokeEvent(pointer.Down, 2, 1, 110))
	c.Add(strokeEvent(pointer.Move, 2, 2, 120))
	c.Add(strokeEvent(pointer.Down, 3, 1, 130))

	c.RemoveEventsForPointerID(2)
	test.That(t, c.NumPointers(), test.ShouldEqual, 2)
	test.That(t, c.Size(), test.ShouldEqual, 2)
	test.That(t, c.HasPointerID(2), test.ShouldBeFalse)
	test.That(t, c.FirstEventForPointerID(2), test.ShouldBeNil)

	// The master sequence keeps its order for the surviving pointers.
	events := c.Events()
	test.That(t, events, test.ShouldHaveLength, 2)
	test.That(t, events[0].PointerID, test.ShouldEqual, uint64(1))
	test.That(t, events[1].PointerID, test.ShouldEqual, uint64(3))

	// Removing an absent pointer is a no-op.
	c.RemoveEventsForPointerID(9)
	test.That(t, c.Size(), test.ShouldEqual, 2)
}

func TestCollectionEventsForPointerID(t *testing.T) {
	c := NewCollection()
	c.Add(strokeEvent(pointer.Down, 1, 1, 100))
	c.Add(strokeEvent(pointer.Move, 1, 2, 120))

	events := c.EventsForPointerID(1)
	test.That(t, events, test.ShouldHaveLength, 2)
	test.That(t, events[0].SequenceIndex, test.ShouldEqual, uint64(1))
	test.That(t, events[1].SequenceIndex, test.ShouldEqual, uint64(2))
	test.That(t, c.EventsForPointerID(9), test.ShouldBeNil)
}

func TestCollectionClear(t *testing.T) {
	c := NewCollection()
	c.Add(strokeEvent(pointer.Down, 1, 1, 100))
	c.Clear()
	test.That(t, c.Empty(), test.ShouldBeTrue)
	test.That(t, c.NumPointers(), test.ShouldEqual, 0)
}
