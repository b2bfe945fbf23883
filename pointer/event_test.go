// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"

	"go.viam.com/test"

	"github.com/openpointer/pointerevents/event"
	"github.com/openpointer/pointerevents/f32"
)

func TestEventConsume(t *testing.T) {
	e := Event{}
	test.That(t, e.Consumed(), test.ShouldBeFalse)
	e.Consume()
	test.That(t, e.Consumed(), test.ShouldBeTrue)
}

func TestEventWithType(t *testing.T) {
	e := Event{Args: event.New(nil, Down, 100, 0)}
	up := e.WithType(Up)
	test.That(t, up.EventType(), test.ShouldEqual, Up)
	test.That(t, e.EventType(), test.ShouldEqual, Down)
	test.That(t, up.TimestampMicros, test.ShouldEqual, uint64(100))
}

func TestEventCloneIndependence(t *testing.T) {
	e := Event{
		Point:                               NewPoint(f32.Pt(1, 2)),
		EstimatedProperties:                 NewPropertySet(PropertyPressure),
		EstimatedPropertiesExpectingUpdates: NewPropertySet(PropertyPressure),
		CoalescedEvents:                     []Event{{PointerID: 9}},
	}
	c := e.Clone()
	c.EstimatedProperties.Add(PropertyTiltX)
	c.EstimatedPropertiesExpectingUpdates.Remove(PropertyPressure)
	c.CoalescedEvents[0].PointerID = 10

	test.That(t, e.EstimatedProperties.Has(PropertyTiltX), test.ShouldBeFalse)
	test.That(t, e.EstimatedPropertiesExpectingUpdates.Has(PropertyPressure), test.ShouldBeTrue)
	test.That(t, e.CoalescedEvents[0].PointerID, test.ShouldEqual, uint64(9))
}

func TestUpdateEstimatedProperties(t *testing.T) {
	e := Event{
		SequenceIndex:                       7,
		Point:                               NewPoint(f32.Pt(10, 10)),
		EstimatedProperties:                 NewPropertySet(PropertyPosition, PropertyPressure),
		EstimatedPropertiesExpectingUpdates: NewPropertySet(PropertyPosition),
	}
	e.Point.Pressure = 0.2

	var corrected []string
	e.PropertyUpdated = func(name string) { corrected = append(corrected, name) }

	other := Event{SequenceIndex: 7, Point: NewPoint(f32.Pt(12, 14))}
	other.Point.Pressure = 0.9

	test.That(t, e.UpdateEstimatedProperties(other), test.ShouldBeTrue)
	test.That(t, e.Point.Position, test.ShouldResemble, f32.Pt(12, 14))
	test.That(t, e.Point.PrecisePosition, test.ShouldResemble, f32.Pt(12, 14))
	// Pressure was estimated but not expecting an update.
	test.That(t, e.Point.Pressure, test.ShouldEqual, float32(0.2))
	test.That(t, e.EstimatedPropertiesExpectingUpdates.Empty(), test.ShouldBeTrue)
	test.That(t, e.EstimatedProperties.Has(PropertyPosition), test.ShouldBeTrue)
	test.That(t, corrected, test.ShouldResemble, []string{PropertyPosition})
}

func TestUpdateEstimatedPropertiesSequenceMismatch(t *testing.T) {
	e := Event{
		SequenceIndex:                       7,
		Point:                               NewPoint(f32.Pt(10, 10)),
		EstimatedProperties:                 NewPropertySet(PropertyPosition),
		EstimatedPropertiesExpectingUpdates: NewPropertySet(PropertyPosition),
	}
	other := Event{SequenceIndex: 8, Point: NewPoint(f32.Pt(12, 14))}

	test.That(t, e.UpdateEstimatedProperties(other), test.ShouldBeFalse)
	test.That(t, e.Point.Position, test.ShouldResemble, f32.Pt(10, 10))
	test.That(t, e.EstimatedPropertiesExpectingUpdates.Has(PropertyPosition), test.ShouldBeTrue)
}

func TestUpdateEstimatedPropertiesNothingExpected(t *testing.T) {
	e := Event{
		SequenceIndex:       3,
		EstimatedProperties: NewPropertySet(PropertyTiltX),
	}
	other := Event{SequenceIndex: 3}
	other.Point.TiltXDeg = 30

	test.That(t, e.UpdateEstimatedProperties(other), test.ShouldBeFalse)
	test.That(t, e.Point.TiltXDeg, test.ShouldEqual, float32(0))
}

func TestUpdateEstimatedPropertiesTilt(t *testing.T) {
	e := Event{
		SequenceIndex:                       1,
		EstimatedProperties:                 NewPropertySet(PropertyTiltX, PropertyTiltY),
		EstimatedPropertiesExpectingUpdates: NewPropertySet(PropertyTiltX, PropertyTiltY),
	}
	other := Event{SequenceIndex: 1}
	other.Point.TiltXDeg = 15
	other.Point.TiltYDeg = -20

	test.That(t, e.UpdateEstimatedProperties(other), test.ShouldBeTrue)
	test.That(t, e.Point.TiltXDeg, test.ShouldEqual, float32(15))
	test.That(t, e.Point.TiltYDeg, test.ShouldEqual, float32(-20))
	test.That(t, e.EstimatedPropertiesExpectingUpdates.Empty(), test.ShouldBeTrue)
}

func TestIsEstimated(t *testing.T) {
	e := Event{}
	test.That(t, e.IsEstimated(), test.ShouldBeFalse)
	e.EstimatedProperties = NewPropertySet(PropertyPressure)
	test.That(t, e.IsEstimated(), test.ShouldBeTrue)
}

func TestPropertySet(t *testing.T) {
	s := NewPropertySet(PropertyTiltY, PropertyPosition, PropertyTiltX)
	test.That(t, s.Sorted(), test.ShouldResemble, []string{PropertyPosition, PropertyTiltX, PropertyTiltY})
	s.Remove(PropertyTiltX)
	test.That(t, s.Has(PropertyTiltX), test.ShouldBeFalse)

	var nilSet PropertySet
	test.That(t, nilSet.Empty(), test.ShouldBeTrue)
	test.That(t, nilSet.Clone(), test.ShouldBeNil)
	test.That(t, nilSet.Sorted(), test.ShouldBeNil)
}
