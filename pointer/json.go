// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"encoding/json"
	"strings"

	"github.com/edaniels/golog"

	"github.com/openpointer/pointerevents/event"
	"github.com/openpointer/pointerevents/f32"
)

// The interchange form of an event is a structured record suitable for
// replay and cross-process logging. Decoding is tolerant: missing fields
// take their documented defaults and an unrecognized enum string falls
// back to a default with a logged warning rather than failing the
// enclosing record.

type vec2JSON struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type shapeJSON struct {
	ShapeType       string  `json:"shape_type"`
	Width           float32 `json:"width"`
	Height          float32 `json:"height"`
	WidthTolerance  float32 `json:"width_tolerance"`
	HeightTolerance float32 `json:"height_tolerance"`
	AngleDeg        float32 `json:"angle_deg"`
}

type pointJSON struct {
	Position           vec2JSON  `json:"position"`
	PrecisePosition    vec2JSON  `json:"precise_position"`
	Shape              shapeJSON `json:"shape"`
	Pressure           float32   `json:"pressure"`
	TangentialPressure float32   `json:"tangential_pressure"`
	TwistDeg           float32   `json:"twist_deg"`
	TiltXDeg           float32   `json:"tilt_x_deg"`
	TiltYDeg           float32   `json:"tilt_y_deg"`
}

type eventJSON struct {
	EventType       string      `json:"event_type"`
	TimestampMicros uint64      `json:"timestamp_micros"`
	Detail          uint64      `json:"detail"`
	Point           pointJSON   `json:"point"`
	PointerID       uint64      `json:"pointer_id"`
	DeviceID        int64       `json:"device_id"`
	PointerIndex    int64       `json:"pointer_index"`
	SequenceIndex   uint64      `json:"sequence_index"`
	DeviceType      string      `json:"device_type"`
	IsCoalesced     bool        `json:"is_coalesced"`
	IsPredicted     bool        `json:"is_predicted"`
	IsPrimary       bool        `json:"is_primary"`
	Button          int16       `json:"button"`
	Buttons         uint16      `json:"buttons"`
	Modifiers       uint16      `json:"modifiers"`
	Coalesced       []eventJSON `json:"coalesced_pointer_events"`
	Predicted       []eventJSON `json:"predicted_pointer_events"`
	Estimated       []string    `json:"estimated_properties"`
	ExpectingUpdate []string    `json:"estimated_properties_expecting_updates"`
}

func encodeDeviceType(t string) string {
	switch t {
	case TypeMouse:
		return "MOUSE"
	case TypePen:
		return "PEN"
	case TypeTouch:
		return "TOUCH"
	case "":
		return "UNKNOWN"
	case TypeUnknown:
		return "UNKNOWN"
	default:
		return t
	}
}

func decodeDeviceType(s string) string {
	switch strings.ToLower(s) {
	case "mouse":
		return TypeMouse
	case "pen":
		return TypePen
	case "touch":
		return TypeTouch
	case "", "unknown":
		return TypeUnknown
	default:
		return s
	}
}

func decodeShapeType(s string) ShapeType {
	switch s {
	case "", "ELLIPSE":
		return Ellipse
	case "RECTANGLE":
		return Rectangle
	default:
		golog.Global().Warnw("unknown shape type, defaulting to ELLIPSE", "value", s)
		return Ellipse
	}
}

func (s Shape) toJSON() shapeJSON {
	return shapeJSON{
		ShapeType:       s.Type.String(),
		Width:           s.Width,
		Height:          s.Height,
		WidthTolerance:  s.WidthTolerance,
		HeightTolerance: s.HeightTolerance,
		AngleDeg:        s.AngleDeg,
	}
}

func (j shapeJSON) shape() Shape {
	return Shape{
		Type:            decodeShapeType(j.ShapeType),
		Width:           j.Width,
		Height:          j.Height,
		WidthTolerance:  j.WidthTolerance,
		HeightTolerance: j.HeightTolerance,
		AngleDeg:        j.AngleDeg,
	}
}

func (p Point) toJSON() pointJSON {
	return pointJSON{
		Position:           vec2JSON{X: p.Position.X, Y: p.Position.Y},
		PrecisePosition:    vec2JSON{X: p.PrecisePosition.X, Y: p.PrecisePosition.Y},
		Shape:              p.Shape.toJSON(),
		Pressure:           p.Pressure,
		TangentialPressure: p.TangentialPressure,
		TwistDeg:           p.TwistDeg,
		TiltXDeg:           p.TiltXDeg,
		TiltYDeg:           p.TiltYDeg,
	}
}

func (j pointJSON) point() Point {
	return Point{
		Position:           f32.Pt(j.Position.X, j.Position.Y),
		PrecisePosition:    f32.Pt(j.PrecisePosition.X, j.PrecisePosition.Y),
		Shape:              j.Shape.shape(),
		Pressure:           j.Pressure,
		TangentialPressure: j.TangentialPressure,
		TwistDeg:           j.TwistDeg,
		TiltXDeg:           j.TiltXDeg,
		TiltYDeg:           j.TiltYDeg,
	}
}

func (e Event) toJSON() eventJSON {
	j := eventJSON{
		EventType:       e.EventType(),
		TimestampMicros: e.TimestampMicros,
		Detail:          e.Detail,
		Point:           e.Point.toJSON(),
		PointerID:       e.PointerID,
		DeviceID:        e.DeviceID,
		PointerIndex:    e.PointerIndex,
		SequenceIndex:   e.SequenceIndex,
		DeviceType:      encodeDeviceType(e.DeviceType),
		IsCoalesced:     e.IsCoalesced,
		IsPredicted:     e.IsPredicted,
		IsPrimary:       e.IsPrimary,
		Button:          e.Button,
		Buttons:         e.Buttons,
		Modifiers:       e.Modifiers,
		Coalesced:       []eventJSON{},
		Predicted:       []eventJSON{},
		Estimated:       []string{},
		ExpectingUpdate: []string{},
	}
	for _, sub := range e.CoalescedEvents {
		j.Coalesced = append(j.Coalesced, sub.toJSON())
	}
	for _, sub := range e.PredictedEvents {
		j.Predicted = append(j.Predicted, sub.toJSON())
	}
	// Sorted so that encoding is deterministic and round-trip stable.
	j.Estimated = append(j.Estimated, e.EstimatedProperties.Sorted()...)
	j.ExpectingUpdate = append(j.ExpectingUpdate, e.EstimatedPropertiesExpectingUpdates.Sorted()...)
	return j
}

func (j eventJSON) toEvent() Event {
	e := Event{
		Point:         j.Point.point(),
		PointerID:     j.PointerID,
		DeviceID:      j.DeviceID,
		PointerIndex:  j.PointerIndex,
		SequenceIndex: j.SequenceIndex,
		DeviceType:    decodeDeviceType(j.DeviceType),
		IsCoalesced:   j.IsCoalesced,
		IsPredicted:   j.IsPredicted,
		IsPrimary:     j.IsPrimary,
		Button:        j.Button,
		Buttons:       j.Buttons,
		Modifiers:     j.Modifiers,
	}
	e.Type = j.EventType
	if e.Type == "" {
		e.Type = event.TypeUnknown
	}
	e.TimestampMicros = j.TimestampMicros
	e.Detail = j.Detail
	for _, sub := range j.Coalesced {
		e.CoalescedEvents = append(e.CoalescedEvents, sub.toEvent())
	}
	for _, sub := range j.Predicted {
		e.PredictedEvents = append(e.PredictedEvents, sub.toEvent())
	}
	if len(j.Estimated) > 0 {
		e.EstimatedProperties = NewPropertySet(j.Estimated...)
	}
	if len(j.ExpectingUpdate) > 0 {
		e.EstimatedPropertiesExpectingUpdates = NewPropertySet(j.ExpectingUpdate...)
	}
	return e
}

// MarshalJSON encodes the event as an interchange record.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toJSON())
}

// UnmarshalJSON decodes an interchange record. Missing fields take their
// defaults: zero values, empty sets, ELLIPSE shapes and the unknown
// device type. The event source is not part of the interchange form and
// decodes as nil.
func (e *Event) UnmarshalJSON(data []byte) error {
	var j eventJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*e = j.toEvent()
	return nil
}

// MarshalJSON encodes the shape as its interchange record.
func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toJSON())
}

// UnmarshalJSON decodes a shape record, defaulting missing fields.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var j shapeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*s = j.shape()
	return nil
}

// MarshalJSON encodes the point as its interchange record.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toJSON())
}

// UnmarshalJSON decodes a point record, defaulting missing fields.
func (p *Point) UnmarshalJSON(data []byte) error {
	var j pointJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*p = j.point()
	return nil
}
