// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"math"

	"github.com/openpointer/pointerevents/f32"
)

// ShapeType determines how a Shape's dimensions are interpreted.
type ShapeType uint8

const (
	// Ellipse interprets width, height and angle as a rotated ellipse.
	Ellipse ShapeType = iota
	// Rectangle interprets width, height and angle as a rotated rectangle.
	Rectangle
)

func (t ShapeType) String() string {
	switch t {
	case Ellipse:
		return "ELLIPSE"
	case Rectangle:
		return "RECTANGLE"
	default:
		return "ELLIPSE"
	}
}

// A Shape describes the contact geometry of a pointer.
//
// For standard pointers, such as a mouse or a pen, the width and height
// are 1, while some touch pointers report the size of the touch or even
// an ellipse describing the size and angle of a finger tip.
type Shape struct {
	Type ShapeType
	// Width and Height are the extents of the rotated shape.
	Width, Height float32
	// WidthTolerance and HeightTolerance bound the extents; the width
	// range of the shape is Width ± WidthTolerance.
	WidthTolerance, HeightTolerance float32
	// AngleDeg is the clockwise rotation of the shape in degrees.
	AngleDeg float32
}

// UnitShape returns the shape reported for pointers without contact
// geometry, a 1x1 ellipse.
func UnitShape() Shape {
	return Shape{Type: Ellipse, Width: 1, Height: 1}
}

// AngleRad returns the shape angle in radians.
func (s Shape) AngleRad() float32 {
	return s.AngleDeg * math.Pi / 180
}

// AxisAlignedWidth returns the width of the axis-aligned bounding box of
// the rotated shape. It equals Width when the angle is zero.
func (s Shape) AxisAlignedWidth() float32 {
	w, _ := s.axisAlignedSize()
	return w
}

// AxisAlignedHeight returns the height of the axis-aligned bounding box
// of the rotated shape. It equals Height when the angle is zero.
func (s Shape) AxisAlignedHeight() float32 {
	_, h := s.axisAlignedSize()
	return h
}

// Bounds returns the axis-aligned bounding box of the rotated shape,
// centered on the given point.
func (s Shape) Bounds(center f32.Point) f32.Rectangle {
	w, h := s.axisAlignedSize()
	return f32.Rectangle{
		Min: f32.Point{X: center.X - w/2, Y: center.Y - h/2},
		Max: f32.Point{X: center.X + w/2, Y: center.Y + h/2},
	}
}

func (s Shape) axisAlignedSize() (width, height float32) {
	sin, cos := math.Sincos(float64(s.AngleRad()))
	w, h := float64(s.Width), float64(s.Height)
	switch s.Type {
	case Rectangle:
		width = float32(math.Abs(w*cos) + math.Abs(h*sin))
		height = float32(math.Abs(w*sin) + math.Abs(h*cos))
	default:
		width = float32(math.Hypot(w*cos, h*sin))
		height = float32(math.Hypot(w*sin, h*cos))
	}
	return width, height
}
