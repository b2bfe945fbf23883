// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"math"

	"github.com/openpointer/pointerevents/f32"
)

// A Point is a single sample of a pointer: position, contact shape,
// pressure and orientation. It is a value type; the azimuth and altitude
// are derived from the tilt on demand.
type Point struct {
	// Position is the sample position in screen coordinates.
	Position f32.Point
	// PrecisePosition is a high resolution position when the platform
	// reports one, otherwise it equals Position. Hit-testing should use
	// Position.
	PrecisePosition f32.Point
	// Shape is the contact geometry.
	Shape Shape
	// Pressure is the normalized pressure in the range [0, 1]. For
	// devices that do not support pressure, the value is 0.5 when a
	// button is active and 0 otherwise.
	Pressure float32
	// TangentialPressure is the normalized barrel pressure in the range
	// [0, 1], or 0 when unsupported.
	TangentialPressure float32
	// TwistDeg is the clockwise rotation in degrees [0, 360) of the
	// transducer around its own major axis, or 0 when unsupported.
	TwistDeg float32
	// TiltXDeg is the angle in degrees [-90, 90] between the Y-Z plane
	// and the plane containing the transducer axis and the Y axis.
	// Positive is to the right.
	TiltXDeg float32
	// TiltYDeg is the angle in degrees [-90, 90] between the X-Z plane
	// and the plane containing the transducer axis and the X axis.
	// Positive is toward the user.
	TiltYDeg float32
}

// NewPoint returns a Point at the given position with the unit shape and
// no pressure.
func NewPoint(position f32.Point) Point {
	return Point{
		Position:        position,
		PrecisePosition: position,
		Shape:           UnitShape(),
	}
}

// TwistRad returns the twist in radians.
func (p Point) TwistRad() float32 {
	return p.TwistDeg * math.Pi / 180
}

// TiltXRad returns the tilt X angle in radians.
func (p Point) TiltXRad() float32 {
	return p.TiltXDeg * math.Pi / 180
}

// TiltYRad returns the tilt Y angle in radians.
func (p Point) TiltYRad() float32 {
	return p.TiltYDeg * math.Pi / 180
}

// AzimuthRad returns the azimuth angle in radians [0, 2π). 0 points in
// the direction of increasing screen X, π/2 in the direction of
// increasing screen Y. The value is 0 when the transducer is
// perpendicular to the surface.
func (p Point) AzimuthRad() float32 {
	azimuth, _ := p.azimuthAltitude()
	return azimuth
}

// AzimuthDeg returns the azimuth angle in degrees [0, 360).
func (p Point) AzimuthDeg() float32 {
	return p.AzimuthRad() * 180 / math.Pi
}

// AltitudeRad returns the altitude angle in radians, from 0 (parallel to
// the surface) to π/2 (perpendicular to the surface).
func (p Point) AltitudeRad() float32 {
	_, altitude := p.azimuthAltitude()
	return altitude
}

// AltitudeDeg returns the altitude angle in degrees [0, 90].
func (p Point) AltitudeDeg() float32 {
	return p.AltitudeRad() * 180 / math.Pi
}

// azimuthAltitude converts the tilt pair to spherical angles following
// the pointer events specification.
func (p Point) azimuthAltitude() (azimuth, altitude float32) {
	tiltX := float64(p.TiltXDeg)
	tiltY := float64(p.TiltYDeg)
	if tiltX == 0 && tiltY == 0 {
		return 0, math.Pi / 2
	}
	// A tilt of ±90 degrees lays the transducer flat along one axis.
	if math.Abs(tiltX) == 90 || math.Abs(tiltY) == 90 {
		switch {
		case tiltX > 0 && math.Abs(tiltX) == 90:
			azimuth = 0
		case tiltX < 0 && math.Abs(tiltX) == 90:
			azimuth = math.Pi
		case tiltY > 0:
			azimuth = math.Pi / 2
		default:
			azimuth = 3 * math.Pi / 2
		}
		return azimuth, 0
	}
	tanX := math.Tan(tiltX * math.Pi / 180)
	tanY := math.Tan(tiltY * math.Pi / 180)
	az := math.Atan2(tanY, tanX)
	if az < 0 {
		az += 2 * math.Pi
	}
	alt := math.Atan(1 / math.Hypot(tanX, tanY))
	return float32(az), float32(alt)
}
