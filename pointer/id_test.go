// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"

	"go.viam.com/test"
)

func TestDeriveIDStable(t *testing.T) {
	a := DeriveID(TypeTouch, 2, 5)
	b := DeriveID(TypeTouch, 2, 5)
	test.That(t, a, test.ShouldEqual, b)
}

func TestDeriveIDDistinct(t *testing.T) {
	base := DeriveID(TypeTouch, 2, 5)
	test.That(t, DeriveID(TypePen, 2, 5), test.ShouldNotEqual, base)
	test.That(t, DeriveID(TypeTouch, 3, 5), test.ShouldNotEqual, base)
	test.That(t, DeriveID(TypeTouch, 2, 6), test.ShouldNotEqual, base)
}

func TestMouseID(t *testing.T) {
	test.That(t, MouseID(), test.ShouldEqual, DeriveID(TypeMouse, 0, -1))
}
