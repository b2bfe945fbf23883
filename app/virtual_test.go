// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"

	"go.viam.com/test"

	"github.com/openpointer/pointerevents/f32"
)

func TestVirtualWindowMouseFanOut(t *testing.T) {
	w := NewVirtualWindow()
	var got []string
	w.HandleMouse(func(e *MouseEvent) bool {
		got = append(got, "first")
		return false
	})
	w.HandleMouse(func(e *MouseEvent) bool {
		got = append(got, "second")
		return false
	})

	consumed := w.DeliverMouse(&MouseEvent{Kind: MouseMoved, Position: f32.Pt(1, 2)})
	test.That(t, consumed, test.ShouldBeFalse)
	test.That(t, got, test.ShouldResemble, []string{"first", "second"})
}

func TestVirtualWindowMouseConsumption(t *testing.T) {
	w := NewVirtualWindow()
	var got []string
	w.HandleMouse(func(e *MouseEvent) bool {
		got = append(got, "first")
		return true
	})
	w.HandleMouse(func(e *MouseEvent) bool {
		got = append(got, "second")
		return false
	})

	consumed := w.DeliverMouse(&MouseEvent{Kind: MousePressed})
	test.That(t, consumed, test.ShouldBeTrue)
	test.That(t, got, test.ShouldResemble, []string{"first"})
}

func TestVirtualWindowCancel(t *testing.T) {
	w := NewVirtualWindow()
	calls := 0
	cancel, err := w.HandleMouse(func(e *MouseEvent) bool {
		calls++
		return false
	})
	test.That(t, err, test.ShouldBeNil)

	w.DeliverMouse(&MouseEvent{Kind: MouseMoved})
	cancel()
	w.DeliverMouse(&MouseEvent{Kind: MouseMoved})
	test.That(t, calls, test.ShouldEqual, 1)
}

func TestVirtualWindowTouch(t *testing.T) {
	w := NewVirtualWindow()
	var ids []int64
	cancel, err := w.HandleTouch(func(e *TouchEvent) bool {
		ids = append(ids, e.ID)
		return false
	})
	test.That(t, err, test.ShouldBeNil)

	w.DeliverTouch(&TouchEvent{Kind: TouchDown, ID: 4})
	w.DeliverTouch(&TouchEvent{Kind: TouchUp, ID: 4})
	test.That(t, ids, test.ShouldResemble, []int64{4, 4})

	cancel()
	consumed := w.DeliverTouch(&TouchEvent{Kind: TouchDown, ID: 5})
	test.That(t, consumed, test.ShouldBeFalse)
	test.That(t, ids, test.ShouldHaveLength, 2)
}
