// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"sort"

	"github.com/openpointer/pointerevents/pointer"
)

// Registration orders for channel subscribers. Lower orders are
// notified first; subscribers at the same order run in registration
// order.
const (
	OrderBeforeApp = 0
	OrderApp       = 100
	OrderAfterApp  = 200
)

// A Handler receives pointer events from a channel. Calling Consume on
// the event stops delivery to the remaining subscribers of the same
// channel.
type Handler func(e *pointer.Event)

type subscriber struct {
	order   int
	seq     uint64
	handler Handler
	removed bool
}

// A Channel is an ordered list of pointer event subscribers with
// consumption short-circuiting. Channels are not safe for concurrent
// use; all subscription and notification must happen on the goroutine
// driving the event loop.
type Channel struct {
	subs []*subscriber
	seq  uint64
}

// Subscribe registers h at the given order and returns a cancel
// function that unregisters it.
func (c *Channel) Subscribe(order int, h Handler) (cancel func()) {
	c.compact()
	c.seq++
	s := &subscriber{order: order, seq: c.seq, handler: h}
	c.subs = append(c.subs, s)
	sort.SliceStable(c.subs, func(i, j int) bool {
		if c.subs[i].order != c.subs[j].order {
			return c.subs[i].order < c.subs[j].order
		}
		return c.subs[i].seq < c.subs[j].seq
	})
	return func() { s.removed = true }
}

// Notify delivers e to the subscribers in order and reports whether one
// of them consumed it. Delivery stops at the first consumer. An event
// that arrives already consumed is not delivered.
func (c *Channel) Notify(e *pointer.Event) bool {
	for _, s := range c.subs {
		if e.Consumed() {
			return true
		}
		if s.removed {
			continue
		}
		s.handler(e)
	}
	return e.Consumed()
}

// Len returns the number of active subscribers.
func (c *Channel) Len() int {
	n := 0
	for _, s := range c.subs {
		if !s.removed {
			n++
		}
	}
	return n
}

func (c *Channel) compact() {
	kept := c.subs[:0]
	for _, s := range c.subs {
		if !s.removed {
			kept = append(kept, s)
		}
	}
	c.subs = kept
}
