// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import "sort"

// Names of the properties a device may report provisionally and correct
// later.
const (
	PropertyPosition = "position"
	PropertyPressure = "pressure"
	PropertyTiltX    = "tilt_x"
	PropertyTiltY    = "tilt_y"
)

// A PropertySet is a set of property names.
type PropertySet map[string]struct{}

// NewPropertySet returns a set containing the given names.
func NewPropertySet(names ...string) PropertySet {
	s := make(PropertySet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s PropertySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s PropertySet) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes name from the set.
func (s PropertySet) Remove(name string) {
	delete(s, name)
}

// Empty reports whether the set has no members.
func (s PropertySet) Empty() bool {
	return len(s) == 0
}

// Clone returns an independent copy of the set. The clone of a nil set
// is nil.
func (s PropertySet) Clone() PropertySet {
	if s == nil {
		return nil
	}
	c := make(PropertySet, len(s))
	for n := range s {
		c[n] = struct{}{}
	}
	return c
}

// Sorted returns the member names in lexical order.
func (s PropertySet) Sorted() []string {
	if len(s) == 0 {
		return nil
	}
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
