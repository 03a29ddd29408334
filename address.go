package textaddr

import (
	"cmp"
	"fmt"
)

// Affinity resolves which side of a shared character-index boundary a
// Position refers to. The end of one slice and the start of the next map to
// the same character index; affinity disambiguates the two.
type Affinity uint8

const (
	// Downstream resolves a position to the lower bound of its slice range.
	Downstream Affinity = iota
	// Upstream resolves a position to the upper bound of its slice range.
	Upstream
)

func (a Affinity) String() string {
	if a == Upstream {
		return "upstream"
	}
	return "downstream"
}

// Address identifies one Slice in a Collection as a (layout, line, run,
// slice) index tuple. Addresses are totally ordered lexicographically.
type Address struct {
	Layout int
	Line   int
	Run    int
	Slice  int
}

// Compare orders addresses lexicographically. It returns a negative number
// when a sorts before b, zero when they are equal, and a positive number
// when a sorts after b.
func (a Address) Compare(b Address) int {
	if c := cmp.Compare(a.Layout, b.Layout); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Run, b.Run); c != 0 {
		return c
	}
	return cmp.Compare(a.Slice, b.Slice)
}

// Before reports whether a sorts strictly before b.
func (a Address) Before(b Address) bool {
	return a.Compare(b) < 0
}

func (a Address) String() string {
	return fmt.Sprintf("[address] layout: %d, line: %d, run: %d, slice: %d", a.Layout, a.Line, a.Run, a.Slice)
}

// Position is an Address plus the affinity that picks one of the two
// positions sharing a boundary character index.
type Position struct {
	Address  Address
	Affinity Affinity
}

// Compare orders positions by address, with Downstream sorting before
// Upstream at the same address.
func (p Position) Compare(q Position) int {
	if c := p.Address.Compare(q.Address); c != 0 {
		return c
	}
	return cmp.Compare(p.Affinity, q.Affinity)
}

func (p Position) String() string {
	return fmt.Sprintf("%s, affinity: %s", p.Address, p.Affinity)
}

// Range is an ordered pair of positions. A range is collapsed when both
// endpoints are equal.
type Range struct {
	Start Position
	End   Position
}

// Collapsed reports whether the range selects no characters.
func (r Range) Collapsed() bool {
	return r.Start == r.End
}

// normalized returns r with its endpoints swapped if they are out of order.
func (r Range) normalized() Range {
	if r.End.Compare(r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// CharRange is a half-open [Start, End) character range, measured in runes.
type CharRange struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the range.
func (c CharRange) Len() int {
	return c.End - c.Start
}

// Contains reports whether index lies within the half-open range.
func (c CharRange) Contains(index int) bool {
	return index >= c.Start && index < c.End
}
