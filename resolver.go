package textaddr

import (
	"golang.org/x/exp/slices"
)

// LocalCharacterIndex resolves a position to a character index local to its
// layout's text: the addressed slice's range lower bound for downstream
// affinity, its upper bound for upstream.
func (c *Collection) LocalCharacterIndex(p Position) (int, bool) {
	_, _, _, s, ok := c.nodeAt(p.Address)
	if !ok {
		// A layout with no addressable slices owns a single degenerate
		// position at its zero address; PositionAt hands that position out,
		// so it must resolve here rather than be rejected.
		a := p.Address
		if a.Line == 0 && a.Run == 0 && a.Slice == 0 {
			if l, ok := c.LayoutAt(a.Layout); ok {
				if _, ok := c.firstAddress(a.Layout); !ok {
					if p.Affinity == Upstream {
						return l.Len(), true
					}
					return 0, true
				}
			}
		}
		return 0, false
	}
	if p.Affinity == Upstream {
		return s.rng.End, true
	}
	return s.rng.Start, true
}

// CharacterIndex resolves a position to a flat character index in the
// document: the total text length of all preceding layouts plus the local
// index resolved from affinity.
func (c *Collection) CharacterIndex(p Position) (int, bool) {
	local, ok := c.LocalCharacterIndex(p)
	if !ok {
		return 0, false
	}
	return c.starts[p.Address.Layout] + local, true
}

// PositionAt resolves a layout-local character index to a position.
//
// The scan resolves boundary indices with a fixed precedence: a slice whose
// range strictly contains the index wins with downstream affinity, and only
// if no slice contains it does a slice whose upper bound equals the index
// win with upstream affinity. Both conditions hold at once where two slices
// meet, and the order decides whether the result names the start of the
// next slice or the end of the previous one. Do not reorder the scans.
func (c *Collection) PositionAt(layoutIdx, localIndex int) (Position, bool) {
	l, ok := c.LayoutAt(layoutIdx)
	if !ok || localIndex < 0 || localIndex > l.Len() {
		return Position{}, false
	}
	if localIndex == 0 {
		if addr, ok := c.firstAddress(layoutIdx); ok {
			return Position{Address: addr, Affinity: Downstream}, true
		}
	}
	if localIndex == l.Len() {
		if addr, ok := c.lastAddress(layoutIdx); ok {
			return Position{Address: addr, Affinity: Upstream}, true
		}
		// A layout with no lines still has a degenerate end position.
		return Position{Address: Address{Layout: layoutIdx}, Affinity: Upstream}, true
	}
	for li, line := range l.Lines() {
		for ri, run := range line.runs {
			for si, s := range run.slices {
				if s.rng.Contains(localIndex) {
					return Position{
						Address:  Address{Layout: layoutIdx, Line: li, Run: ri, Slice: si},
						Affinity: Downstream,
					}, true
				}
			}
		}
	}
	for li, line := range l.Lines() {
		for ri, run := range line.runs {
			for si, s := range run.slices {
				if s.rng.End == localIndex {
					return Position{
						Address:  Address{Layout: layoutIdx, Line: li, Run: ri, Slice: si},
						Affinity: Upstream,
					}, true
				}
			}
		}
	}
	// Slice ranges cover the whole text in a well-formed layout, so a miss
	// here means the layout is structurally malformed.
	logger.Debug("no slice matched local character index",
		"layout", layoutIdx, "localIndex", localIndex)
	return Position{}, false
}

// PositionFrom resolves the position at the given character offset from p.
// It reports false when the target offset falls outside [0, Len()].
func (c *Collection) PositionFrom(p Position, offset int) (Position, bool) {
	index, ok := c.CharacterIndex(p)
	if !ok {
		return Position{}, false
	}
	return c.PositionAtIndex(index + offset)
}

// PositionAtIndex resolves a flat document character index to a position.
// An index at a paragraph boundary resolves into the following layout's
// start rather than the preceding layout's end, except at the very end of
// the document.
func (c *Collection) PositionAtIndex(index int) (Position, bool) {
	if index < 0 || index > c.total || len(c.layouts) == 0 {
		return Position{}, false
	}
	// Locate the first layout whose end offset exceeds index, so an index
	// at a paragraph boundary is owned by the following layout. Zero-length
	// layouts never own any index. Only the document end clamps back to the
	// last layout.
	layoutIdx, _ := slices.BinarySearch(c.ends, index+1)
	if layoutIdx >= len(c.layouts) {
		layoutIdx = len(c.layouts) - 1
	}
	return c.PositionAt(layoutIdx, index-c.starts[layoutIdx])
}
