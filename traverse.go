package textaddr

import "iter"

// NextAddress returns the address following a in document order: the next
// slice in its run, else the next run in its line, else the next line in
// its layout, else the first address of a following layout. Layouts with no
// addressable slices are skipped. It reports false past the last address,
// when a is invalid, or when an intermediate container that should not be
// empty is empty.
func (c *Collection) NextAddress(a Address) (Address, bool) {
	l, line, run, _, ok := c.nodeAt(a)
	if !ok {
		return Address{}, false
	}
	if a.Slice+1 < len(run.slices) {
		a.Slice++
		return a, true
	}
	if a.Run+1 < len(line.runs) {
		next := line.runs[a.Run+1]
		if len(next.slices) == 0 {
			// A well-formed layout has no empty runs; stop rather than
			// produce an invalid address.
			logger.Debug("traversal hit an empty run", "address", a.String())
			return Address{}, false
		}
		return Address{Layout: a.Layout, Line: a.Line, Run: a.Run + 1}, true
	}
	if a.Line+1 < len(l.Lines()) {
		next := l.Lines()[a.Line+1]
		if len(next.runs) == 0 || len(next.runs[0].slices) == 0 {
			logger.Debug("traversal hit an empty line", "address", a.String())
			return Address{}, false
		}
		return Address{Layout: a.Layout, Line: a.Line + 1}, true
	}
	for layoutIdx := a.Layout + 1; layoutIdx < len(c.layouts); layoutIdx++ {
		if addr, ok := c.firstAddress(layoutIdx); ok {
			return addr, true
		}
	}
	return Address{}, false
}

// PreviousAddress returns the address preceding a in document order,
// descending into the last slice, run and line of the preceding container
// when a container boundary is crossed.
func (c *Collection) PreviousAddress(a Address) (Address, bool) {
	l, line, _, _, ok := c.nodeAt(a)
	if !ok {
		return Address{}, false
	}
	if a.Slice > 0 {
		a.Slice--
		return a, true
	}
	if a.Run > 0 {
		prev := line.runs[a.Run-1]
		if len(prev.slices) == 0 {
			logger.Debug("traversal hit an empty run", "address", a.String())
			return Address{}, false
		}
		return Address{Layout: a.Layout, Line: a.Line, Run: a.Run - 1, Slice: len(prev.slices) - 1}, true
	}
	if a.Line > 0 {
		prev := l.Lines()[a.Line-1]
		if len(prev.runs) == 0 {
			logger.Debug("traversal hit an empty line", "address", a.String())
			return Address{}, false
		}
		run := prev.runs[len(prev.runs)-1]
		if len(run.slices) == 0 {
			logger.Debug("traversal hit an empty run", "address", a.String())
			return Address{}, false
		}
		return Address{Layout: a.Layout, Line: a.Line - 1, Run: len(prev.runs) - 1, Slice: len(run.slices) - 1}, true
	}
	for layoutIdx := a.Layout - 1; layoutIdx >= 0; layoutIdx-- {
		if addr, ok := c.lastAddress(layoutIdx); ok {
			return addr, true
		}
	}
	return Address{}, false
}

// Addresses returns a lazy sequence over every slice address intersecting
// the range, in document order, from the start address up to and including
// the end address.
func (c *Collection) Addresses(r Range) iter.Seq[Address] {
	r = r.normalized()
	return func(yield func(Address) bool) {
		addr := r.Start.Address
		if _, ok := c.SliceAt(addr); !ok {
			// A range may start at the degenerate position of a layout with
			// no addressable slices; the walk starts at the first slice that
			// follows instead.
			next, ok := c.firstAddressFrom(addr)
			if !ok {
				return
			}
			addr = next
		}
		for {
			if r.End.Address.Before(addr) {
				return
			}
			if !yield(addr) {
				return
			}
			next, ok := c.NextAddress(addr)
			if !ok {
				return
			}
			addr = next
		}
	}
}
